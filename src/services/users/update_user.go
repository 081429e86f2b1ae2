package users

import (
	"context"
	"errors"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
)

// UpdateUser faz merge raso. Email só é checado quando muda, ignorando o próprio usuário.
func (s *UserService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (entities.User, error) {
	if err := s.latency.Wait(ctx, latency.OpUpdate); err != nil {
		return entities.User{}, err
	}

	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, fmt.Errorf("UserService.UpdateUser - %w", err)
	}

	updated := current
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.Password != nil {
		updated.Password = *patch.Password
	}
	if patch.Role != nil {
		updated.Role = *patch.Role
	}

	if err := validateUser(updated); err != nil {
		return entities.User{}, fmt.Errorf("UserService.UpdateUser - %w", err)
	}

	if updated.Email != current.Email {
		other, err := s.repository.GetByEmail(ctx, updated.Email)
		switch {
		case err == nil && other.ID != id:
			return entities.User{}, fmt.Errorf("UserService.UpdateUser - %s: %w", updated.Email, domain.ErrDuplicateEmail)
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return entities.User{}, fmt.Errorf("UserService.UpdateUser - failed to check email: %w", err)
		}
	}

	if err := s.repository.Replace(ctx, updated); err != nil {
		return entities.User{}, fmt.Errorf("UserService.UpdateUser - failed to replace: %w", err)
	}

	s.logger.Info("User updated", "user_id", id)
	s.publish(ctx, domain.EventUserUpdated, updated)

	return updated.Sanitized(), nil
}
