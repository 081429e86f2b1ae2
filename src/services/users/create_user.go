package users

import (
	"context"
	"errors"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/ids"
	"estateportal/src/helper/latency"
)

func (s *UserService) CreateUser(ctx context.Context, input domain.UserInput) (entities.User, error) {
	if err := s.latency.Wait(ctx, latency.OpCreate); err != nil {
		return entities.User{}, err
	}

	return s.createWithoutDelay(ctx, entities.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
}

func (s *UserService) createWithoutDelay(ctx context.Context, user entities.User) (entities.User, error) {
	user.ID = ids.New()
	user.CreatedAt = s.now()

	if err := validateUser(user); err != nil {
		return entities.User{}, fmt.Errorf("UserService.CreateUser - %w", err)
	}

	// O repositório também garante a unicidade; a checagem aqui só devolve um erro mais cedo.
	if _, err := s.repository.GetByEmail(ctx, user.Email); err == nil {
		return entities.User{}, fmt.Errorf("UserService.CreateUser - %s: %w", user.Email, domain.ErrDuplicateEmail)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return entities.User{}, fmt.Errorf("UserService.CreateUser - failed to check email: %w", err)
	}

	if err := s.repository.Insert(ctx, user); err != nil {
		return entities.User{}, fmt.Errorf("UserService.CreateUser - failed to insert: %w", err)
	}

	s.logger.Info("User created", "user_id", user.ID, "role", user.Role)
	s.publish(ctx, domain.EventUserCreated, user)

	return user.Sanitized(), nil
}
