package users

import (
	"context"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
)

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.latency.Wait(ctx, latency.OpDelete); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("UserService.DeleteUser - %w", err)
	}

	s.logger.Info("User deleted", "user_id", id)
	s.publish(ctx, domain.EventUserDeleted, entities.User{ID: id})

	return nil
}
