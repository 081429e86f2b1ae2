package users

import (
	"context"
	"fmt"

	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
)

func (s *UserService) GetUser(ctx context.Context, id string) (entities.User, error) {
	if err := s.latency.Wait(ctx, latency.OpGet); err != nil {
		return entities.User{}, err
	}

	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, fmt.Errorf("UserService.GetUser - %w", err)
	}
	return user.Sanitized(), nil
}
