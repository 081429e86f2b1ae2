package users

import (
	"context"
	"fmt"

	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
	"estateportal/src/services/search"
)

func (s *UserService) ListUsers(ctx context.Context) ([]entities.User, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return nil, err
	}

	users, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("UserService.ListUsers - failed to list from repository: %w", err)
	}

	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users, nil
}

// SearchUsers filtra por nome, email ou papel.
func (s *UserService) SearchUsers(ctx context.Context, query string) ([]entities.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return search.SearchUsers(users, query), nil
}
