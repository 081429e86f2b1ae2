package users

import (
	"context"
	"errors"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
)

// Authenticate compara email e senha em texto puro. Sem latência própria: quem chama
// (SessionManager.Login) já simula a ida ao servidor.
func (s *UserService) Authenticate(ctx context.Context, email string, password string) (entities.User, error) {
	user, err := s.repository.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return entities.User{}, fmt.Errorf("UserService.Authenticate - %w", domain.ErrInvalidCredentials)
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("UserService.Authenticate - failed to load user: %w", err)
	}

	if user.Password != password {
		return entities.User{}, fmt.Errorf("UserService.Authenticate - %w", domain.ErrInvalidCredentials)
	}

	return user.Sanitized(), nil
}

// Register cria uma conta com papel "user" sem latência própria; SessionManager.Register simula a espera.
func (s *UserService) Register(ctx context.Context, name string, email string, password string) (entities.User, error) {
	user := entities.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     entities.RoleUser,
	}
	return s.createWithoutDelay(ctx, user)
}
