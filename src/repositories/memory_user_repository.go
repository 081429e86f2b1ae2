package repositories

import (
	"context"
	"fmt"
	"sync"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
)

// MemoryUserRepository guarda a senha junto do usuário; quem limpa o campo é o serviço.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []entities.User
}

func NewMemoryUserRepository(seed ...entities.User) *MemoryUserRepository {
	return &MemoryUserRepository{users: append([]entities.User(nil), seed...)}
}

func (r *MemoryUserRepository) List(_ context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append(make([]entities.User, 0, len(r.users)), r.users...), nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return entities.User{}, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entities.User{}, fmt.Errorf("user with email %s: %w", email, domain.ErrNotFound)
}

// Insert enforces email uniqueness itself so the check and the write happen under one lock.
func (r *MemoryUserRepository) Insert(_ context.Context, user entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with email %s: %w", user.Email, domain.ErrDuplicateEmail)
		}
	}
	r.users = append(r.users, user)
	return nil
}

func (r *MemoryUserRepository) Replace(_ context.Context, user entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := -1
	for i, u := range r.users {
		if u.ID == user.ID {
			index = i
			continue
		}
		if u.Email == user.Email {
			return fmt.Errorf("user with email %s: %w", user.Email, domain.ErrDuplicateEmail)
		}
	}
	if index < 0 {
		return fmt.Errorf("user %s: %w", user.ID, domain.ErrNotFound)
	}

	r.users[index] = user
	return nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}
