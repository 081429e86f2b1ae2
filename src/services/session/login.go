package session

import (
	"context"
	"encoding/json"
	"fmt"

	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
	"estateportal/src/infra/kvstore"
)

func (m *SessionManager) Login(ctx context.Context, email string, password string) (entities.User, error) {
	if err := m.latency.Wait(ctx, latency.OpLogin); err != nil {
		return entities.User{}, err
	}

	user, err := m.users.Authenticate(ctx, email, password)
	if err != nil {
		m.logger.Info("Login rejected", "email", email)
		return entities.User{}, fmt.Errorf("SessionManager.Login - %w", err)
	}
	user = user.Sanitized()

	payload, err := json.Marshal(user)
	if err != nil {
		return entities.User{}, fmt.Errorf("SessionManager.Login - failed to marshal session: %w", err)
	}

	if err := m.store.Save(ctx, kvstore.SessionKey, payload); err != nil {
		return entities.User{}, fmt.Errorf("SessionManager.Login - failed to save session: %w", err)
	}

	m.mu.Lock()
	stored := user
	m.current = &stored
	m.mu.Unlock()

	m.logger.Info("User logged in", "user_id", user.ID, "role", user.Role)
	m.notify(ctx, &user)

	return user, nil
}
