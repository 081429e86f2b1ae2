package session

import (
	"context"
	"errors"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
)

// CurrentUser falha com ErrNotAuthenticated quando não há sessão ou o payload salvo é ilegível.
func (m *SessionManager) CurrentUser(ctx context.Context) (entities.User, error) {
	if err := m.latency.Wait(ctx, latency.OpSession); err != nil {
		return entities.User{}, err
	}

	user, changed, err := m.resolve(ctx)
	if err != nil {
		return entities.User{}, fmt.Errorf("SessionManager.CurrentUser - %w", err)
	}

	if changed {
		m.notify(ctx, &user)
	}
	return user, nil
}

// Restore reidrata a sessão na subida da aplicação. Não ter sessão não é erro.
func (m *SessionManager) Restore(ctx context.Context) error {
	user, changed, err := m.resolve(ctx)
	if errors.Is(err, domain.ErrNotAuthenticated) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("SessionManager.Restore - %w", err)
	}

	if changed {
		m.logger.Info("Session restored", "user_id", user.ID)
		m.notify(ctx, &user)
	}
	return nil
}
