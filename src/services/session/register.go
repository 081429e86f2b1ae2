package session

import (
	"context"
	"fmt"

	"estateportal/src/helper/latency"
)

// Register cria a conta mas não faz login.
func (m *SessionManager) Register(ctx context.Context, name string, email string, password string) error {
	if err := m.latency.Wait(ctx, latency.OpRegister); err != nil {
		return err
	}

	if _, err := m.users.Register(ctx, name, email, password); err != nil {
		return fmt.Errorf("SessionManager.Register - %w", err)
	}
	return nil
}
