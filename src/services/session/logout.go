package session

import (
	"context"
	"fmt"

	"estateportal/src/helper/latency"
	"estateportal/src/infra/kvstore"
)

func (m *SessionManager) Logout(ctx context.Context) error {
	if err := m.latency.Wait(ctx, latency.OpSession); err != nil {
		return err
	}

	if err := m.store.Delete(ctx, kvstore.SessionKey); err != nil {
		return fmt.Errorf("SessionManager.Logout - failed to delete session: %w", err)
	}

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	m.notify(ctx, nil)
	return nil
}
