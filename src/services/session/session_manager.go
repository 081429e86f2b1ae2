package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
	"estateportal/src/infra/kvstore"
)

// Authenticator is the slice of UserService the session needs.
type Authenticator interface {
	Authenticate(ctx context.Context, email string, password string) (entities.User, error)
	Register(ctx context.Context, name string, email string, password string) (entities.User, error)
}

// Listener recebe o usuário logado, ou nil quando a sessão termina.
type Listener func(ctx context.Context, user *entities.User)

type State string

const (
	StateAnonymous          State = "anonymous"
	StateAuthenticatedAdmin State = "authenticated_admin"
	StateAuthenticatedUser  State = "authenticated_user"
)

// SessionManager guarda no máximo um usuário logado por instância da aplicação
// e persiste a sessão na chave "session" do store.
type SessionManager struct {
	logger  *slog.Logger
	users   Authenticator
	store   kvstore.Store
	latency *latency.Simulator

	mu        sync.RWMutex
	current   *entities.User
	listeners []Listener
}

func NewSessionManager(
	logger *slog.Logger,
	users Authenticator,
	store kvstore.Store,
	simulator *latency.Simulator,
) *SessionManager {
	return &SessionManager{
		logger:  logger,
		users:   users,
		store:   store,
		latency: simulator,
	}
}

// OnChange registra um listener chamado a cada login, logout ou reidratação.
func (m *SessionManager) OnChange(listener Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listeners = append(m.listeners, listener)
}

func (m *SessionManager) notify(ctx context.Context, user *entities.User) {
	m.mu.RLock()
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.RUnlock()

	for _, listener := range listeners {
		if user == nil {
			listener(ctx, nil)
			continue
		}
		u := *user
		listener(ctx, &u)
	}
}

func (m *SessionManager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch {
	case m.current == nil:
		return StateAnonymous
	case m.current.IsAdmin():
		return StateAuthenticatedAdmin
	default:
		return StateAuthenticatedUser
	}
}

// resolve devolve o usuário em memória ou, se não houver, reidrata do store sem latência.
// changed indica que a reidratação trouxe um usuário novo para a memória.
func (m *SessionManager) resolve(ctx context.Context) (user entities.User, changed bool, err error) {
	m.mu.RLock()
	current := m.current
	m.mu.RUnlock()

	if current != nil {
		return *current, false, nil
	}

	data, found, err := m.store.Load(ctx, kvstore.SessionKey)
	if err != nil {
		return entities.User{}, false, fmt.Errorf("failed to load session: %w", err)
	}
	if !found {
		return entities.User{}, false, domain.ErrNotAuthenticated
	}

	if err := json.Unmarshal(data, &user); err != nil {
		m.logger.Warn("Ignoring unreadable session payload", "error", err)
		return entities.User{}, false, domain.ErrNotAuthenticated
	}
	if user.ID == "" {
		m.logger.Warn("Ignoring session payload without user id")
		return entities.User{}, false, domain.ErrNotAuthenticated
	}

	m.mu.Lock()
	if m.current != nil {
		existing := *m.current
		m.mu.Unlock()
		return existing, false, nil
	}
	m.current = &user
	m.mu.Unlock()

	return user, true, nil
}

// LandingPath é para onde o usuário vai depois do login.
func LandingPath(user entities.User) string {
	if user.IsAdmin() {
		return "/admin"
	}
	return "/dashboard"
}
