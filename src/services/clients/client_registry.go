package clients

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"estateportal/src/domain"
	"estateportal/src/helper/latency"
	"estateportal/src/infra/kvstore"
	"estateportal/src/services/favorites"
	"estateportal/src/services/history"
	"estateportal/src/services/session"
)

// Client é o estado de uma instância da aplicação (uma aba, um app) identificada por token.
type Client struct {
	Token     string
	Session   *session.SessionManager
	Favorites *favorites.FavoritesStore
	History   *history.HistoryStore

	lastSeen time.Time
}

// ClientRegistry monta o estado de cada cliente na primeira requisição.
// Sessão e favoritos ficam em "client:<token>:"; o histórico continua por conta em "history:<userId>".
type ClientRegistry struct {
	logger    *slog.Logger
	users     session.Authenticator
	store     kvstore.Store
	simulator *latency.Simulator
	now       func() time.Time

	mu      sync.Mutex
	clients map[string]*Client
}

func NewClientRegistry(
	logger *slog.Logger,
	users session.Authenticator,
	store kvstore.Store,
	simulator *latency.Simulator,
) *ClientRegistry {
	return &ClientRegistry{
		logger:    logger,
		users:     users,
		store:     store,
		simulator: simulator,
		now:       time.Now,
		clients:   make(map[string]*Client),
	}
}

func (r *ClientRegistry) WithClock(now func() time.Time) *ClientRegistry {
	r.now = now
	return r
}

// Get devolve o cliente do token, reidratando sessão, favoritos e histórico do store
// quando ele ainda não está em memória.
func (r *ClientRegistry) Get(ctx context.Context, token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("ClientRegistry.Get - empty client token: %w", domain.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clients[token]; ok {
		client.lastSeen = r.now()
		return client, nil
	}

	client, err := r.build(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("ClientRegistry.Get - %w", err)
	}
	client.lastSeen = r.now()
	r.clients[token] = client

	return client, nil
}

func (r *ClientRegistry) build(ctx context.Context, token string) (*Client, error) {
	clientStore := kvstore.NewNamespacedStore(r.store, kvstore.ClientNamespace(token))

	client := &Client{
		Token:     token,
		Session:   session.NewSessionManager(r.logger, r.users, clientStore, r.simulator),
		Favorites: favorites.NewFavoritesStore(r.logger, clientStore),
		History:   history.NewHistoryStore(r.logger, r.store),
	}
	client.Session.OnChange(client.History.OnSessionChange)

	if err := client.Favorites.Load(ctx); err != nil {
		return nil, err
	}
	if err := client.Session.Restore(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

// Evict tira da memória os clientes parados há mais de idleFor. O estado salvo fica no store
// e volta na próxima requisição do mesmo token.
func (r *ClientRegistry) Evict(idleFor time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idleFor)
	evicted := 0
	for token, client := range r.clients {
		if client.lastSeen.Before(cutoff) {
			delete(r.clients, token)
			evicted++
		}
	}

	if evicted > 0 {
		r.logger.Info("Evicted idle clients", "count", evicted, "remaining", len(r.clients))
	}
	return evicted
}

func (r *ClientRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.clients)
}
