package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/infra/kvstore"
	"estateportal/src/services/search"
)

// MaxEntries limita o histórico de cada conta.
const MaxEntries = 20

// HistoryStore guarda os imóveis vistos pelo usuário logado em "history:<userId>".
// Sem usuário logado a lista fica vazia e RecordView não faz nada.
type HistoryStore struct {
	logger *slog.Logger
	store  kvstore.Store
	now    func() time.Time

	mu     sync.RWMutex
	userID string
	viewed []entities.ViewedProperty
}

func NewHistoryStore(logger *slog.Logger, store kvstore.Store) *HistoryStore {
	return &HistoryStore{
		logger: logger,
		store:  store,
		now:    time.Now,
		viewed: []entities.ViewedProperty{},
	}
}

func (h *HistoryStore) WithClock(now func() time.Time) *HistoryStore {
	h.now = now
	return h
}

// OnSessionChange troca o dono do histórico. Usado como listener do SessionManager.
// No logout só esvazia a memória, a chave da conta continua salva.
func (h *HistoryStore) OnSessionChange(ctx context.Context, user *entities.User) {
	if user == nil {
		h.mu.Lock()
		h.userID = ""
		h.viewed = []entities.ViewedProperty{}
		h.mu.Unlock()
		return
	}

	if err := h.Load(ctx, user.ID); err != nil {
		h.logger.Error("Failed to load viewed history", "user_id", user.ID, "error", err)
	}
}

// Load lê o histórico do usuário. Payload ilegível vira lista vazia.
func (h *HistoryStore) Load(ctx context.Context, userID string) error {
	loaded := []entities.ViewedProperty{}

	data, found, err := h.store.Load(ctx, kvstore.HistoryKey(userID))
	if err != nil {
		return fmt.Errorf("HistoryStore.Load - failed to load history: %w", err)
	}
	if found {
		if err := json.Unmarshal(data, &loaded); err != nil {
			h.logger.Warn("Ignoring unreadable history payload", "user_id", userID, "error", fmt.Errorf("%v: %w", err, domain.ErrValidation))
			loaded = []entities.ViewedProperty{}
		}
	}

	h.mu.Lock()
	h.userID = userID
	h.viewed = loaded
	h.mu.Unlock()

	return nil
}

func (h *HistoryStore) List() []entities.ViewedProperty {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]entities.ViewedProperty, 0, len(h.viewed))
	for _, v := range h.viewed {
		out = append(out, v.Clone())
	}
	return out
}

func (h *HistoryStore) Search(query string) []entities.ViewedProperty {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return search.SearchViewed(h.viewed, query)
}

// RecordView move o imóvel para o topo com o horário atual e corta em MaxEntries.
func (h *HistoryStore) RecordView(ctx context.Context, property entities.Property) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.userID == "" {
		return nil
	}

	next := make([]entities.ViewedProperty, 0, MaxEntries)
	next = append(next, entities.ViewedProperty{Property: property.Clone(), ViewedAt: h.now()})
	for _, v := range h.viewed {
		if v.ID == property.ID {
			continue
		}
		if len(next) == MaxEntries {
			break
		}
		next = append(next, v.Clone())
	}

	if err := h.persist(ctx, next); err != nil {
		return fmt.Errorf("HistoryStore.RecordView - %w", err)
	}
	h.viewed = next
	return nil
}

// Remove apaga a chave quando a lista fica vazia.
func (h *HistoryStore) Remove(ctx context.Context, id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.userID == "" {
		return nil
	}

	next := make([]entities.ViewedProperty, 0, len(h.viewed))
	for _, v := range h.viewed {
		if v.ID != id {
			next = append(next, v.Clone())
		}
	}
	if len(next) == len(h.viewed) {
		return nil
	}

	if len(next) == 0 {
		if err := h.store.Delete(ctx, kvstore.HistoryKey(h.userID)); err != nil {
			return fmt.Errorf("HistoryStore.Remove - failed to delete history: %w", err)
		}
	} else if err := h.persist(ctx, next); err != nil {
		return fmt.Errorf("HistoryStore.Remove - %w", err)
	}

	h.viewed = next
	return nil
}

func (h *HistoryStore) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.userID != "" {
		if err := h.store.Delete(ctx, kvstore.HistoryKey(h.userID)); err != nil {
			return fmt.Errorf("HistoryStore.Clear - failed to delete history: %w", err)
		}
	}
	h.viewed = []entities.ViewedProperty{}
	return nil
}

func (h *HistoryStore) persist(ctx context.Context, viewed []entities.ViewedProperty) error {
	payload, err := json.Marshal(viewed)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := h.store.Save(ctx, kvstore.HistoryKey(h.userID), payload); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}
