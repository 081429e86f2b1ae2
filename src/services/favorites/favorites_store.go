package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/infra/kvstore"
)

// FavoritesStore mantém a lista de favoritos da instância e regrava a lista inteira
// na chave "favorites" a cada mutação.
type FavoritesStore struct {
	logger *slog.Logger
	store  kvstore.Store

	mu        sync.RWMutex
	favorites []entities.Property
}

func NewFavoritesStore(logger *slog.Logger, store kvstore.Store) *FavoritesStore {
	return &FavoritesStore{
		logger:    logger,
		store:     store,
		favorites: []entities.Property{},
	}
}

// Load troca o snapshot em memória pelo que está salvo. Payload ilegível vira lista vazia.
func (f *FavoritesStore) Load(ctx context.Context) error {
	data, found, err := f.store.Load(ctx, kvstore.FavoritesKey)
	if err != nil {
		return fmt.Errorf("FavoritesStore.Load - failed to load favorites: %w", err)
	}

	loaded := []entities.Property{}
	if found {
		if err := json.Unmarshal(data, &loaded); err != nil {
			f.logger.Warn("Ignoring unreadable favorites payload", "error", fmt.Errorf("%v: %w", err, domain.ErrValidation))
			loaded = []entities.Property{}
		}
	}

	f.mu.Lock()
	f.favorites = loaded
	f.mu.Unlock()

	return nil
}

func (f *FavoritesStore) List() []entities.Property {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]entities.Property, 0, len(f.favorites))
	for _, p := range f.favorites {
		out = append(out, p.Clone())
	}
	return out
}

func (f *FavoritesStore) Contains(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return indexOf(f.favorites, id) >= 0
}

// Add ignora um imóvel que já está nos favoritos.
func (f *FavoritesStore) Add(ctx context.Context, property entities.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if indexOf(f.favorites, property.ID) >= 0 {
		return nil
	}

	next := append(cloneAll(f.favorites), property.Clone())
	if err := f.persist(ctx, next); err != nil {
		return fmt.Errorf("FavoritesStore.Add - %w", err)
	}
	f.favorites = next
	return nil
}

func (f *FavoritesStore) Remove(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := indexOf(f.favorites, id)
	if idx < 0 {
		return nil
	}

	next := cloneAll(f.favorites)
	next = append(next[:idx], next[idx+1:]...)
	if err := f.persist(ctx, next); err != nil {
		return fmt.Errorf("FavoritesStore.Remove - %w", err)
	}
	f.favorites = next
	return nil
}

func (f *FavoritesStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := []entities.Property{}
	if err := f.persist(ctx, next); err != nil {
		return fmt.Errorf("FavoritesStore.Clear - %w", err)
	}
	f.favorites = next
	return nil
}

func (f *FavoritesStore) persist(ctx context.Context, favorites []entities.Property) error {
	payload, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}
	if err := f.store.Save(ctx, kvstore.FavoritesKey, payload); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}

func indexOf(favorites []entities.Property, id string) int {
	for i, p := range favorites {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(favorites []entities.Property) []entities.Property {
	out := make([]entities.Property, 0, len(favorites)+1)
	for _, p := range favorites {
		out = append(out, p.Clone())
	}
	return out
}
