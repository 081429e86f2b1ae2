package repositories

import (
	"context"
	"fmt"
	"sync"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
)

type MemoryPropertyRepository struct {
	mu         sync.RWMutex
	properties []entities.Property
}

func NewMemoryPropertyRepository(seed ...entities.Property) *MemoryPropertyRepository {
	properties := make([]entities.Property, 0, len(seed))
	for _, p := range seed {
		properties = append(properties, p.Clone())
	}
	return &MemoryPropertyRepository{properties: properties}
}

func (r *MemoryPropertyRepository) List(_ context.Context) ([]entities.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Property, 0, len(r.properties))
	for _, p := range r.properties {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *MemoryPropertyRepository) GetByID(_ context.Context, id string) (entities.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return entities.Property{}, fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
	}
	return r.properties[i].Clone(), nil
}

func (r *MemoryPropertyRepository) Insert(_ context.Context, property entities.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(property.ID) >= 0 {
		return fmt.Errorf("property %s already exists", property.ID)
	}
	r.properties = append(r.properties, property.Clone())
	return nil
}

func (r *MemoryPropertyRepository) Replace(_ context.Context, property entities.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(property.ID)
	if i < 0 {
		return fmt.Errorf("property %s: %w", property.ID, domain.ErrNotFound)
	}
	r.properties[i] = property.Clone()
	return nil
}

func (r *MemoryPropertyRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
	}
	r.properties = append(r.properties[:i], r.properties[i+1:]...)
	return nil
}

func (r *MemoryPropertyRepository) indexOf(id string) int {
	for i, p := range r.properties {
		if p.ID == id {
			return i
		}
	}
	return -1
}
