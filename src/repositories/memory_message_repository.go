package repositories

import (
	"context"
	"fmt"
	"sync"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
)

type MemoryMessageRepository struct {
	mu       sync.RWMutex
	messages []entities.Message
}

// NewMemoryMessageRepository expects seed already ordered newest first.
func NewMemoryMessageRepository(seed ...entities.Message) *MemoryMessageRepository {
	messages := make([]entities.Message, 0, len(seed))
	for _, m := range seed {
		messages = append(messages, m.Clone())
	}
	return &MemoryMessageRepository{messages: messages}
}

func (r *MemoryMessageRepository) List(_ context.Context) ([]entities.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Message, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, m.Clone())
	}
	return out, nil
}

func (r *MemoryMessageRepository) GetByID(_ context.Context, id string) (entities.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.messages {
		if m.ID == id {
			return m.Clone(), nil
		}
	}
	return entities.Message{}, fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
}

func (r *MemoryMessageRepository) Insert(_ context.Context, message entities.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append([]entities.Message{message.Clone()}, r.messages...)
	return nil
}

func (r *MemoryMessageRepository) Replace(_ context.Context, message entities.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.messages {
		if m.ID == message.ID {
			r.messages[i] = message.Clone()
			return nil
		}
	}
	return fmt.Errorf("message %s: %w", message.ID, domain.ErrNotFound)
}

func (r *MemoryMessageRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.messages {
		if m.ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
}
