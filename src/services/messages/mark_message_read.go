package messages

import (
	"context"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
)

// MarkMessageRead é idempotente: marcar de novo não regrava nem publica evento.
func (s *MessageService) MarkMessageRead(ctx context.Context, id string) (entities.Message, error) {
	if err := s.latency.Wait(ctx, latency.OpMessageUpdate); err != nil {
		return entities.Message{}, err
	}

	message, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return entities.Message{}, fmt.Errorf("MessageService.MarkMessageRead - %w", err)
	}

	if message.Read {
		return message, nil
	}

	message.Read = true
	if err := s.repository.Replace(ctx, message); err != nil {
		return entities.Message{}, fmt.Errorf("MessageService.MarkMessageRead - failed to replace: %w", err)
	}

	s.publish(ctx, domain.EventMessageRead, message)
	return message.Clone(), nil
}
