package messages

import (
	"context"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
)

func (s *MessageService) DeleteMessage(ctx context.Context, id string) error {
	if err := s.latency.Wait(ctx, latency.OpMessageDelete); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("MessageService.DeleteMessage - %w", err)
	}

	s.logger.Info("Message deleted", "message_id", id)
	s.publish(ctx, domain.EventMessageDeleted, entities.Message{ID: id})

	return nil
}
