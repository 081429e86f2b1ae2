package messages

import (
	"context"
	"fmt"

	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
	"estateportal/src/services/search"
)

// ListMessages devolve a mais recente primeiro.
func (s *MessageService) ListMessages(ctx context.Context) ([]entities.Message, error) {
	if err := s.latency.Wait(ctx, latency.OpMessageList); err != nil {
		return nil, err
	}

	messages, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("MessageService.ListMessages - failed to list from repository: %w", err)
	}
	return messages, nil
}

func (s *MessageService) GetMessage(ctx context.Context, id string) (entities.Message, error) {
	if err := s.latency.Wait(ctx, latency.OpMessageGet); err != nil {
		return entities.Message{}, err
	}

	message, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return entities.Message{}, fmt.Errorf("MessageService.GetMessage - %w", err)
	}
	return message, nil
}

func (s *MessageService) SearchMessages(ctx context.Context, query string) ([]entities.Message, error) {
	messages, err := s.ListMessages(ctx)
	if err != nil {
		return nil, err
	}
	return search.SearchMessages(messages, query), nil
}
