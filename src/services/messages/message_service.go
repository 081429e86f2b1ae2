package messages

import (
	"context"
	"log/slog"
	"time"

	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
	"estateportal/src/repositories"
	"estateportal/src/services/events"
)

type MessageService struct {
	logger     *slog.Logger
	repository repositories.MessageRepository
	latency    *latency.Simulator
	publisher  events.Publisher
	now        func() time.Time
}

func NewMessageService(
	logger *slog.Logger,
	repository repositories.MessageRepository,
	simulator *latency.Simulator,
	publisher events.Publisher,
) *MessageService {
	return &MessageService{
		logger:     logger,
		repository: repository,
		latency:    simulator,
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *MessageService) WithClock(now func() time.Time) *MessageService {
	s.now = now
	return s
}

func (s *MessageService) publish(ctx context.Context, eventType string, message entities.Message) {
	properties := map[string]interface{}{
		"name":    message.Name,
		"email":   message.Email,
		"subject": message.Subject,
	}
	if message.PropertyID != nil {
		properties["property_id"] = *message.PropertyID
	}

	event := events.New(eventType, "message", message.ID, properties)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish message event", "event_type", eventType, "message_id", message.ID, "error", err)
	}
}
