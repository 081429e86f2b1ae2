package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"estateportal/src/domain"
	"estateportal/src/infra/kafka"
)

// Notification é o aviso gerado para cada mensagem de contato nova.
type Notification struct {
	MessageID  string
	Name       string
	Email      string
	Subject    string
	PropertyID string
	Lead       bool
}

type Notifier interface {
	Notify(ctx context.Context, notifications []Notification) error
}

// LogNotifier só registra no log; é o notifier padrão do lead-notifier.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, notifications []Notification) error {
	for _, notification := range notifications {
		n.logger.Info("New contact message",
			"message_id", notification.MessageID,
			"lead", notification.Lead,
			"subject", notification.Subject,
			"name", notification.Name,
			"email", notification.Email,
			"property_id", notification.PropertyID)
	}
	return nil
}

var leadSubjects = map[string]bool{
	"Buy inquiry":  true,
	"Sell inquiry": true,
}

type MessageNotificationConsumer struct {
	logger   *slog.Logger
	notifier Notifier
}

func NewMessageNotificationConsumer(logger *slog.Logger, notifier Notifier) *MessageNotificationConsumer {
	return &MessageNotificationConsumer{
		logger:   logger,
		notifier: notifier,
	}
}

func (c *MessageNotificationConsumer) Start(ctx context.Context, kafkaClient *kafka.KafkaClient, topic string) error {
	c.logger.Info("Starting message notification consumer", "topic", topic)

	handler := func(messages []kafka.Message) error {
		return c.handleMessages(ctx, messages)
	}

	return kafkaClient.Consumer(ctx, handler, topic)
}

// handleMessages filtra message.sent pelo header quando ele existe. Eventos ilegíveis são
// descartados com log; só uma falha do notifier devolve erro e segura o commit do lote.
func (c *MessageNotificationConsumer) handleMessages(ctx context.Context, messages []kafka.Message) error {
	if len(messages) == 0 {
		return nil
	}

	notifications := make([]Notification, 0, len(messages))

	for _, msg := range messages {
		if eventType, ok := msg.Headers["event_type"]; ok && eventType != domain.EventMessageSent {
			continue
		}

		var event domain.DomainEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Error("Failed to unmarshal message",
				"error", err,
				"key", msg.Key,
				"value", string(msg.Value))
			continue
		}

		if event.Type != domain.EventMessageSent {
			continue
		}
		if event.Data.Reference == "" {
			c.logger.Warn("Skipping message.sent event without reference", "key", msg.Key, "event_id", event.ID)
			continue
		}

		notification := Notification{
			MessageID:  event.Data.Reference,
			Name:       stringProperty(event.Data.Properties, "name"),
			Email:      stringProperty(event.Data.Properties, "email"),
			Subject:    stringProperty(event.Data.Properties, "subject"),
			PropertyID: stringProperty(event.Data.Properties, "property_id"),
		}
		notification.Lead = leadSubjects[notification.Subject]

		notifications = append(notifications, notification)
	}

	if len(notifications) == 0 {
		return nil
	}

	if err := c.notifier.Notify(ctx, notifications); err != nil {
		c.logger.Error("Failed to notify", "error", err, "count", len(notifications))
		return fmt.Errorf("failed to notify: %w", err)
	}

	c.logger.Info("Successfully processed messages batch",
		"count", len(messages),
		"notifications", len(notifications))

	return nil
}

func stringProperty(properties map[string]interface{}, key string) string {
	if v, ok := properties[key].(string); ok {
		return v
	}
	return ""
}
