package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"estateportal/src/domain"
	"estateportal/src/helper/ids"
	"estateportal/src/infra/kafka"
)

const sourceService = "estateportal-api"

// Publisher é o que os serviços enxergam; a implementação real fala com o Kafka.
type Publisher interface {
	Publish(ctx context.Context, events ...domain.DomainEvent) error
}

// New monta um evento com id e horário preenchidos.
func New(eventType string, entityType string, reference string, properties map[string]interface{}) domain.DomainEvent {
	return domain.DomainEvent{
		ID:     ids.New(),
		Type:   eventType,
		Source: sourceService,
		Data: domain.EventData{
			Reference:  reference,
			Type:       entityType,
			Properties: properties,
		},
		OccurredAt: time.Now().UTC(),
	}
}

type DomainEventPublisher struct {
	logger      *slog.Logger
	kafkaClient *kafka.KafkaClient
	topic       string
}

func NewDomainEventPublisher(
	logger *slog.Logger,
	kafkaClient *kafka.KafkaClient,
	topic string,
) *DomainEventPublisher {
	return &DomainEventPublisher{
		logger:      logger,
		kafkaClient: kafkaClient,
		topic:       topic,
	}
}

// Publish publishes a batch of domain events to Kafka
func (p *DomainEventPublisher) Publish(ctx context.Context, events ...domain.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	kafkaMessages := make([]kafka.Message, 0, len(events))

	for _, event := range events {
		eventBytes, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("Failed to marshal domain event",
				"error", err,
				"event_id", event.ID,
				"entity_reference", event.Data.Reference)
			continue
		}

		kafkaMessages = append(kafkaMessages, kafka.Message{
			Key:     event.Data.Reference, // Partition by entity for ordering
			Value:   eventBytes,
			Headers: createEventHeaders(event),
		})
	}

	if err := p.kafkaClient.Producer(kafkaMessages, p.topic); err != nil {
		return fmt.Errorf("failed to publish domain events to topic %s: %w", p.topic, err)
	}

	p.logger.Debug("Published domain events", "topic", p.topic, "events_count", len(kafkaMessages))
	return nil
}

// createEventHeaders permite que consumidores filtrem sem desserializar o payload.
func createEventHeaders(event domain.DomainEvent) map[string]string {
	headers := map[string]string{
		"event_type":     event.Type,
		"source_service": event.Source,
		"schema_version": "v1",
		"event_id":       event.ID,
	}

	if event.Data.Type != "" {
		headers["entity_type"] = event.Data.Type
	}

	if len(event.Data.Properties) > 0 {
		fields := make([]string, 0, len(event.Data.Properties))
		for field := range event.Data.Properties {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		headers["fields_changed"] = strings.Join(fields, ",")
	}

	return headers
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...domain.DomainEvent) error {
	return nil
}

// RecordingPublisher keeps every event in memory. Used by tests and by the memory profile.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []domain.DomainEvent
	Err    error
}

func (p *RecordingPublisher) Publish(_ context.Context, events ...domain.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, events...)
	return nil
}

func (p *RecordingPublisher) Events() []domain.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]domain.DomainEvent(nil), p.events...)
}

// Types returns the recorded event types in publish order.
func (p *RecordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}
