package properties

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
	"estateportal/src/repositories"
	"estateportal/src/services/events"
)

type PropertyService struct {
	logger     *slog.Logger
	repository repositories.PropertyRepository
	latency    *latency.Simulator
	publisher  events.Publisher
	now        func() time.Time
}

func NewPropertyService(
	logger *slog.Logger,
	repository repositories.PropertyRepository,
	simulator *latency.Simulator,
	publisher events.Publisher,
) *PropertyService {
	return &PropertyService{
		logger:     logger,
		repository: repository,
		latency:    simulator,
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock troca o relógio usado em createdAt/updatedAt (testes).
func (s *PropertyService) WithClock(now func() time.Time) *PropertyService {
	s.now = now
	return s
}

// publish never fails the write that triggered it: the store has already changed.
func (s *PropertyService) publish(ctx context.Context, eventType string, property entities.Property) {
	event := events.New(eventType, "property", property.ID, map[string]interface{}{
		"title":  property.Title,
		"status": string(property.Status),
		"price":  property.Price,
	})

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish property event", "event_type", eventType, "property_id", property.ID, "error", err)
	}
}

func validateProperty(p entities.Property) error {
	var problems []string

	if strings.TrimSpace(p.Title) == "" {
		problems = append(problems, "title is required")
	}
	if p.Price < 0 {
		problems = append(problems, "price cannot be negative")
	}
	if p.Bedrooms < 0 || p.Bathrooms < 0 || p.Garage < 0 || p.Size < 0 {
		problems = append(problems, "bedrooms, bathrooms, garage and size cannot be negative")
	}
	if !p.Status.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown status %q", p.Status))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, "; "), domain.ErrValidation)
	}
	return nil
}
