package users

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
	"estateportal/src/helper/validate"
	"estateportal/src/repositories"
	"estateportal/src/services/events"
)

// UserService nunca devolve senha: toda saída passa por Sanitized.
type UserService struct {
	logger     *slog.Logger
	repository repositories.UserRepository
	latency    *latency.Simulator
	publisher  events.Publisher
	now        func() time.Time
}

func NewUserService(
	logger *slog.Logger,
	repository repositories.UserRepository,
	simulator *latency.Simulator,
	publisher events.Publisher,
) *UserService {
	return &UserService{
		logger:     logger,
		repository: repository,
		latency:    simulator,
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *UserService) WithClock(now func() time.Time) *UserService {
	s.now = now
	return s
}

func (s *UserService) publish(ctx context.Context, eventType string, user entities.User) {
	event := events.New(eventType, "user", user.ID, map[string]interface{}{
		"email": user.Email,
		"role":  string(user.Role),
	})

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish user event", "event_type", eventType, "user_id", user.ID, "error", err)
	}
}

func validateUser(u entities.User) error {
	var problems []string

	if strings.TrimSpace(u.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !validate.Email(u.Email) {
		problems = append(problems, fmt.Sprintf("invalid email %q", u.Email))
	}
	if u.Password == "" {
		problems = append(problems, "password is required")
	}
	if !u.Role.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown role %q", u.Role))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, "; "), domain.ErrValidation)
	}
	return nil
}
