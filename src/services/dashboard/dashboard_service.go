package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
)

type PropertyLister interface {
	ListProperties(ctx context.Context) ([]entities.Property, error)
}

type UserLister interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
}

type MessageLister interface {
	ListMessages(ctx context.Context) ([]entities.Message, error)
}

type DashboardService struct {
	logger     *slog.Logger
	properties PropertyLister
	users      UserLister
	messages   MessageLister
}

func NewDashboardService(
	logger *slog.Logger,
	properties PropertyLister,
	users UserLister,
	messages MessageLister,
) *DashboardService {
	return &DashboardService{
		logger:     logger,
		properties: properties,
		users:      users,
		messages:   messages,
	}
}

// Stats busca as três listas em paralelo; cada uma paga a própria latência.
func (s *DashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	var (
		properties []entities.Property
		users      []entities.User
		messages   []entities.Message
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		properties, err = s.properties.ListProperties(gctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = s.users.ListUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		messages, err = s.messages.ListMessages(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("DashboardService.Stats - %w", err)
	}

	stats := domain.DashboardStats{
		TotalProperties: len(properties),
		TotalUsers:      len(users),
		TotalMessages:   len(messages),
	}
	for _, p := range properties {
		if p.Status.IsActive() {
			stats.ActiveListings++
		}
	}
	for _, m := range messages {
		if !m.Read {
			stats.UnreadMessages++
		}
	}

	return stats, nil
}
