package leads

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/format"
)

type MessageSender interface {
	SendMessage(ctx context.Context, input domain.MessageInput) (entities.Message, error)
}

// LeadService transforma o wizard de compra/venda numa mensagem de contato.
type LeadService struct {
	logger   *slog.Logger
	messages MessageSender
}

func NewLeadService(logger *slog.Logger, messages MessageSender) *LeadService {
	return &LeadService{
		logger:   logger,
		messages: messages,
	}
}

func (s *LeadService) Submit(ctx context.Context, lead entities.Lead) (entities.Message, error) {
	if invalid := InvalidSteps(lead); len(invalid) > 0 {
		return entities.Message{}, fmt.Errorf("LeadService.Submit - incomplete steps %v: %w", invalid, domain.ErrValidation)
	}

	message, err := s.messages.SendMessage(ctx, domain.MessageInput{
		Name:    strings.TrimSpace(lead.Name),
		Email:   strings.TrimSpace(lead.Email),
		Phone:   strings.TrimSpace(lead.Phone),
		Subject: Subject(lead.Intent),
		Message: Summary(lead),
	})
	if err != nil {
		return entities.Message{}, fmt.Errorf("LeadService.Submit - %w", err)
	}

	s.logger.Info("Lead submitted", "message_id", message.ID, "intent", lead.Intent)
	return message, nil
}

func Subject(intent entities.LeadIntent) string {
	if intent == entities.LeadSell {
		return "Sell inquiry"
	}
	return "Buy inquiry"
}

// Summary monta o corpo da mensagem com as respostas do wizard.
func Summary(lead entities.Lead) string {
	verb := "buy"
	if lead.Intent == entities.LeadSell {
		verb = "sell"
	}

	lines := []string{
		fmt.Sprintf("Looking to %s a %s.", verb, strings.ToLower(propertyTypes[lead.PropertyType])),
		"Price range: " + priceRangeLabel(lead.PriceRange),
		"Bedrooms: " + lead.Bedrooms,
		"Bathrooms: " + lead.Bathrooms,
		"Timeline: " + timelines[lead.Timeline],
	}
	return strings.Join(lines, "\n")
}

func priceRangeLabel(key string) string {
	r, ok := priceRanges[key]
	switch {
	case !ok:
		return key
	case r.min == 0:
		return "below " + format.Currency(r.max)
	case r.max == 0:
		return format.Currency(r.min) + "+"
	default:
		return format.Currency(r.min) + " to " + format.Currency(r.max)
	}
}
