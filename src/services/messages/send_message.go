package messages

import (
	"context"
	"fmt"
	"strings"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/ids"
	"estateportal/src/helper/latency"
	"estateportal/src/helper/validate"
)

// SendMessage é o create das mensagens: sempre nasce como não lida e entra no topo da caixa.
// PropertyID não é verificado; a mensagem pode referenciar um imóvel que já não existe.
func (s *MessageService) SendMessage(ctx context.Context, input domain.MessageInput) (entities.Message, error) {
	if err := s.latency.Wait(ctx, latency.OpMessageSend); err != nil {
		return entities.Message{}, err
	}

	if err := validateMessage(input); err != nil {
		return entities.Message{}, fmt.Errorf("MessageService.SendMessage - %w", err)
	}

	message := entities.Message{
		ID:         ids.New(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Subject:    input.Subject,
		Message:    input.Message,
		PropertyID: input.PropertyID,
		Read:       false,
		CreatedAt:  s.now(),
	}
	if message.PropertyID != nil && *message.PropertyID == "" {
		message.PropertyID = nil
	}
	message = message.Clone()

	if err := s.repository.Insert(ctx, message); err != nil {
		return entities.Message{}, fmt.Errorf("MessageService.SendMessage - failed to insert: %w", err)
	}

	s.logger.Info("Contact message received", "message_id", message.ID, "subject", message.Subject)
	s.publish(ctx, domain.EventMessageSent, message)

	return message.Clone(), nil
}

func validateMessage(input domain.MessageInput) error {
	required := []struct{ field, value string }{
		{"name", input.Name},
		{"email", input.Email},
		{"subject", input.Subject},
		{"message", input.Message},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required fields %v: %w", missing, domain.ErrValidation)
	}
	if !validate.Email(input.Email) {
		return fmt.Errorf("invalid email %q: %w", input.Email, domain.ErrValidation)
	}
	return nil
}
