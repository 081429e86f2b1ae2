package properties

import (
	"context"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
)

// DeleteProperty não toca nas mensagens que apontam para o imóvel (referência fraca).
func (s *PropertyService) DeleteProperty(ctx context.Context, id string) error {
	if err := s.latency.Wait(ctx, latency.OpDelete); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("PropertyService.DeleteProperty - %w", err)
	}

	s.logger.Info("Property deleted", "property_id", id)
	s.publish(ctx, domain.EventPropertyDeleted, entities.Property{ID: id})

	return nil
}
