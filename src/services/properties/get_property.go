package properties

import (
	"context"
	"fmt"

	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
)

func (s *PropertyService) GetProperty(ctx context.Context, id string) (entities.Property, error) {
	if err := s.latency.Wait(ctx, latency.OpGet); err != nil {
		return entities.Property{}, err
	}

	property, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, fmt.Errorf("PropertyService.GetProperty - %w", err)
	}

	return property, nil
}
