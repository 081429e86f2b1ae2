package properties

import (
	"context"
	"fmt"

	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
)

func (s *PropertyService) ListProperties(ctx context.Context) ([]entities.Property, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return nil, err
	}

	properties, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("PropertyService.ListProperties - failed to list from repository: %w", err)
	}

	return properties, nil
}

// HighlightedProperties lista os destaques da home.
func (s *PropertyService) HighlightedProperties(ctx context.Context) ([]entities.Property, error) {
	properties, err := s.ListProperties(ctx)
	if err != nil {
		return nil, err
	}

	highlighted := make([]entities.Property, 0)
	for _, p := range properties {
		if p.Highlighted {
			highlighted = append(highlighted, p)
		}
	}
	return highlighted, nil
}
