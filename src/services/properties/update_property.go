package properties

import (
	"context"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
)

// UpdateProperty faz merge raso do patch; id e createdAt nunca mudam.
func (s *PropertyService) UpdateProperty(ctx context.Context, id string, patch domain.PropertyPatch) (entities.Property, error) {
	if err := s.latency.Wait(ctx, latency.OpUpdate); err != nil {
		return entities.Property{}, err
	}

	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, fmt.Errorf("PropertyService.UpdateProperty - %w", err)
	}

	updated := applyPatch(current, patch)
	updatedAt := s.now()
	updated.UpdatedAt = &updatedAt

	if err := validateProperty(updated); err != nil {
		return entities.Property{}, fmt.Errorf("PropertyService.UpdateProperty - %w", err)
	}

	if err := s.repository.Replace(ctx, updated); err != nil {
		return entities.Property{}, fmt.Errorf("PropertyService.UpdateProperty - failed to replace: %w", err)
	}

	s.logger.Info("Property updated", "property_id", id)
	s.publish(ctx, domain.EventPropertyUpdated, updated)

	return updated.Clone(), nil
}

func applyPatch(p entities.Property, patch domain.PropertyPatch) entities.Property {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Bedrooms != nil {
		p.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		p.Bathrooms = *patch.Bathrooms
	}
	if patch.Garage != nil {
		p.Garage = *patch.Garage
	}
	if patch.Size != nil {
		p.Size = *patch.Size
	}
	if patch.YearBuilt != nil {
		p.YearBuilt = *patch.YearBuilt
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Features != nil {
		p.Features = make([]string, len(patch.Features))
		copy(p.Features, patch.Features)
	}
	if patch.Images != nil {
		p.Images = make([]string, len(patch.Images))
		copy(p.Images, patch.Images)
	}
	if patch.VideoURL != nil {
		p.VideoURL = *patch.VideoURL
	}
	if patch.Highlighted != nil {
		p.Highlighted = *patch.Highlighted
	}
	if patch.Agent != nil {
		p.Agent = *patch.Agent
	}
	return p
}
