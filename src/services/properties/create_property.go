package properties

import (
	"context"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/ids"
	"estateportal/src/helper/latency"
)

// CreateProperty gera id e createdAt e acrescenta o imóvel ao fim da coleção.
func (s *PropertyService) CreateProperty(ctx context.Context, input domain.PropertyInput) (entities.Property, error) {
	if err := s.latency.Wait(ctx, latency.OpCreate); err != nil {
		return entities.Property{}, err
	}

	status := input.Status
	if status == "" {
		status = entities.StatusForSale
	}

	property := entities.Property{
		ID:          ids.New(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Type:        input.Type,
		Status:      status,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Garage:      input.Garage,
		Size:        input.Size,
		YearBuilt:   input.YearBuilt,
		Address:     input.Address,
		Location:    input.Location,
		Features:    input.Features,
		Images:      input.Images,
		VideoURL:    input.VideoURL,
		Highlighted: input.Highlighted,
		Agent:       input.Agent,
		CreatedAt:   s.now(),
	}
	property = property.Clone()

	if err := validateProperty(property); err != nil {
		return entities.Property{}, fmt.Errorf("PropertyService.CreateProperty - %w", err)
	}

	if err := s.repository.Insert(ctx, property); err != nil {
		return entities.Property{}, fmt.Errorf("PropertyService.CreateProperty - failed to insert: %w", err)
	}

	s.logger.Info("Property created", "property_id", property.ID, "title", property.Title)
	s.publish(ctx, domain.EventPropertyCreated, property)

	return property.Clone(), nil
}
