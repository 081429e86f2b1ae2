package properties

import (
	"context"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/services/search"
)

func (s *PropertyService) FilterProperties(ctx context.Context, filter domain.PropertyFilter) ([]entities.Property, error) {
	properties, err := s.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	return search.FilterProperties(properties, filter), nil
}

func (s *PropertyService) SearchProperties(ctx context.Context, query string) ([]entities.Property, error) {
	properties, err := s.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	return search.SearchProperties(properties, query), nil
}
