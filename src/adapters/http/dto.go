package http

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/services/session"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	User     entities.User `json:"user"`
	State    session.State `json:"state"`
	Redirect string        `json:"redirect"`
}

// PropertyDetailResponse é o imóvel com a marcação de favorito do cliente.
type PropertyDetailResponse struct {
	entities.Property
	Favorite bool `json:"favorite"`
}

type FavoriteRequest struct {
	PropertyID string `json:"propertyId"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// parsePropertyFilter lê minPrice, maxPrice, bedrooms, bathrooms, status e q da query string.
// hasCriteria indica se algum critério foi informado.
func parsePropertyFilter(query url.Values) (filter domain.PropertyFilter, hasCriteria bool, err error) {
	parseFloat := func(name string) (*float64, error) {
		raw := query.Get(name)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid %s %q: %w", name, raw, domain.ErrValidation)
		}
		hasCriteria = true
		return &v, nil
	}

	if filter.MinPrice, err = parseFloat("minPrice"); err != nil {
		return filter, false, err
	}
	if filter.MaxPrice, err = parseFloat("maxPrice"); err != nil {
		return filter, false, err
	}
	if filter.Bathrooms, err = parseFloat("bathrooms"); err != nil {
		return filter, false, err
	}

	if raw := query.Get("bedrooms"); raw != "" {
		v, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return filter, false, fmt.Errorf("invalid bedrooms %q: %w", raw, domain.ErrValidation)
		}
		filter.Bedrooms = &v
		hasCriteria = true
	}

	if raw := query.Get("status"); raw != "" {
		status := entities.PropertyStatus(raw)
		if status != entities.StatusAll && !status.IsValid() {
			return filter, false, fmt.Errorf("invalid status %q: %w", raw, domain.ErrValidation)
		}
		filter.Status = status
		hasCriteria = true
	}

	if q := query.Get("q"); q != "" {
		filter.Query = q
		hasCriteria = true
	}

	return filter, hasCriteria, nil
}
