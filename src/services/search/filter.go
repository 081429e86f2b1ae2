// Package search holds the derived views over collections: pure functions of (source, criteria).
package search

import (
	"estateportal/src/domain"
	"estateportal/src/domain/entities"
)

// FilterProperties aplica os critérios com AND. Quartos e banheiros são limite mínimo
// (actual >= requested), a mesma política em toda a aplicação.
// O filtro zero devolve a coleção inteira, na mesma ordem.
func FilterProperties(properties []entities.Property, filter domain.PropertyFilter) []entities.Property {
	out := make([]entities.Property, 0, len(properties))
	for _, p := range properties {
		if matches(p, filter) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func matches(p entities.Property, f domain.PropertyFilter) bool {
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms < *f.Bedrooms {
		return false
	}
	if f.Bathrooms != nil && p.Bathrooms < *f.Bathrooms {
		return false
	}
	if f.Status != "" && f.Status != entities.StatusAll && p.Status != f.Status {
		return false
	}
	if !propertyMatchesQuery(p, normalize(f.Query)) {
		return false
	}
	return true
}
