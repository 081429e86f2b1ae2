package entities

import "time"

type PropertyStatus string

const (
	StatusForSale PropertyStatus = "for-sale"
	StatusForRent PropertyStatus = "for-rent"
	StatusSold    PropertyStatus = "sold"
	StatusPending PropertyStatus = "pending"

	// StatusAll só é aceito por filtros e significa "sem filtro".
	StatusAll PropertyStatus = "all"
)

func (s PropertyStatus) IsValid() bool {
	switch s {
	case StatusForSale, StatusForRent, StatusSold, StatusPending:
		return true
	}
	return false
}

// IsActive reports whether the listing is still on the market.
func (s PropertyStatus) IsActive() bool {
	return s == StatusForSale || s == StatusForRent
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Agent é um value object: vive dentro da Property e é copiado junto com ela.
type Agent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Photo string `json:"photo,omitempty"`
}

type Property struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Type        string         `json:"type"`
	Status      PropertyStatus `json:"status"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   float64        `json:"bathrooms"`
	Garage      int            `json:"garage"`
	Size        int            `json:"size"`
	YearBuilt   int            `json:"yearBuilt"`
	Address     string         `json:"address"`
	Location    Location       `json:"location"`
	Features    []string       `json:"features"`
	Images      []string       `json:"images"`
	VideoURL    string         `json:"videoUrl,omitempty"`
	Highlighted bool           `json:"highlighted"`
	Agent       Agent          `json:"agent"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
}

// Clone returns a deep copy; the slices and the update stamp are not shared with the receiver.
func (p Property) Clone() Property {
	clone := p
	clone.Features = cloneStrings(p.Features)
	clone.Images = cloneStrings(p.Images)
	if p.UpdatedAt != nil {
		updatedAt := *p.UpdatedAt
		clone.UpdatedAt = &updatedAt
	}
	return clone
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
