package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"estateportal/src/domain/entities"
)

type PropertyStub struct {
	property entities.Property
}

func NewPropertyStub() PropertyStub {
	now := time.Now().UTC()

	property := entities.Property{
		ID:          gofakeit.UUID(),
		Title:       gofakeit.Company() + " Residence",
		Description: gofakeit.Sentence(20),
		Price:       float64(gofakeit.IntRange(200, 9000) * 1000),
		Type:        gofakeit.RandomString([]string{"House", "Apartment", "Villa", "Condo", "Penthouse"}),
		Status:      entities.StatusForSale,
		Bedrooms:    gofakeit.IntRange(1, 6),
		Bathrooms:   float64(gofakeit.IntRange(2, 10)) / 2,
		Garage:      gofakeit.IntRange(0, 3),
		Size:        gofakeit.IntRange(800, 9000),
		YearBuilt:   gofakeit.IntRange(1950, 2024),
		Address:     gofakeit.Street() + ", " + gofakeit.City() + ", " + gofakeit.StateAbr(),
		Location: entities.Location{
			Latitude:  gofakeit.Latitude(),
			Longitude: gofakeit.Longitude(),
		},
		Features: []string{"Pool", "Garden", "Fireplace"},
		Images:   []string{gofakeit.URL() + "/1.jpg", gofakeit.URL() + "/2.jpg"},
		Agent: entities.Agent{
			ID:    gofakeit.UUID(),
			Name:  gofakeit.Name(),
			Phone: gofakeit.Phone(),
			Email: gofakeit.Email(),
		},
		CreatedAt: now,
	}

	return PropertyStub{property: property}
}

func (ps PropertyStub) WithID(id string) PropertyStub {
	ps.property.ID = id
	return ps
}

func (ps PropertyStub) WithTitle(title string) PropertyStub {
	ps.property.Title = title
	return ps
}

func (ps PropertyStub) WithAddress(address string) PropertyStub {
	ps.property.Address = address
	return ps
}

func (ps PropertyStub) WithType(propertyType string) PropertyStub {
	ps.property.Type = propertyType
	return ps
}

func (ps PropertyStub) WithStatus(status entities.PropertyStatus) PropertyStub {
	ps.property.Status = status
	return ps
}

func (ps PropertyStub) WithPrice(price float64) PropertyStub {
	ps.property.Price = price
	return ps
}

func (ps PropertyStub) WithBedrooms(bedrooms int) PropertyStub {
	ps.property.Bedrooms = bedrooms
	return ps
}

func (ps PropertyStub) WithBathrooms(bathrooms float64) PropertyStub {
	ps.property.Bathrooms = bathrooms
	return ps
}

func (ps PropertyStub) WithHighlighted(highlighted bool) PropertyStub {
	ps.property.Highlighted = highlighted
	return ps
}

func (ps PropertyStub) WithFeatures(features ...string) PropertyStub {
	ps.property.Features = features
	return ps
}

func (ps PropertyStub) WithCreatedAt(createdAt time.Time) PropertyStub {
	ps.property.CreatedAt = createdAt
	return ps
}

func (ps PropertyStub) Get() entities.Property {
	return ps.property.Clone()
}
