package stubs

import (
	"github.com/brianvoe/gofakeit/v6"

	"estateportal/src/domain/entities"
)

type LeadStub struct {
	lead entities.Lead
}

// NewLeadStub devolve um wizard completo e válido.
func NewLeadStub() LeadStub {
	lead := entities.Lead{
		Intent:       entities.LeadBuy,
		PropertyType: "condo",
		PriceRange:   "1m-3m",
		Bedrooms:     "3",
		Bathrooms:    "2",
		Timeline:     "soon",
		Name:         gofakeit.Name(),
		Email:        gofakeit.Email(),
		Phone:        "+55 (11) 99999-9999",
	}

	return LeadStub{lead: lead}
}

func (ls LeadStub) WithIntent(intent entities.LeadIntent) LeadStub {
	ls.lead.Intent = intent
	return ls
}

func (ls LeadStub) WithPropertyType(propertyType string) LeadStub {
	ls.lead.PropertyType = propertyType
	return ls
}

func (ls LeadStub) WithPriceRange(priceRange string) LeadStub {
	ls.lead.PriceRange = priceRange
	return ls
}

func (ls LeadStub) WithTimeline(timeline string) LeadStub {
	ls.lead.Timeline = timeline
	return ls
}

func (ls LeadStub) WithContact(name string, email string, phone string) LeadStub {
	ls.lead.Name = name
	ls.lead.Email = email
	ls.lead.Phone = phone
	return ls
}

func (ls LeadStub) Get() entities.Lead {
	return ls.lead
}
