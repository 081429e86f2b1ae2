package entities

type LeadIntent string

const (
	LeadBuy  LeadIntent = "buy"
	LeadSell LeadIntent = "sell"
)

// Lead is the payload collected by the buy/sell wizard.
type Lead struct {
	Intent       LeadIntent `json:"intent"`
	PropertyType string     `json:"propertyType"`
	PriceRange   string     `json:"priceRange"`
	Bedrooms     string     `json:"bedrooms"`
	Bathrooms    string     `json:"bathrooms"`
	Timeline     string     `json:"timeline"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
}
