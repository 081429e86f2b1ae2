package entities

import "time"

// Message is a contact-form submission. PropertyID is a weak reference: deleting the
// property leaves it dangling.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	PropertyID *string   `json:"propertyId"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (m Message) Clone() Message {
	clone := m
	if m.PropertyID != nil {
		propertyID := *m.PropertyID
		clone.PropertyID = &propertyID
	}
	return clone
}
