package domain

import "time"

const (
	EventPropertyCreated = "property.created"
	EventPropertyUpdated = "property.updated"
	EventPropertyDeleted = "property.deleted"
	EventUserCreated     = "user.created"
	EventUserUpdated     = "user.updated"
	EventUserDeleted     = "user.deleted"
	EventMessageSent     = "message.sent"
	EventMessageRead     = "message.read"
	EventMessageDeleted  = "message.deleted"
)

// DomainEvent é o envelope publicado depois de cada escrita bem sucedida.
type DomainEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Source     string    `json:"source"`
	Data       EventData `json:"data"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventData struct {
	// Reference is the id of the entity the event is about; it is also the partition key.
	Reference  string                 `json:"reference"`
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}
