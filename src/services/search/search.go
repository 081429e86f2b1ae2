package search

import (
	"strings"

	"estateportal/src/domain/entities"
)

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// containsAny is true when any field contains the (already lower-cased) query.
func containsAny(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func propertyMatchesQuery(p entities.Property, query string) bool {
	return containsAny(query, p.Title, p.Address, p.Type)
}

// SearchProperties: título, endereço ou tipo.
func SearchProperties(properties []entities.Property, query string) []entities.Property {
	q := normalize(query)
	out := make([]entities.Property, 0, len(properties))
	for _, p := range properties {
		if propertyMatchesQuery(p, q) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func SearchViewed(viewed []entities.ViewedProperty, query string) []entities.ViewedProperty {
	q := normalize(query)
	out := make([]entities.ViewedProperty, 0, len(viewed))
	for _, v := range viewed {
		if propertyMatchesQuery(v.Property, q) {
			out = append(out, v.Clone())
		}
	}
	return out
}

// SearchMessages is the admin inbox search: name, email, subject or body.
func SearchMessages(messages []entities.Message, query string) []entities.Message {
	q := normalize(query)
	out := make([]entities.Message, 0, len(messages))
	for _, m := range messages {
		if containsAny(q, m.Name, m.Email, m.Subject, m.Message) {
			out = append(out, m.Clone())
		}
	}
	return out
}

func SearchUsers(users []entities.User, query string) []entities.User {
	q := normalize(query)
	out := make([]entities.User, 0, len(users))
	for _, u := range users {
		if containsAny(q, u.Name, u.Email, string(u.Role)) {
			out = append(out, u.Sanitized())
		}
	}
	return out
}
