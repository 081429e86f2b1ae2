package ids

import "github.com/google/uuid"

// New returns a fresh random identifier.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s has the shape of an identifier returned by New.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
