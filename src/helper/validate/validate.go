package validate

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// (305) 555-1234, 305-555-1234, +1 305.555.1234 ...
	phonePattern = regexp.MustCompile(`^(\+?1[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}$`)
)

func Email(email string) bool {
	return emailPattern.MatchString(email)
}

func Phone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}
