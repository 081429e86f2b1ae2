// Package format holds the display helpers shared by the transport and the lead summaries.
package format

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats an amount as whole US dollars, e.g. "$4,500,000".
func Currency(amount float64) string {
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return printer.Sprintf("-$%d", -rounded)
	}
	return printer.Sprintf("$%d", rounded)
}

// Date formats t as "January 2, 2006".
func Date(t time.Time) string {
	return t.Format("January 2, 2006")
}

// Truncate cuts text to maxLength runes and appends "..." when something was cut.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}
