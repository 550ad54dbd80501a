// Package entity extracts structured values (amounts, account numbers) from
// free-form chat text via pattern matching.
package entity

import "regexp"

// Map keys for extracted entities. A key is present only when its pattern
// matched; there are never nil-valued entries.
const (
	KeyAmount        = "amount"
	KeyAccountNumber = "account_number"
)

var (
	// Optional dollar sign, comma-grouped digits, optional two-decimal cents.
	// The capture group keeps the digits without the $.
	amountPattern = regexp.MustCompile(`\$?(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)

	// Standalone 10 to 12 digit run. Longer runs do not match at all.
	accountPattern = regexp.MustCompile(`\b\d{10,12}\b`)
)

// Extract runs both patterns over sanitized text and keeps the first match
// of each. The amount is stored as its matched substring, not parsed; the
// validators in internal/security handle numeric interpretation.
func Extract(text string) map[string]string {
	entities := map[string]string{}

	if m := amountPattern.FindStringSubmatch(text); m != nil {
		entities[KeyAmount] = m[1]
	}

	if m := accountPattern.FindString(text); m != "" {
		entities[KeyAccountNumber] = m
	}

	return entities
}
