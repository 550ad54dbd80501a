// Package security holds the input sanitizer and the format validators for
// account numbers and monetary amounts. Everything here is pure string work
// with no side effects.
package security

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Characters stripped from every inbound message before any other
	// processing. The set mirrors the usual injection suspects.
	blacklistPattern = regexp.MustCompile(`[<>"';]`)

	accountNumberPattern = regexp.MustCompile(`^\d{10,12}$`)
)

// Sanitize removes blacklisted characters from raw input and trims the
// surrounding whitespace. Input that is empty, or empty once cleaned,
// comes back as "".
func Sanitize(raw string) string {
	return strings.TrimSpace(blacklistPattern.ReplaceAllString(raw, ""))
}

// ValidateAccountNumber reports whether s is exactly 10 to 12 ASCII digits.
func ValidateAccountNumber(s string) bool {
	return accountNumberPattern.MatchString(s)
}

// ValidateAmount strips currency formatting ($ and ,) and parses the rest.
// The amount is valid only when it parses and is strictly positive; any
// invalid input yields (false, 0).
func ValidateAmount(s string) (bool, float64) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(s)
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || parsed <= 0 {
		return false, 0
	}
	return true, parsed
}
