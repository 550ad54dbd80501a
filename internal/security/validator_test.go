package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsBlacklist(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"angle brackets", "<script>alert</script>", "scriptalert/script"},
		{"quotes", `say "hello" to 'them'`, "say hello to them"},
		{"semicolons", "DROP TABLE users;", "DROP TABLE users"},
		{"mixed", `<b>'1';"2"</b>`, "b12/b"},
		{"empty", "", ""},
		{"whitespace only", "   \t  ", ""},
		{"blacklist only", `<>"';`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "<")
			assert.NotContains(t, got, ">")
			assert.NotContains(t, got, `"`)
			assert.NotContains(t, got, "'")
			assert.NotContains(t, got, ";")
		})
	}
}

func TestSanitizeCleanInputEqualsTrim(t *testing.T) {
	// Without blacklisted characters, Sanitize is exactly a trim.
	for _, input := range []string{
		"hello world",
		"  padded input  ",
		"\ttabs and spaces \n",
		"amount $1,200.50 to 1234567890",
	} {
		assert.Equal(t, strings.TrimSpace(input), Sanitize(input))
	}
}

func TestValidateAccountNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"12345", false},
		{"1234567890", true},
		{"12345678901", true},
		{"123456789012", true},
		{"12345678901234", false},
		{"12345abcde", false},
		{"", false},
		{" 1234567890", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateAccountNumber(tt.input), "input %q", tt.input)
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		input     string
		wantValid bool
		wantValue float64
	}{
		{"$1,000.00", true, 1000.0},
		{"250.75", true, 250.75},
		{"$85.42", true, 85.42},
		{"-5", false, 0},
		{"0", false, 0},
		{"abc", false, 0},
		{"", false, 0},
		{"$", false, 0},
	}

	for _, tt := range tests {
		valid, value := ValidateAmount(tt.input)
		assert.Equal(t, tt.wantValid, valid, "input %q", tt.input)
		assert.InDelta(t, tt.wantValue, value, 1e-9, "input %q", tt.input)
	}
}
