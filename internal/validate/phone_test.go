package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "09171234567", DigitsOnly("0917-123-4567"))
	assert.Equal(t, "09171234567", DigitsOnly(" (0917) 123 4567 "))
	assert.Equal(t, "", DigitsOnly("abc-def"))
	assert.Equal(t, "", DigitsOnly(""))
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		digits string
		want   string
	}{
		{"", ""},
		{"09", "09"},
		{"0917", "0917"},
		{"09171", "0917-1"},
		{"0917123", "0917-123"},
		{"09171234", "0917-123-4"},
		{"09171234567", "0917-123-4567"},
		// truncated to 11 digits
		{"0917123456789", "0917-123-4567"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatPhone(c.digits), "digits %q", c.digits)
	}
}

func TestFormatPhoneIdempotent(t *testing.T) {
	for _, digits := range []string{"", "0", "0917", "09171", "0917123", "09171234", "09171234567"} {
		once := FormatPhone(digits)
		again := FormatPhone(DigitsOnly(once))
		assert.Equal(t, once, again, "digits %q", digits)
	}
}

func TestFormatPhoneSeparatorPositions(t *testing.T) {
	for n := 0; n <= 11; n++ {
		formatted := FormatPhone(strings.Repeat("9", n))
		dashes := strings.Count(formatted, "-")
		switch {
		case n <= 4:
			assert.Equal(t, 0, dashes, "%d digits", n)
		case n <= 7:
			assert.Equal(t, 1, dashes, "%d digits", n)
		default:
			assert.Equal(t, 2, dashes, "%d digits", n)
		}
	}
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("client@example.com"))
	assert.True(t, Email("a.b+c@spa.example.ph"))
	assert.False(t, Email("no-at-sign"))
	assert.False(t, Email("two@@example.com"))
	assert.False(t, Email("spaces in@example.com"))
	assert.False(t, Email("@example.com"))
	assert.False(t, Email("user@"))
	assert.False(t, Email("user@nodot"))
}
