package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already ISO", input: "2024-01-15", want: "2024-01-15"},
		{name: "ISO with time suffix", input: "2024-01-15T08:30:00Z", want: "2024-01-15"},
		{name: "day first slashes", input: "15/01/2024", want: "2024-01-15"},
		{name: "day first dots", input: "15.01.2024", want: "2024-01-15"},
		{name: "day first dashes", input: "15-01-2024", want: "2024-01-15"},
		{name: "named month", input: "15-Jan-2024", want: "2024-01-15"},
		{name: "named month two digit year", input: "15-Jan-24", want: "2024-01-15"},
		{name: "named month full", input: "3/March/2024", want: "2024-03-03"},
		{name: "excel serial", input: "45306", want: "2024-01-15"},
		{name: "serial below range", input: "29999", want: ""},
		{name: "serial above range", input: "60000", want: ""},
		{name: "fallback layout", input: "Jan 15, 2024", want: "2024-01-15"},
		{name: "month thirteen rejected", input: "15/13/2024", want: ""},
		{name: "garbage", input: "not a date", want: ""},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.input))
		})
	}
}

func TestDateTwoDigitYearsAreCurrentCentury(t *testing.T) {
	assert.Equal(t, "2099-12-01", Date("1-Dec-99"))
	assert.Equal(t, "2001-06-09", Date("9/Jun/01"))
}
