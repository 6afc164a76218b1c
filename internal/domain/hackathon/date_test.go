package hackathon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "Should parse single digit month and day",
			input:  "7/4/2025",
			want:   time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "Should parse zero padded values",
			input:  "07/04/2025",
			want:   time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "Should trim surrounding spaces",
			input:  "  12/25/2024 ",
			want:   time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{name: "Should reject empty input", input: ""},
		{name: "Should reject blank input", input: "   "},
		{name: "Should reject ISO format", input: "2025-07-04"},
		{name: "Should reject text", input: "TBD"},
		{name: "Should reject out of range day", input: "2/30/2025"},
		{name: "Should reject out of range month", input: "13/1/2025"},
		{name: "Should reject two digit year", input: "7/4/25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Should render long form", input: "7/4/2025", want: "July 04, 2025"},
		{name: "Should render december", input: "12/25/2024", want: "December 25, 2024"},
		{name: "Should keep malformed text unchanged", input: "Rolling", want: "Rolling"},
		{name: "Should keep ISO text unchanged", input: "2025-07-04", want: "2025-07-04"},
		{name: "Should show N/A for empty", input: "", want: "N/A"},
		{name: "Should show N/A for blank", input: "  ", want: "N/A"},
		{name: "Should render padded dates", input: " 7/4/2025  ", want: "July 04, 2025"},
		{name: "Should keep padded malformed text as written", input: " TBD ", want: " TBD "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.input))
		})
	}
}

func TestFormatDate_KeepsYear(t *testing.T) {
	for _, input := range []string{"1/1/1999", "2/29/2024", "11/30/2031"} {
		parsed, ok := ParseDate(input)
		assert.True(t, ok, input)
		assert.Contains(t, FormatDate(input), parsed.Format("2006"))
	}
}
