package hackathon

import (
	"strings"
	"time"

	"github.com/diegoclair/hackathon-bot/internal/domain"
)

// ParseDate reads a month/day/year cell. The second return value is false for
// empty or malformed input.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a date cell as "July 04, 2025". A value that can't be
// parsed is returned as it is.
func FormatDate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return domain.NotAvailable
	}

	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	return t.Format(domain.DisplayDateLayout)
}
