package hackathon

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/hackathon-bot/internal/domain"
)

var (
	ErrInvalidReminderFormat = errors.New("invalid reminder days format! Use comma-separated numbers (e.g., '7,3,1')")
	ErrNonPositiveReminder   = errors.New("all reminder days must be positive numbers")
	ErrTooManyReminders      = errors.New("you can only set up to 5 reminder days")
)

// DaysUntil counts calendar days from now to deadline, ignoring the time of day.
func DaysUntil(deadline, now time.Time) int {
	d := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(n).Hours() / 24)
}

// MatchReminder reports the offset matching the number of days left before
// deadline. ok must be false when the deadline is unknown.
func MatchReminder(deadline time.Time, ok bool, now time.Time, offsets []int) (int, bool) {
	if !ok {
		return 0, false
	}

	days := DaysUntil(deadline, now)
	for _, offset := range offsets {
		if offset == days {
			return offset, true
		}
	}
	return 0, false
}

// ParseReminderDays parses a comma separated list like "7,3,1". The result is
// sorted in descending order, duplicates are kept.
func ParseReminderDays(input string) ([]int, error) {
	parts := strings.Split(input, ",")
	days := make([]int, 0, len(parts))

	for _, part := range parts {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, ErrInvalidReminderFormat
		}
		days = append(days, day)
	}

	for _, day := range days {
		if day <= 0 {
			return nil, ErrNonPositiveReminder
		}
	}

	if len(days) > domain.MaxReminderDays {
		return nil, ErrTooManyReminders
	}

	sort.Sort(sort.Reverse(sort.IntSlice(days)))
	return days, nil
}

// JoinDays renders offsets as "7, 3, 1".
func JoinDays(days []int) string {
	parts := make([]string, len(days))
	for i, day := range days {
		parts[i] = strconv.Itoa(day)
	}
	return strings.Join(parts, ", ")
}
