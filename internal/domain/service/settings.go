package service

import (
	"time"

	"github.com/diegoclair/hackathon-bot/internal/domain"
	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
)

// Settings are the process wide defaults and timings of the services.
type Settings struct {
	DefaultSpreadsheetID string
	DefaultReminderDays  []int
	SheetRange           string
	PollInterval         time.Duration
	FetchTimeout         time.Duration
	ServiceAccountEmail  string
}

func (s Settings) withDefaults() Settings {
	if len(s.DefaultReminderDays) == 0 {
		s.DefaultReminderDays = domain.DefaultReminderDays
	}
	if s.SheetRange == "" {
		s.SheetRange = domain.DefaultSheetRange
	}
	if s.PollInterval <= 0 {
		s.PollInterval = 30 * time.Minute
	}
	if s.FetchTimeout <= 0 {
		s.FetchTimeout = 30 * time.Second
	}
	return s
}

// resolve returns a copy of the stored config with the process defaults
// filled in for the optional fields.
func (s Settings) resolve(stored *entity.GuildConfig) *entity.GuildConfig {
	cfg := *stored
	if cfg.SpreadsheetID == "" {
		cfg.SpreadsheetID = s.DefaultSpreadsheetID
	}
	if cfg.ReminderDays == nil {
		cfg.ReminderDays = append([]int(nil), s.DefaultReminderDays...)
	}
	return &cfg
}
