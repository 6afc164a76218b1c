package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/diegoclair/hackathon-bot/internal/domain/contract"
	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
	"github.com/diegoclair/hackathon-bot/internal/domain/hackathon"
)

// legacyGuildConfig is one entry of the flat guild_config.json file, keyed by guild ID.
type legacyGuildConfig struct {
	SpreadsheetID         string `json:"spreadsheet_id"`
	NotificationChannelID string `json:"notification_channel_id"`
	HackathonRoleID       string `json:"hackathon_role_id"`
	ReminderDays          []int  `json:"reminder_days,omitempty"`
}

// ImportLegacyConfig copies guilds from a flat JSON config file into the store.
// Guilds that are already stored are left untouched. A missing file imports nothing.
func ImportLegacyConfig(path string, repo contract.GuildRepo) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Legacy config %s not found, skipping import", path)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read legacy config: %w", err)
	}

	var legacy map[string]legacyGuildConfig
	if err := json.Unmarshal(data, &legacy); err != nil {
		return 0, fmt.Errorf("failed to parse legacy config: %w", err)
	}

	guildIDs := make([]string, 0, len(legacy))
	for guildID := range legacy {
		guildIDs = append(guildIDs, guildID)
	}
	sort.Strings(guildIDs)

	imported := 0
	for _, guildID := range guildIDs {
		existing, err := repo.GetByGuildID(guildID)
		if err != nil {
			return imported, err
		}
		if existing != nil {
			continue
		}

		cfg := legacy[guildID]
		guild := &entity.GuildConfig{
			GuildID:               guildID,
			SpreadsheetID:         cfg.SpreadsheetID,
			NotificationChannelID: cfg.NotificationChannelID,
			HackathonRoleID:       cfg.HackathonRoleID,
			ReminderDays:          legacyReminderDays(guildID, cfg.ReminderDays),
		}
		if err := repo.Create(guild); err != nil {
			return imported, fmt.Errorf("failed to import guild %s: %w", guildID, err)
		}
		imported++
	}

	return imported, nil
}

// legacyReminderDays applies the same rules as the reminders command. An
// invalid list is dropped so the guild falls back to the default offsets.
func legacyReminderDays(guildID string, days []int) []int {
	if len(days) == 0 {
		return nil
	}

	valid, err := hackathon.ParseReminderDays(hackathon.JoinDays(days))
	if err != nil {
		log.Printf("Ignoring legacy reminder days %v for guild %s: %v", days, guildID, err)
		return nil
	}
	return valid
}
