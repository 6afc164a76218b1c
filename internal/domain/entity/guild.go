package entity

import "time"

// GuildConfig holds the per-workspace settings of the bot.
type GuildConfig struct {
	ID                    int64
	GuildID               string
	SpreadsheetID         string
	NotificationChannelID string
	HackathonRoleID       string
	ReminderDays          []int // nil means the process default applies
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Complete reports whether the guild can be polled.
func (g *GuildConfig) Complete() bool {
	return g.SpreadsheetID != "" && g.NotificationChannelID != "" && g.HackathonRoleID != ""
}

// Missing lists the names of the required fields that are not set.
func (g *GuildConfig) Missing() []string {
	var missing []string
	if g.SpreadsheetID == "" {
		missing = append(missing, "spreadsheet_id")
	}
	if g.NotificationChannelID == "" {
		missing = append(missing, "notification_channel_id")
	}
	if g.HackathonRoleID == "" {
		missing = append(missing, "hackathon_role_id")
	}
	return missing
}

// SetupInput carries the arguments of the setup command.
type SetupInput struct {
	SpreadsheetID         string
	NotificationChannelID string
	HackathonRoleID       string
	ReminderDays          string // comma separated, empty for the default list
}

// ForceCheckResult summarizes a forced poll cycle for one guild.
type ForceCheckResult struct {
	Before  int
	After   int
	Tracked []string
}

// TrackingReport is the debug view of the tracking state of one guild.
type TrackingReport struct {
	GuildID      string
	Tracked      []string
	SheetChecked bool
	Current      []string
	Untracked    []string
	FetchErr     error
}
