package config

import (
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/hackathon-bot/internal/domain"
)

type Config struct {
	SlackBotToken         string
	SlackSigningSecret    string
	GoogleCredentialsFile string
	DefaultSpreadsheetID  string
	DeadlineReminderDays  []int
	SheetRange            string
	PollInterval          time.Duration
	FetchTimeout          time.Duration
	DatabasePath          string
	LegacyConfigPath      string
	Port                  string
}

func Load() *Config {
	return &Config{
		SlackBotToken:         getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret:    getEnv("SLACK_SIGNING_SECRET", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		DefaultSpreadsheetID:  getEnv("DEFAULT_SPREADSHEET_ID", ""),
		DeadlineReminderDays:  parseReminderDays(getEnv("DEADLINE_REMINDER_DAYS", "")),
		SheetRange:            getEnv("SHEET_RANGE", domain.DefaultSheetRange),
		PollInterval:          getDuration("POLL_INTERVAL", 30*time.Minute),
		FetchTimeout:          getDuration("FETCH_TIMEOUT", 30*time.Second),
		DatabasePath:          getEnv("DATABASE_PATH", "./hackathons.db"),
		LegacyConfigPath:      getEnv("LEGACY_CONFIG_PATH", ""),
		Port:                  getEnv("PORT", "3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s %q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

// parseReminderDays skips entries that are not positive integers and falls
// back to 7,3,1 when nothing usable is left.
func parseReminderDays(raw string) []int {
	var days []int
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil || v <= 0 {
			continue
		}
		days = append(days, v)
	}
	if len(days) == 0 {
		return append([]int(nil), domain.DefaultReminderDays...)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(days)))
	return days
}
