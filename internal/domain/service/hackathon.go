package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/diegoclair/hackathon-bot/internal/domain"
	"github.com/diegoclair/hackathon-bot/internal/domain/contract"
	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
	"github.com/diegoclair/hackathon-bot/internal/domain/hackathon"
)

type hackathonService struct {
	dm       contract.DataManager
	sheets   contract.SheetsClient
	notifier contract.Notifier
	tracking contract.TrackingStore
	poller   *poller
	settings Settings
}

var _ contract.HackathonService = (*hackathonService)(nil)

func newHackathonService(dm contract.DataManager, sheets contract.SheetsClient, notifier contract.Notifier,
	tracking contract.TrackingStore, poller *poller, settings Settings) *hackathonService {
	return &hackathonService{
		dm:       dm,
		sheets:   sheets,
		notifier: notifier,
		tracking: tracking,
		poller:   poller,
		settings: settings.withDefaults(),
	}
}

func (s *hackathonService) Setup(ctx context.Context, guildID string, input entity.SetupInput) (*entity.GuildConfig, error) {
	spreadsheetID := strings.TrimSpace(input.SpreadsheetID)
	if spreadsheetID == "" || input.NotificationChannelID == "" || input.HackathonRoleID == "" {
		return nil, domain.ErrMissingSetupArgs
	}

	reminderDays := append([]int(nil), s.settings.DefaultReminderDays...)
	if strings.TrimSpace(input.ReminderDays) != "" {
		days, err := hackathon.ParseReminderDays(input.ReminderDays)
		if err != nil {
			return nil, err
		}
		reminderDays = days
	}

	if err := s.checkSpreadsheet(ctx, spreadsheetID); err != nil {
		return nil, err
	}

	var saved *entity.GuildConfig
	err := s.upsert(ctx, guildID, func(guild *entity.GuildConfig) {
		guild.SpreadsheetID = spreadsheetID
		guild.NotificationChannelID = input.NotificationChannelID
		guild.HackathonRoleID = input.HackathonRoleID
		guild.ReminderDays = reminderDays
		saved = guild
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Guild %s configured: spreadsheet=%s channel=%s role=%s reminders=%v",
		guildID, spreadsheetID, input.NotificationChannelID, input.HackathonRoleID, reminderDays)
	return saved, nil
}

func (s *hackathonService) SetReminders(ctx context.Context, guildID, reminderDays string) ([]int, error) {
	days, err := hackathon.ParseReminderDays(reminderDays)
	if err != nil {
		return nil, err
	}

	err = s.upsert(ctx, guildID, func(guild *entity.GuildConfig) {
		guild.ReminderDays = days
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Guild %s reminder days set to %v", guildID, days)
	return days, nil
}

func (s *hackathonService) ChangeSpreadsheet(ctx context.Context, guildID, spreadsheetID string) error {
	spreadsheetID = strings.TrimSpace(spreadsheetID)
	if spreadsheetID == "" {
		return domain.ErrMissingSetupArgs
	}

	if err := s.checkSpreadsheet(ctx, spreadsheetID); err != nil {
		return err
	}

	err := s.upsert(ctx, guildID, func(guild *entity.GuildConfig) {
		guild.SpreadsheetID = spreadsheetID
	})
	if err != nil {
		return err
	}

	log.Printf("Guild %s spreadsheet changed to %s", guildID, spreadsheetID)
	return nil
}

func (s *hackathonService) GetConfig(ctx context.Context, guildID string) (*entity.GuildConfig, error) {
	stored, err := s.dm.Guild().GetByGuildID(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}
	if stored == nil {
		return nil, domain.ErrNotConfigured
	}
	return s.settings.resolve(stored), nil
}

// ShareHackathons posts every hackathon of the guild sheet into channelID.
// Posting continues after the caller goes away.
func (s *hackathonService) ShareHackathons(ctx context.Context, guildID, channelID string) (int, error) {
	cfg, err := s.readableConfig(guildID)
	if err != nil {
		return 0, err
	}

	ctx = context.WithoutCancel(ctx)

	records, err := s.poller.fetchHackathons(ctx, cfg.SpreadsheetID)
	if err != nil {
		return 0, err
	}

	now := s.poller.now()
	posted := 0
	for _, h := range records {
		card := hackathon.Card(h, domain.TitleHackathonInfo, now)
		if err := s.notifier.Send(ctx, channelID, entity.Notification{Card: &card}); err != nil {
			return posted, fmt.Errorf("failed to post %s: %w", h.Name, err)
		}
		posted++
	}
	return posted, nil
}

func (s *hackathonService) ForceCheck(ctx context.Context, guildID string) (*entity.ForceCheckResult, error) {
	before, _ := s.tracking.Get(guildID)

	// the cycle covers every guild and commits tracking, it must not stop
	// when the slash command request is dropped
	s.poller.RunCycle(context.WithoutCancel(ctx))

	after, _ := s.tracking.Get(guildID)
	return &entity.ForceCheckResult{
		Before:  before.Len(),
		After:   after.Len(),
		Tracked: after.Sorted(),
	}, nil
}

func (s *hackathonService) DebugTracking(ctx context.Context, guildID string) (*entity.TrackingReport, error) {
	tracked, _ := s.tracking.Get(guildID)
	report := &entity.TrackingReport{
		GuildID: guildID,
		Tracked: tracked.Sorted(),
	}

	cfg, err := s.readableConfig(guildID)
	if errors.Is(err, domain.ErrNotConfigured) {
		return report, nil
	}
	if err != nil {
		return nil, err
	}

	report.SheetChecked = true
	records, err := s.poller.fetchHackathons(ctx, cfg.SpreadsheetID)
	if err != nil {
		report.FetchErr = err
		return report, nil
	}

	current := hackathon.Names(records)
	report.Current = current.Sorted()
	report.Untracked = hackathon.NewNames(current, tracked)
	return report, nil
}

// readableConfig returns the resolved config of a guild that has a spreadsheet.
func (s *hackathonService) readableConfig(guildID string) (*entity.GuildConfig, error) {
	stored, err := s.dm.Guild().GetByGuildID(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}
	if stored == nil {
		stored = &entity.GuildConfig{GuildID: guildID}
	}

	cfg := s.settings.resolve(stored)
	if cfg.SpreadsheetID == "" {
		return nil, domain.ErrNotConfigured
	}
	return cfg, nil
}

// checkSpreadsheet performs a live read so broken IDs or missing permissions
// are reported before anything is saved.
func (s *hackathonService) checkSpreadsheet(ctx context.Context, spreadsheetID string) error {
	fetchCtx, cancel := context.WithTimeout(ctx, s.settings.FetchTimeout)
	defer cancel()

	if _, err := s.sheets.FetchRows(fetchCtx, spreadsheetID, s.settings.SheetRange); err != nil {
		log.Printf("Spreadsheet check failed for %s: %v", spreadsheetID, err)
		if s.settings.ServiceAccountEmail != "" {
			return fmt.Errorf("%w. Please check your spreadsheet ID (try adding %s as a viewer of the sheet): %v",
				domain.ErrSheetsUnavailable, s.settings.ServiceAccountEmail, err)
		}
		return fmt.Errorf("%w. Please check your credentials and spreadsheet ID: %v", domain.ErrSheetsUnavailable, err)
	}
	return nil
}

// upsert applies mutate to the stored config of the guild, creating it when
// missing, inside a transaction.
func (s *hackathonService) upsert(ctx context.Context, guildID string, mutate func(guild *entity.GuildConfig)) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		guild, err := tx.Guild().GetByGuildID(guildID)
		if err != nil {
			return fmt.Errorf("failed to get guild config: %w", err)
		}

		if guild == nil {
			guild = &entity.GuildConfig{GuildID: guildID}
			mutate(guild)
			if err := tx.Guild().Create(guild); err != nil {
				return fmt.Errorf("failed to create guild config: %w", err)
			}
			return nil
		}

		mutate(guild)
		if err := tx.Guild().Update(guild); err != nil {
			return fmt.Errorf("failed to update guild config: %w", err)
		}
		return nil
	})
}
