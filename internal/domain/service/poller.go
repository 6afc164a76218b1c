package service

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"sync"
	"time"

	"github.com/diegoclair/hackathon-bot/internal/domain"
	"github.com/diegoclair/hackathon-bot/internal/domain/contract"
	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
	"github.com/diegoclair/hackathon-bot/internal/domain/hackathon"
	slackcmd "github.com/diegoclair/hackathon-bot/internal/domain/slack"
)

// CycleReport summarizes one poll cycle across all guilds.
type CycleReport struct {
	Guilds    int
	Processed int
	Skipped   int
	Failed    int
}

type guildResult struct {
	NewHackathons  int
	Reminders      int
	DeliveryErrors int
}

type poller struct {
	dm       contract.DataManager
	sheets   contract.SheetsClient
	notifier contract.Notifier
	tracking contract.TrackingStore
	settings Settings
	now      func() time.Time

	// cycleMu allows a single cycle at a time
	cycleMu sync.Mutex

	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
	loopDone chan struct{}
}

func newPoller(dm contract.DataManager, sheets contract.SheetsClient, notifier contract.Notifier,
	tracking contract.TrackingStore, settings Settings) *poller {
	return &poller{
		dm:       dm,
		sheets:   sheets,
		notifier: notifier,
		tracking: tracking,
		settings: settings.withDefaults(),
		now:      time.Now,
	}
}

func (p *poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.loopDone = make(chan struct{})
	p.running = true

	log.Printf("Poller starting, checking hackathons every %s", p.settings.PollInterval)
	go p.mainLoop(ctx, p.loopDone)
}

func (p *poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel, done := p.cancel, p.loopDone
	p.mu.Unlock()

	log.Println("Poller stopping...")
	cancel()
	<-done
}

func (p *poller) mainLoop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.settings.PollInterval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ticker.C:
			p.tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// tick runs a cycle unless one is already in progress.
func (p *poller) tick(ctx context.Context) {
	if !p.cycleMu.TryLock() {
		log.Println("Previous hackathon check still running, skipping this tick")
		return
	}
	defer p.cycleMu.Unlock()

	p.runCycle(ctx)
}

// RunCycle waits for any running cycle to finish and then runs a new one.
func (p *poller) RunCycle(ctx context.Context) CycleReport {
	p.cycleMu.Lock()
	defer p.cycleMu.Unlock()

	return p.runCycle(ctx)
}

func (p *poller) runCycle(ctx context.Context) CycleReport {
	log.Println("Running hackathon check...")

	var report CycleReport

	guilds, err := p.dm.Guild().GetAll()
	if err != nil {
		log.Printf("Error getting guild configs: %v", err)
		return report
	}
	report.Guilds = len(guilds)

	for _, stored := range guilds {
		if ctx.Err() != nil {
			log.Printf("Hackathon check interrupted: %v", ctx.Err())
			break
		}

		cfg := p.settings.resolve(stored)
		if !cfg.Complete() {
			log.Printf("Guild %s missing required configuration: %v", cfg.GuildID, cfg.Missing())
			report.Skipped++
			continue
		}

		result, err := p.processGuild(ctx, cfg)
		if err != nil {
			log.Printf("Error processing guild %s: %v", cfg.GuildID, err)
			report.Failed++
			continue
		}

		log.Printf("Guild %s checked: %d new, %d reminders, %d delivery errors",
			cfg.GuildID, result.NewHackathons, result.Reminders, result.DeliveryErrors)
		report.Processed++
	}

	log.Printf("Hackathon check finished: %d guilds, %d processed, %d skipped, %d failed",
		report.Guilds, report.Processed, report.Skipped, report.Failed)
	return report
}

// processGuild contains any failure of a single guild, panics included.
func (p *poller) processGuild(ctx context.Context, cfg *entity.GuildConfig) (result guildResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	return p.checkGuild(ctx, cfg)
}

func (p *poller) checkGuild(ctx context.Context, cfg *entity.GuildConfig) (guildResult, error) {
	var result guildResult

	tracked, seen := p.tracking.Get(cfg.GuildID)
	if !seen {
		p.tracking.Replace(cfg.GuildID, entity.NameSet{})
		log.Printf("Initialized tracking for guild %s", cfg.GuildID)
	}

	records, err := p.fetchHackathons(ctx, cfg.SpreadsheetID)
	if err != nil {
		return result, err
	}
	log.Printf("Found %d hackathons for guild %s", len(records), cfg.GuildID)

	now := p.now()
	current := hackathon.Names(records)
	byName := hackathon.ByName(records)
	mention := slackcmd.MentionGroup(cfg.HackathonRoleID)

	for _, name := range hackathon.NewNames(current, tracked) {
		log.Printf("New hackathon found in guild %s: %s", cfg.GuildID, name)

		card := hackathon.Card(byName[name], domain.TitleNewHackathon, now)
		n := entity.Notification{Text: mention + " " + domain.TextNewHackathon, Card: &card}
		if err := p.notifier.Send(ctx, cfg.NotificationChannelID, n); err != nil {
			log.Printf("Failed to announce %s in guild %s: %v", name, cfg.GuildID, err)
			result.DeliveryErrors++
			continue
		}
		result.NewHackathons++
	}

	for _, h := range records {
		deadline, ok := hackathon.ParseDate(h.Deadline)
		days, match := hackathon.MatchReminder(deadline, ok, now, cfg.ReminderDays)
		if !match {
			continue
		}

		log.Printf("Sending deadline reminder for %s in guild %s (%d days)", h.Name, cfg.GuildID, days)

		card := hackathon.Card(h, fmt.Sprintf(domain.TitleDeadlineFmt, days), now)
		n := entity.Notification{Text: mention + " " + domain.TextDeadline, Card: &card}
		if err := p.notifier.Send(ctx, cfg.NotificationChannelID, n); err != nil {
			log.Printf("Failed to send deadline reminder for %s in guild %s: %v", h.Name, cfg.GuildID, err)
			result.DeliveryErrors++
			continue
		}
		result.Reminders++
	}

	log.Printf("Updating tracking for guild %s. Previous: %d, Current: %d", cfg.GuildID, tracked.Len(), current.Len())
	p.tracking.Replace(cfg.GuildID, current)

	return result, nil
}

// fetchHackathons reads and normalizes the sheet within the fetch timeout.
func (p *poller) fetchHackathons(ctx context.Context, spreadsheetID string) ([]entity.Hackathon, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, p.settings.FetchTimeout)
	defer cancel()

	rows, err := p.sheets.FetchRows(fetchCtx, spreadsheetID, p.settings.SheetRange)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hackathons: %w", err)
	}
	return hackathon.FromRows(rows), nil
}
