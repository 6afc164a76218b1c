package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
	"github.com/diegoclair/hackathon-bot/internal/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func completeGuild(guildID string) *entity.GuildConfig {
	return &entity.GuildConfig{
		GuildID:               guildID,
		SpreadsheetID:         "S-" + guildID,
		NotificationChannelID: "C-" + guildID,
		HackathonRoleID:       "R-" + guildID,
	}
}

func trackedNames(t *testing.T, m allMocks, guildID string) []string {
	t.Helper()
	names, ok := m.tracking.Get(guildID)
	require.True(t, ok, "guild %s should be tracked", guildID)
	return names.Sorted()
}

func Test_poller_RunCycle_announcesOnlyNewNames(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, Settings{})
	ctx := context.Background()

	rows := [][]string{{"DevJam", "https://x", "1/1/2025"}}
	m.mockGuildRepo.EXPECT().GetAll().Return([]*entity.GuildConfig{completeGuild("G1")}, nil).Times(2)
	m.mockSheets.EXPECT().FetchRows(gomock.Any(), "S-G1", "A2:I").Return(rows, nil).Times(2)

	var sent []entity.Notification
	m.mockNotifier.EXPECT().Send(gomock.Any(), "C-G1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, n entity.Notification) error {
			sent = append(sent, n)
			return nil
		}).Times(1)

	report := instance.Poller.RunCycle(ctx)
	assert.Equal(t, CycleReport{Guilds: 1, Processed: 1}, report)
	assert.Equal(t, []string{"DevJam"}, trackedNames(t, m, "G1"))

	require.Len(t, sent, 1)
	assert.Equal(t, "<!subteam^R-G1> A new hackathon has been added!", sent[0].Text)
	require.NotNil(t, sent[0].Card)
	assert.Equal(t, "New Hackathon Alert! 🎉", sent[0].Card.Title)
	assert.Equal(t, "DevJam", sent[0].Card.Fields[0].Value)

	// identical sheet on the next cycle
	instance.Poller.RunCycle(ctx)
	assert.Len(t, sent, 1)
	assert.Equal(t, []string{"DevJam"}, trackedNames(t, m, "G1"))
}

func Test_poller_RunCycle_replacesTrackedSet(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, Settings{})
	ctx := context.Background()
	m.tracking.Replace("G1", entity.NewNameSet("Alpha", "Beta"))

	m.mockGuildRepo.EXPECT().GetAll().Return([]*entity.GuildConfig{completeGuild("G1")}, nil).Times(2)
	gomock.InOrder(
		m.mockSheets.EXPECT().FetchRows(gomock.Any(), "S-G1", "A2:I").Return([][]string{{"Alpha"}}, nil),
		m.mockSheets.EXPECT().FetchRows(gomock.Any(), "S-G1", "A2:I").Return([][]string{{"Alpha"}, {"Beta"}}, nil),
	)
	m.mockNotifier.EXPECT().Send(gomock.Any(), "C-G1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, n entity.Notification) error {
			assert.Equal(t, "Beta", n.Card.Fields[0].Value)
			return nil
		}).Times(1)

	instance.Poller.RunCycle(ctx)
	assert.Equal(t, []string{"Alpha"}, trackedNames(t, m, "G1"), "removed names are forgotten")

	instance.Poller.RunCycle(ctx)
	assert.Equal(t, []string{"Alpha", "Beta"}, trackedNames(t, m, "G1"), "re-added names are announced again")
}

func Test_poller_RunCycle_fetchFailureKeepsTracking(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, Settings{})
	m.tracking.Replace("G1", entity.NewNameSet("Alpha"))

	m.mockGuildRepo.EXPECT().GetAll().Return([]*entity.GuildConfig{completeGuild("G1")}, nil)
	m.mockSheets.EXPECT().FetchRows(gomock.Any(), "S-G1", "A2:I").Return(nil, errors.New("403 forbidden"))

	report := instance.Poller.RunCycle(context.Background())

	assert.Equal(t, CycleReport{Guilds: 1, Failed: 1}, report)
	assert.Equal(t, []string{"Alpha"}, trackedNames(t, m, "G1"))
}

func Test_poller_RunCycle_skipsIncompleteGuilds(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, Settings{})

	incomplete := completeGuild("G2")
	incomplete.NotificationChannelID = ""

	m.mockGuildRepo.EXPECT().GetAll().Return([]*entity.GuildConfig{completeGuild("G1"), incomplete}, nil)
	m.mockSheets.EXPECT().FetchRows(gomock.Any(), "S-G1", "A2:I").Return([][]string{{"DevJam"}}, nil)
	m.mockNotifier.EXPECT().Send(gomock.Any(), "C-G1", gomock.Any()).Return(nil)

	report := instance.Poller.RunCycle(context.Background())

	assert.Equal(t, CycleReport{Guilds: 2, Processed: 1, Skipped: 1}, report)
	_, tracked := m.tracking.Get("G2")
	assert.False(t, tracked)
}

func Test_poller_RunCycle_usesDefaultSpreadsheet(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, Settings{DefaultSpreadsheetID: "DEFAULT"})

	guild := completeGuild("G1")
	guild.SpreadsheetID = ""

	m.mockGuildRepo.EXPECT().GetAll().Return([]*entity.GuildConfig{guild}, nil)
	m.mockSheets.EXPECT().FetchRows(gomock.Any(), "DEFAULT", "A2:I").Return(nil, nil)

	report := instance.Poller.RunCycle(context.Background())
	assert.Equal(t, 1, report.Processed)
}

func Test_poller_RunCycle_deadlineReminders(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, Settings{})

	guild := completeGuild("G1")
	guild.ReminderDays = []int{3}
	m.tracking.Replace("G1", entity.NewNameSet("Soon", "Later", "Unknown"))

	rows := [][]string{
		{"Soon", "", "", "", "1/4/2025"},
		{"Later", "", "", "", "1/8/2025"},
		{"Unknown", "", "", "", "TBD"},
	}
	m.mockGuildRepo.EXPECT().GetAll().Return([]*entity.GuildConfig{guild}, nil)
	m.mockSheets.EXPECT().FetchRows(gomock.Any(), "S-G1", "A2:I").Return(rows, nil)
	m.mockNotifier.EXPECT().Send(gomock.Any(), "C-G1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, n entity.Notification) error {
			assert.Equal(t, "<!subteam^R-G1> Deadline reminder!", n.Text)
			assert.Equal(t, "⚠️ Deadline in 3 days!", n.Card.Title)
			assert.Equal(t, "Soon", n.Card.Fields[0].Value)
			return nil
		}).Times(1)

	report := instance.Poller.RunCycle(context.Background())
	assert.Equal(t, 1, report.Processed)
}

func Test_poller_RunCycle_newHackathonNearDeadlineGetsBoth(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, Settings{})

	m.mockGuildRepo.EXPECT().GetAll().Return([]*entity.GuildConfig{completeGuild("G1")}, nil)
	m.mockSheets.EXPECT().FetchRows(gomock.Any(), "S-G1", "A2:I").Return([][]string{{"Hot", "", "", "", "1/2/2025"}}, nil)

	var titles []string
	m.mockNotifier.EXPECT().Send(gomock.Any(), "C-G1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, n entity.Notification) error {
			titles = append(titles, n.Card.Title)
			return nil
		}).Times(2)

	instance.Poller.RunCycle(context.Background())
	assert.Equal(t, []string{"New Hackathon Alert! 🎉", "⚠️ Deadline in 1 days!"}, titles)
}

func Test_poller_RunCycle_deliveryErrorsStillCommit(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, Settings{})

	m.mockGuildRepo.EXPECT().GetAll().Return([]*entity.GuildConfig{completeGuild("G1")}, nil)
	m.mockSheets.EXPECT().FetchRows(gomock.Any(), "S-G1", "A2:I").Return([][]string{{"DevJam"}, {"HackNight"}}, nil)
	m.mockNotifier.EXPECT().Send(gomock.Any(), "C-G1", gomock.Any()).Return(errors.New("channel_not_found")).Times(2)

	report := instance.Poller.RunCycle(context.Background())

	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, []string{"DevJam", "HackNight"}, trackedNames(t, m, "G1"))
}

func Test_poller_RunCycle_recoversFromPanics(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, Settings{})

	m.mockGuildRepo.EXPECT().GetAll().Return([]*entity.GuildConfig{completeGuild("G1"), completeGuild("G2")}, nil)
	m.mockSheets.EXPECT().FetchRows(gomock.Any(), "S-G1", "A2:I").DoAndReturn(
		func(context.Context, string, string) ([][]string, error) {
			panic("boom")
		})
	m.mockSheets.EXPECT().FetchRows(gomock.Any(), "S-G2", "A2:I").Return([][]string{{"DevJam"}}, nil)
	m.mockNotifier.EXPECT().Send(gomock.Any(), "C-G2", gomock.Any()).Return(nil)

	var report CycleReport
	require.NotPanics(t, func() {
		report = instance.Poller.RunCycle(context.Background())
	})

	assert.Equal(t, CycleReport{Guilds: 2, Processed: 1, Failed: 1}, report)
	assert.Equal(t, []string{"DevJam"}, trackedNames(t, m, "G2"))
}

func Test_poller_RunCycle_restartAnnouncesEverything(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	rows := [][]string{{"DevJam"}, {"HackNight"}}
	m.mockGuildRepo.EXPECT().GetAll().Return([]*entity.GuildConfig{completeGuild("G1")}, nil).Times(2)
	m.mockSheets.EXPECT().FetchRows(gomock.Any(), "S-G1", "A2:I").Return(rows, nil).Times(2)
	m.mockNotifier.EXPECT().Send(gomock.Any(), "C-G1", gomock.Any()).Return(nil).Times(4)

	first := newTestInstance(t, m, Settings{})
	first.Poller.RunCycle(context.Background())

	// a fresh process starts with empty memory
	m.tracking = tracking.NewMemoryStore()
	second := newTestInstance(t, m, Settings{})
	second.Poller.RunCycle(context.Background())

	assert.Equal(t, []string{"DevJam", "HackNight"}, trackedNames(t, m, "G1"))
}

func Test_poller_RunCycle_repositoryError(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, Settings{})
	m.mockGuildRepo.EXPECT().GetAll().Return(nil, errors.New("database is locked"))

	assert.Equal(t, CycleReport{}, instance.Poller.RunCycle(context.Background()))
}

func Test_poller_tick_skipsWhileCycleRuns(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, Settings{})

	// no repository expectations: a skipped tick must not touch anything
	instance.Poller.cycleMu.Lock()
	instance.Poller.tick(context.Background())
	instance.Poller.cycleMu.Unlock()
}

func Test_poller_StartStop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, Settings{PollInterval: time.Hour})

	ran := make(chan struct{})
	var once sync.Once
	m.mockGuildRepo.EXPECT().GetAll().DoAndReturn(func() ([]*entity.GuildConfig, error) {
		once.Do(func() { close(ran) })
		return nil, nil
	}).MinTimes(1)

	instance.Poller.Start()
	instance.Poller.Start()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("first cycle should run right after start")
	}

	instance.Poller.Stop()
	instance.Poller.Stop()
	assert.False(t, instance.Poller.running)
}
