package contract

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../../mocks/mock_service.go -package=mocks

import (
	"context"

	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
)

type HackathonService interface {
	Setup(ctx context.Context, guildID string, input entity.SetupInput) (*entity.GuildConfig, error)
	SetReminders(ctx context.Context, guildID, reminderDays string) ([]int, error)
	ChangeSpreadsheet(ctx context.Context, guildID, spreadsheetID string) error
	GetConfig(ctx context.Context, guildID string) (*entity.GuildConfig, error)
	ShareHackathons(ctx context.Context, guildID, channelID string) (int, error)
	ForceCheck(ctx context.Context, guildID string) (*entity.ForceCheckResult, error)
	DebugTracking(ctx context.Context, guildID string) (*entity.TrackingReport, error)
}
