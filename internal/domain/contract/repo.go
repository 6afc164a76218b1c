package contract

//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../../../mocks/mock_repo.go -package=mocks

import (
	"context"

	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Guild() GuildRepo
}

// GuildRepo defines the contract for the per-guild configuration store
type GuildRepo interface {
	Create(guild *entity.GuildConfig) error
	GetByGuildID(guildID string) (*entity.GuildConfig, error)
	Update(guild *entity.GuildConfig) error
	GetAll() ([]*entity.GuildConfig, error)
}
