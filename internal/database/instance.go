package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/hackathon-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db        *DB
	guildRepo contract.GuildRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:        db,
		guildRepo: newGuildRepo(db.conn),
	}
}

// Guild returns the guild configuration repository
func (i *instance) Guild() contract.GuildRepo {
	return i.guildRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := &instance{db: i.db, guildRepo: newGuildRepo(tx)}
	if err := fn(txInstance); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
