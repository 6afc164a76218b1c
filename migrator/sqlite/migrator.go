package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// migrationsDir holds one numbered .sql file per schema version.
const migrationsDir = "sql"

//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate brings the guild configuration schema up to date.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(SqlFiles, migrationsDir); err != nil {
		return fmt.Errorf("failed to migrate guild config schema: %w", err)
	}
	return nil
}
