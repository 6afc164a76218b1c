package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/hackathon-bot/internal/domain/contract"
	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
)

type guildRepo struct {
	db dbConn
}

func newGuildRepo(db dbConn) contract.GuildRepo {
	return &guildRepo{db: db}
}

const guildColumns = `id, guild_id, spreadsheet_id, notification_channel_id,
	hackathon_role_id, reminder_days, created_at, updated_at`

func (r *guildRepo) Create(guild *entity.GuildConfig) error {
	query := `
		INSERT INTO guild_configs (guild_id, spreadsheet_id, notification_channel_id,
			hackathon_role_id, reminder_days)
		VALUES (?, ?, ?, ?, ?)
	`

	reminderDays, err := encodeReminderDays(guild.ReminderDays)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(query,
		guild.GuildID,
		guild.SpreadsheetID,
		guild.NotificationChannelID,
		guild.HackathonRoleID,
		reminderDays,
	)
	if err != nil {
		return fmt.Errorf("failed to create guild config: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	guild.ID = id
	return nil
}

func (r *guildRepo) GetByGuildID(guildID string) (*entity.GuildConfig, error) {
	query := `SELECT ` + guildColumns + ` FROM guild_configs WHERE guild_id = ?`

	guild, err := scanGuild(r.db.QueryRow(query, guildID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}

	return guild, nil
}

func (r *guildRepo) Update(guild *entity.GuildConfig) error {
	query := `
		UPDATE guild_configs SET
			spreadsheet_id = ?,
			notification_channel_id = ?,
			hackathon_role_id = ?,
			reminder_days = ?,
			updated_at = ?
		WHERE guild_id = ?
	`

	reminderDays, err := encodeReminderDays(guild.ReminderDays)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(query,
		guild.SpreadsheetID,
		guild.NotificationChannelID,
		guild.HackathonRoleID,
		reminderDays,
		time.Now().UTC(),
		guild.GuildID,
	)
	if err != nil {
		return fmt.Errorf("failed to update guild config: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("guild config %s not found", guild.GuildID)
	}

	return nil
}

func (r *guildRepo) GetAll() ([]*entity.GuildConfig, error) {
	query := `SELECT ` + guildColumns + ` FROM guild_configs ORDER BY guild_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild configs: %w", err)
	}
	defer rows.Close()

	var guilds []*entity.GuildConfig
	for rows.Next() {
		guild, err := scanGuild(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guild config: %w", err)
		}
		guilds = append(guilds, guild)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guild configs: %w", err)
	}

	return guilds, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGuild(row rowScanner) (*entity.GuildConfig, error) {
	guild := &entity.GuildConfig{}
	var reminderDaysJSON sql.NullString

	err := row.Scan(
		&guild.ID,
		&guild.GuildID,
		&guild.SpreadsheetID,
		&guild.NotificationChannelID,
		&guild.HackathonRoleID,
		&reminderDaysJSON,
		&guild.CreatedAt,
		&guild.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// NULL keeps ReminderDays nil so the process default applies
	if reminderDaysJSON.Valid && reminderDaysJSON.String != "" {
		if err := json.Unmarshal([]byte(reminderDaysJSON.String), &guild.ReminderDays); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reminder days: %w", err)
		}
	}

	return guild, nil
}

func encodeReminderDays(days []int) (sql.NullString, error) {
	if days == nil {
		return sql.NullString{}, nil
	}

	b, err := json.Marshal(days)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to marshal reminder days: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}
