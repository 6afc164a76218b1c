package contract

//go:generate go run go.uber.org/mock/mockgen -source=sheets.go -destination=../../../mocks/mock_sheets.go -package=mocks

import (
	"context"

	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
)

// SheetsClient reads rows of text cells from a spreadsheet
type SheetsClient interface {
	FetchRows(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

// TrackingStore keeps the names already announced for each guild
type TrackingStore interface {
	// Get returns a copy of the tracked set and whether the guild was seen before
	Get(guildID string) (entity.NameSet, bool)

	// Replace swaps the tracked set of the guild for names
	Replace(guildID string, names entity.NameSet)
}
