package hackathon

import (
	"strings"

	"github.com/diegoclair/hackathon-bot/internal/domain"
	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
)

// FromRow maps a sheet row onto a Hackathon using the fixed column layout
// declared in the domain package. Short rows leave the trailing fields empty.
// Rows without a name are rejected.
func FromRow(row []string) (entity.Hackathon, bool) {
	name := cell(row, domain.ColName)
	if strings.TrimSpace(name) == "" {
		return entity.Hackathon{}, false
	}

	return entity.Hackathon{
		Name:      name,
		Website:   cell(row, domain.ColWebsite),
		StartDate: cell(row, domain.ColStartDate),
		EndDate:   cell(row, domain.ColEndDate),
		Deadline:  cell(row, domain.ColDeadline),
		Status:    cell(row, domain.ColStatus),
		Place:     cell(row, domain.ColPlace),
		RespondBy: cell(row, domain.ColRespondBy),
		Notes:     cell(row, domain.ColNotes),
	}, true
}

// FromRows converts every valid row, keeping sheet order.
func FromRows(rows [][]string) []entity.Hackathon {
	hackathons := make([]entity.Hackathon, 0, len(rows))
	for _, row := range rows {
		h, ok := FromRow(row)
		if !ok {
			continue
		}
		hackathons = append(hackathons, h)
	}
	return hackathons
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
