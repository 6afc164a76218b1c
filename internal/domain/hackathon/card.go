package hackathon

import (
	"time"

	"github.com/diegoclair/hackathon-bot/internal/domain"
	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
)

// Card builds the structured summary of a hackathon. Date columns are rendered
// in long form and empty cells as N/A.
func Card(h entity.Hackathon, title string, now time.Time) entity.Card {
	return entity.Card{
		Title: title,
		Color: domain.CardColor,
		Fields: []entity.CardField{
			{Name: "Name", Value: orNA(h.Name), Inline: true},
			{Name: "Website", Value: orNA(h.Website), Inline: true},
			{Name: "Start Date", Value: FormatDate(h.StartDate), Inline: true},
			{Name: "End Date", Value: FormatDate(h.EndDate), Inline: true},
			{Name: "Deadline", Value: FormatDate(h.Deadline), Inline: true},
			{Name: "Status", Value: orNA(h.Status), Inline: true},
			{Name: "Place", Value: orNA(h.Place), Inline: true},
			{Name: "Respond By", Value: FormatDate(h.RespondBy), Inline: true},
			{Name: "Notes", Value: orNA(h.Notes), Inline: false},
		},
		Timestamp: now,
	}
}

func orNA(value string) string {
	if value == "" {
		return domain.NotAvailable
	}
	return value
}
