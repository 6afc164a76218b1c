package hackathon

import (
	"testing"

	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRow(t *testing.T) {
	tests := []struct {
		name   string
		row    []string
		want   entity.Hackathon
		wantOK bool
	}{
		{
			name: "Should map every column of a full row",
			row:  []string{"DevJam", "https://x", "1/1/2025", "1/3/2025", "12/25/2024", "open", "Remote", "12/20/2024", "n/a"},
			want: entity.Hackathon{
				Name:      "DevJam",
				Website:   "https://x",
				StartDate: "1/1/2025",
				EndDate:   "1/3/2025",
				Deadline:  "12/25/2024",
				Status:    "open",
				Place:     "Remote",
				RespondBy: "12/20/2024",
				Notes:     "n/a",
			},
			wantOK: true,
		},
		{
			name:   "Should leave trailing fields empty for short rows",
			row:    []string{"HackMIT", "hackmit.org", "9/14/2025"},
			want:   entity.Hackathon{Name: "HackMIT", Website: "hackmit.org", StartDate: "9/14/2025"},
			wantOK: true,
		},
		{
			name:   "Should accept a row with only a name",
			row:    []string{"Solo"},
			want:   entity.Hackathon{Name: "Solo"},
			wantOK: true,
		},
		{
			name:   "Should ignore extra columns",
			row:    []string{"A", "", "", "", "", "", "", "", "notes", "extra", "more"},
			want:   entity.Hackathon{Name: "A", Notes: "notes"},
			wantOK: true,
		},
		{
			name:   "Should accept a non url website as is",
			row:    []string{"A", "ask on discord"},
			want:   entity.Hackathon{Name: "A", Website: "ask on discord"},
			wantOK: true,
		},
		{name: "Should reject an empty row", row: []string{}},
		{name: "Should reject a nil row", row: nil},
		{name: "Should reject a row with an empty name", row: []string{"", "https://x"}},
		{name: "Should reject a row with a blank name", row: []string{"   ", "https://x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromRow(tt.row)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromRows(t *testing.T) {
	rows := [][]string{
		{"B", "b.dev"},
		{},
		{"", "orphan"},
		{"A"},
	}

	got := FromRows(rows)

	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, "A", got[1].Name)
}
