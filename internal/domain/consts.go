package domain

// Column positions of the hackathon sheet. The sheet has no header validation,
// rows are read positionally.
const (
	ColName = iota
	ColWebsite
	ColStartDate
	ColEndDate
	ColDeadline
	ColStatus
	ColPlace
	ColRespondBy
	ColNotes

	ColumnCount
)

// DefaultSheetRange skips the header row and covers the nine hackathon columns.
const DefaultSheetRange = "A2:I"

// DateLayout is the month/day/year format used in the sheet (ex: 7/4/2025).
const DateLayout = "1/2/2006"

// DisplayDateLayout renders dates as "July 04, 2025".
const DisplayDateLayout = "January 02, 2006"

// NotAvailable is shown for empty cells.
const NotAvailable = "N/A"

// MaxReminderDays is the maximum number of reminder offsets a guild can configure.
const MaxReminderDays = 5

// DefaultReminderDays is used when neither the guild nor the environment sets any.
var DefaultReminderDays = []int{7, 3, 1}

// CardColor is the accent colour of every hackathon card.
const CardColor = "#00ff00"

// Card titles and message texts
const (
	TitleNewHackathon  = "New Hackathon Alert! 🎉"
	TitleHackathonInfo = "Hackathon Information"
	TitleDeadlineFmt   = "⚠️ Deadline in %d days!"
	TextNewHackathon   = "A new hackathon has been added!"
	TextDeadline       = "Deadline reminder!"
)
