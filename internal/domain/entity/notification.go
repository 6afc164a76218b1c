package entity

import "time"

// Notification is a chat message with an optional structured card.
type Notification struct {
	Text string
	Card *Card
}

type Card struct {
	Title     string
	Color     string
	Fields    []CardField
	Footer    string
	Timestamp time.Time
}

type CardField struct {
	Name   string
	Value  string
	Inline bool
}
