package model

import "time"

// AgendaItem is a planned topic with a time budget, owned by one meeting.
type AgendaItem struct {
	ID             int64
	MeetingID      int64
	Topic          string
	TimeAllocation int // minutes
	CreatedAt      time.Time
}
