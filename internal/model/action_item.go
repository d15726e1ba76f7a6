package model

import "time"

// ActionItemStatus is the action item state. Completion is one-way.
type ActionItemStatus string

const (
	ActionOpen      ActionItemStatus = "Open"
	ActionCompleted ActionItemStatus = "Completed"
)

// ActionItem is a follow-up task produced by a meeting.
type ActionItem struct {
	ID          int64
	MeetingID   int64
	Description string
	Owner       string
	Deadline    time.Time // date precision
	Status      ActionItemStatus
	CreatedAt   time.Time
}

// IsOverdue reports whether the item is open with a deadline strictly before
// the current date. Computed on every read, never stored.
func (a *ActionItem) IsOverdue(now time.Time) bool {
	if a.Status != ActionOpen {
		return false
	}
	deadline := dateOf(a.Deadline)
	return deadline.Before(dateOf(now))
}

// Complete marks the item Completed. Completing an already-completed item is
// a no-op rather than an error.
func (a *ActionItem) Complete() {
	a.Status = ActionCompleted
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
