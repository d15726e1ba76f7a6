package model

import "time"

// Meeting is the aggregate root. It owns its agenda items, action items and
// review, and is the unit of mutual exclusion for all mutations.
type Meeting struct {
	ID              int64
	Title           string
	ScheduledTime   time.Time
	DurationMinutes int
	Status          MeetingStatus
	ClosedAt        *time.Time
	CreatedAt       time.Time

	AgendaItems []AgendaItem
	ActionItems []ActionItem
	Review      *Review
}

// Start transitions Scheduled → InProgress.
func (m *Meeting) Start() error {
	if m.Status != MeetingScheduled {
		return &InvalidTransitionError{Current: m.Status, Attempted: "start meeting"}
	}
	m.Status = MeetingInProgress
	return nil
}

// Close transitions InProgress → Closed and stamps ClosedAt exactly once.
func (m *Meeting) Close(now time.Time) error {
	if m.Status != MeetingInProgress {
		return &InvalidTransitionError{Current: m.Status, Attempted: "close meeting"}
	}
	m.Status = MeetingClosed
	m.ClosedAt = &now
	return nil
}

// AttachReview transitions Closed → Reviewed. The review must already have
// been validated; duplicate reviews are rejected by the caller before this.
func (m *Meeting) AttachReview(review *Review) error {
	if m.Status != MeetingClosed {
		return &InvalidTransitionError{Current: m.Status, Attempted: "review meeting"}
	}
	m.Status = MeetingReviewed
	m.Review = review
	return nil
}

// CanEditAgenda reports whether agenda add/edit/delete is permitted.
func (m *Meeting) CanEditAgenda() bool {
	return m.Status == MeetingScheduled
}

// CanAddActions reports whether new action items may be created.
func (m *Meeting) CanAddActions() bool {
	return m.Status == MeetingScheduled || m.Status == MeetingInProgress
}

// CanCompleteActions reports whether action items may still be completed.
func (m *Meeting) CanCompleteActions() bool {
	return m.Status != MeetingReviewed
}

// RemainingMinutes is the meeting duration minus the summed agenda
// allocations. Negative when the agenda overruns the meeting; surfaced for
// display, never enforced.
func (m *Meeting) RemainingMinutes() int {
	total := 0
	for _, item := range m.AgendaItems {
		total += item.TimeAllocation
	}
	return m.DurationMinutes - total
}
