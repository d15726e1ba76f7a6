package model

import "fmt"

// MeetingStatus is the meeting lifecycle state. Transitions are strictly
// linear: Scheduled → InProgress → Closed → Reviewed.
type MeetingStatus string

const (
	MeetingScheduled  MeetingStatus = "Scheduled"
	MeetingInProgress MeetingStatus = "InProgress"
	MeetingClosed     MeetingStatus = "Closed"
	MeetingReviewed   MeetingStatus = "Reviewed"
)

var meetingStatuses = map[MeetingStatus]bool{
	MeetingScheduled:  true,
	MeetingInProgress: true,
	MeetingClosed:     true,
	MeetingReviewed:   true,
}

// ParseMeetingStatus converts a wire string into a MeetingStatus.
func ParseMeetingStatus(s string) (MeetingStatus, error) {
	status := MeetingStatus(s)
	if !meetingStatuses[status] {
		return "", fmt.Errorf("unknown meeting status %q", s)
	}
	return status, nil
}

// nextStatus is the only state reachable from each state. Reviewed is terminal.
var nextStatus = map[MeetingStatus]MeetingStatus{
	MeetingScheduled:  MeetingInProgress,
	MeetingInProgress: MeetingClosed,
	MeetingClosed:     MeetingReviewed,
}

// InvalidTransitionError reports an operation not permitted in the meeting's
// current lifecycle state. The aggregate is left unchanged.
type InvalidTransitionError struct {
	Current   MeetingStatus
	Attempted string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s while meeting is %s", e.Attempted, e.Current)
}

// ValidateTransition rejects any target other than the single state that
// follows current.
func ValidateTransition(current, target MeetingStatus) error {
	if nextStatus[current] != target {
		return &InvalidTransitionError{Current: current, Attempted: "transition to " + string(target)}
	}
	return nil
}
