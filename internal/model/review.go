package model

import "time"

// Review is the post-meeting outcome record. At most one per meeting,
// immutable once created.
type Review struct {
	ID               int64
	MeetingID        int64
	Summary          string
	OutcomeRating    int // 1-5
	FollowupRequired bool
	CreatedAt        time.Time
}
