package dto

import (
	"time"

	"claritymeet.app/api-server/internal/service"
)

type DashboardResponse struct {
	Counts             DashboardCounts      `json:"counts"`
	UpcomingMeetings   []MeetingResponse    `json:"upcoming_meetings"`
	PendingReview      []MeetingResponse    `json:"pending_review"`
	OpenActionItems    []ActionItemResponse `json:"open_action_items"`
	OverdueActionItems []ActionItemResponse `json:"overdue_action_items"`
}

type DashboardCounts struct {
	Upcoming       int `json:"upcoming"`
	PendingReview  int `json:"pending_review"`
	OpenActions    int `json:"open_actions"`
	OverdueActions int `json:"overdue_actions"`
}

func ToDashboardResponse(dashboard *service.Dashboard, now time.Time) *DashboardResponse {
	return &DashboardResponse{
		Counts: DashboardCounts{
			Upcoming:       dashboard.Counts.Upcoming,
			PendingReview:  dashboard.Counts.PendingReview,
			OpenActions:    dashboard.Counts.OpenActions,
			OverdueActions: dashboard.Counts.OverdueActions,
		},
		UpcomingMeetings:   ToMeetingResponses(dashboard.UpcomingMeetings, now),
		PendingReview:      ToMeetingResponses(dashboard.PendingReview, now),
		OpenActionItems:    ToActionItemResponses(dashboard.OpenActionItems, now),
		OverdueActionItems: ToActionItemResponses(dashboard.OverdueActionItems, now),
	}
}
