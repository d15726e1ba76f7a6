package dto

import (
	"time"

	"claritymeet.app/api-server/internal/model"
)

type CreateMeetingRequest struct {
	ScheduledTime   time.Time `json:"scheduled_time" binding:"required"`
	Title           string    `json:"title" binding:"required,min=1,max=255"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=1"`
}

type MeetingResponse struct {
	CreatedAt        time.Time            `json:"created_at"`
	ScheduledTime    time.Time            `json:"scheduled_time"`
	ClosedAt         *time.Time           `json:"closed_at"`
	Review           *ReviewResponse      `json:"review"`
	Title            string               `json:"title"`
	Status           string               `json:"status"`
	AgendaItems      []AgendaItemResponse `json:"agenda_items"`
	ActionItems      []ActionItemResponse `json:"action_items"`
	ID               int64                `json:"id,string"`
	DurationMinutes  int                  `json:"duration_minutes"`
	RemainingMinutes int                  `json:"remaining_minutes"`
}

func ToMeetingResponse(meeting *model.Meeting, now time.Time) *MeetingResponse {
	resp := &MeetingResponse{
		ID:               meeting.ID,
		Title:            meeting.Title,
		ScheduledTime:    meeting.ScheduledTime,
		DurationMinutes:  meeting.DurationMinutes,
		Status:           string(meeting.Status),
		ClosedAt:         meeting.ClosedAt,
		CreatedAt:        meeting.CreatedAt,
		RemainingMinutes: meeting.RemainingMinutes(),
		AgendaItems:      make([]AgendaItemResponse, 0, len(meeting.AgendaItems)),
		ActionItems:      make([]ActionItemResponse, 0, len(meeting.ActionItems)),
	}
	for i := range meeting.AgendaItems {
		resp.AgendaItems = append(resp.AgendaItems, *ToAgendaItemResponse(&meeting.AgendaItems[i]))
	}
	for i := range meeting.ActionItems {
		resp.ActionItems = append(resp.ActionItems, *ToActionItemResponse(&meeting.ActionItems[i], now))
	}
	if meeting.Review != nil {
		resp.Review = ToReviewResponse(meeting.Review)
	}
	return resp
}

func ToMeetingResponses(meetings []model.Meeting, now time.Time) []MeetingResponse {
	result := make([]MeetingResponse, len(meetings))
	for i := range meetings {
		result[i] = *ToMeetingResponse(&meetings[i], now)
	}
	return result
}
