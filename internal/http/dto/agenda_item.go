package dto

import (
	"time"

	"claritymeet.app/api-server/internal/model"
)

type AddAgendaItemRequest struct {
	Topic          string `json:"topic" binding:"required,min=1"`
	TimeAllocation int    `json:"time_allocation" binding:"required,min=1"`
}

type UpdateAgendaItemRequest struct {
	TimeAllocation int `json:"time_allocation" binding:"required,min=1"`
}

type AgendaItemResponse struct {
	CreatedAt      time.Time `json:"created_at"`
	Topic          string    `json:"topic"`
	ID             int64     `json:"id,string"`
	MeetingID      int64     `json:"meeting_id,string"`
	TimeAllocation int       `json:"time_allocation"`
}

func ToAgendaItemResponse(item *model.AgendaItem) *AgendaItemResponse {
	return &AgendaItemResponse{
		ID:             item.ID,
		MeetingID:      item.MeetingID,
		Topic:          item.Topic,
		TimeAllocation: item.TimeAllocation,
		CreatedAt:      item.CreatedAt,
	}
}
