package dto

import (
	"time"

	"claritymeet.app/api-server/internal/model"
)

// deadlineFormat is the wire format for action item deadlines (date only).
const deadlineFormat = "2006-01-02"

type CreateActionItemRequest struct {
	Description string `json:"description" binding:"required,min=1"`
	Owner       string `json:"owner" binding:"required,min=1"`
	Deadline    string `json:"deadline" binding:"required"`
}

// ParseDeadline accepts a date or a full RFC 3339 timestamp.
func (r *CreateActionItemRequest) ParseDeadline() (time.Time, error) {
	if t, err := time.Parse(deadlineFormat, r.Deadline); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, r.Deadline)
}

type ActionItemResponse struct {
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	Deadline    string    `json:"deadline"`
	Status      string    `json:"status"`
	ID          int64     `json:"id,string"`
	MeetingID   int64     `json:"meeting_id,string"`
	IsOverdue   bool      `json:"is_overdue"`
}

func ToActionItemResponse(item *model.ActionItem, now time.Time) *ActionItemResponse {
	return &ActionItemResponse{
		ID:          item.ID,
		MeetingID:   item.MeetingID,
		Description: item.Description,
		Owner:       item.Owner,
		Deadline:    item.Deadline.Format(deadlineFormat),
		Status:      string(item.Status),
		IsOverdue:   item.IsOverdue(now),
		CreatedAt:   item.CreatedAt,
	}
}

func ToActionItemResponses(items []model.ActionItem, now time.Time) []ActionItemResponse {
	result := make([]ActionItemResponse, len(items))
	for i := range items {
		result[i] = *ToActionItemResponse(&items[i], now)
	}
	return result
}
