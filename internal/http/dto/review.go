package dto

import (
	"time"

	"claritymeet.app/api-server/internal/model"
)

type CreateReviewRequest struct {
	Summary          string `json:"summary" binding:"required,min=1"`
	OutcomeRating    int    `json:"outcome_rating" binding:"required,min=1,max=5"`
	FollowupRequired bool   `json:"followup_required"`
}

type ReviewResponse struct {
	CreatedAt        time.Time `json:"created_at"`
	Summary          string    `json:"summary"`
	ID               int64     `json:"id,string"`
	MeetingID        int64     `json:"meeting_id,string"`
	OutcomeRating    int       `json:"outcome_rating"`
	FollowupRequired bool      `json:"followup_required"`
}

func ToReviewResponse(review *model.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:               review.ID,
		MeetingID:        review.MeetingID,
		Summary:          review.Summary,
		OutcomeRating:    review.OutcomeRating,
		FollowupRequired: review.FollowupRequired,
		CreatedAt:        review.CreatedAt,
	}
}
