package dto

import (
	"claritymeet.app/api-server/internal/model"
	"claritymeet.app/api-server/internal/suggest"
)

type SuggestAgendaRequest struct {
	Title string `json:"title" binding:"required,min=1"`
}

type SuggestActionsRequest struct {
	Title        string   `json:"title" binding:"required,min=1"`
	AgendaTopics []string `json:"agenda_topics"`
}

type SummarizeReviewRequest struct {
	Title       string          `json:"title" binding:"required,min=1"`
	ActionItems []ActionItemRef `json:"action_items"`
}

// ActionItemRef is the caller's view of an action item fed to the
// suggestion collaborator; only description and status matter.
type ActionItemRef struct {
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (r *SummarizeReviewRequest) ToModel() []model.ActionItem {
	items := make([]model.ActionItem, 0, len(r.ActionItems))
	for _, ref := range r.ActionItems {
		items = append(items, model.ActionItem{
			Description: ref.Description,
			Status:      model.ActionItemStatus(ref.Status),
		})
	}
	return items
}

type SuggestionsResponse[T any] struct {
	Suggestions []T `json:"suggestions"`
}

type ReviewDraftResponse struct {
	Summary         string `json:"summary"`
	SuggestedRating int    `json:"suggested_rating"`
}

func ToReviewDraftResponse(draft *suggest.ReviewDraft) *ReviewDraftResponse {
	return &ReviewDraftResponse{
		Summary:         draft.Summary,
		SuggestedRating: draft.SuggestedRating,
	}
}
