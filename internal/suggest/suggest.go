// Package suggest is the advisory suggestion collaborator. Its output is fed
// back through the ordinary validated mutation operations and never touches
// meeting state directly. Failures here must never block manual entry.
package suggest

import (
	"context"

	"claritymeet.app/api-server/internal/model"
)

type AgendaSuggestion struct {
	Topic          string `json:"topic"`
	TimeAllocation int    `json:"time_allocation"`
}

type ActionSuggestion struct {
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Deadline    string `json:"deadline"`
}

type ReviewDraft struct {
	Summary         string `json:"summary"`
	SuggestedRating int    `json:"suggested_rating"`
}

type Service interface {
	SuggestAgenda(ctx context.Context, title string) ([]AgendaSuggestion, error)
	SuggestActions(ctx context.Context, title string, agendaTopics []string) ([]ActionSuggestion, error)
	SummarizeReview(ctx context.Context, title string, actionItems []model.ActionItem) (*ReviewDraft, error)
}
