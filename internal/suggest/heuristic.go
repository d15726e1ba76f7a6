package suggest

import (
	"context"
	"fmt"

	"claritymeet.app/api-server/internal/model"
)

// Heuristic produces deterministic template suggestions. It is the fallback
// when no LLM is configured or the LLM call fails.
type Heuristic struct{}

var _ Service = Heuristic{}

func (Heuristic) SuggestAgenda(ctx context.Context, title string) ([]AgendaSuggestion, error) {
	return []AgendaSuggestion{
		{Topic: fmt.Sprintf("Review progress on %s", title), TimeAllocation: 10},
		{Topic: "Open discussion and blockers", TimeAllocation: 10},
		{Topic: "Decisions and next steps", TimeAllocation: 10},
	}, nil
}

func (Heuristic) SuggestActions(ctx context.Context, title string, agendaTopics []string) ([]ActionSuggestion, error) {
	if len(agendaTopics) > 3 {
		agendaTopics = agendaTopics[:3]
	}
	suggestions := make([]ActionSuggestion, 0, len(agendaTopics))
	for _, topic := range agendaTopics {
		suggestions = append(suggestions, ActionSuggestion{
			Description: fmt.Sprintf("Follow up on: %s", topic),
		})
	}
	return suggestions, nil
}

func (Heuristic) SummarizeReview(ctx context.Context, title string, actionItems []model.ActionItem) (*ReviewDraft, error) {
	completed := 0
	for _, item := range actionItems {
		if item.Status == model.ActionCompleted {
			completed++
		}
	}
	total := len(actionItems)

	rating := 2
	if completed >= total/2 {
		rating = 3
	}

	return &ReviewDraft{
		Summary: fmt.Sprintf("Meeting %q concluded with %d action items. %d completed, %d pending.",
			title, total, completed, total-completed),
		SuggestedRating: rating,
	}, nil
}
