package suggest

import (
	"context"
	"log/slog"

	"claritymeet.app/api-server/internal/model"
)

// Fallback serves from primary and degrades to the heuristic suggester when
// the primary fails. Suggestion failures are advisory-only and never surface
// as errors to the caller.
type Fallback struct {
	primary Service
}

var _ Service = &Fallback{}

func NewFallback(primary Service) *Fallback {
	return &Fallback{primary: primary}
}

func (f *Fallback) SuggestAgenda(ctx context.Context, title string) ([]AgendaSuggestion, error) {
	suggestions, err := f.primary.SuggestAgenda(ctx, title)
	if err != nil {
		slog.WarnContext(ctx, "agenda suggestion failed, using heuristic", "error", err)
		return Heuristic{}.SuggestAgenda(ctx, title)
	}
	return suggestions, nil
}

func (f *Fallback) SuggestActions(ctx context.Context, title string, agendaTopics []string) ([]ActionSuggestion, error) {
	suggestions, err := f.primary.SuggestActions(ctx, title, agendaTopics)
	if err != nil {
		slog.WarnContext(ctx, "action suggestion failed, using heuristic", "error", err)
		return Heuristic{}.SuggestActions(ctx, title, agendaTopics)
	}
	return suggestions, nil
}

func (f *Fallback) SummarizeReview(ctx context.Context, title string, actionItems []model.ActionItem) (*ReviewDraft, error) {
	draft, err := f.primary.SummarizeReview(ctx, title, actionItems)
	if err != nil {
		slog.WarnContext(ctx, "review summary failed, using heuristic", "error", err)
		return Heuristic{}.SummarizeReview(ctx, title, actionItems)
	}
	return draft, nil
}
