package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"claritymeet.app/api-server/common/id"
	"claritymeet.app/api-server/internal/model"
	"claritymeet.app/api-server/internal/store"
)

// followupThreshold: ratings below this force a follow-up regardless of the
// caller-supplied flag.
const followupThreshold = 3

type ReviewService interface {
	Create(ctx context.Context, meetingID int64, summary string, outcomeRating int, followupRequired bool) (*model.Review, error)
}

type reviewService struct {
	tx TxRunner
}

func NewReviewService(tx TxRunner) ReviewService {
	return &reviewService{tx: tx}
}

func (s *reviewService) Create(ctx context.Context, meetingID int64, summary string, outcomeRating int, followupRequired bool) (*model.Review, error) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return nil, &ValidationError{Field: "summary", Reason: "must not be empty"}
	}
	if outcomeRating < 1 || outcomeRating > 5 {
		return nil, &ValidationError{Field: "outcome_rating", Reason: "must be between 1 and 5"}
	}

	// Low outcomes always demand a follow-up. Silent override, not an error.
	if outcomeRating < followupThreshold {
		followupRequired = true
	}

	review := &model.Review{
		ID:               id.New(),
		MeetingID:        meetingID,
		Summary:          summary,
		OutcomeRating:    outcomeRating,
		FollowupRequired: followupRequired,
	}

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		meeting, err := stores.Meetings().GetForUpdate(ctx, meetingID)
		if err != nil {
			return err
		}

		if _, err := stores.Reviews().GetByMeeting(ctx, meetingID); err == nil {
			return ErrAlreadyReviewed
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking existing review: %w", err)
		}

		if err := meeting.AttachReview(review); err != nil {
			return err
		}

		if err := stores.Reviews().Create(ctx, review); err != nil {
			return fmt.Errorf("creating review: %w", err)
		}
		if err := stores.Meetings().Update(ctx, meeting); err != nil {
			return fmt.Errorf("updating meeting: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "review created",
		"meeting_id", meetingID, "outcome_rating", outcomeRating, "followup_required", followupRequired)
	return review, nil
}
