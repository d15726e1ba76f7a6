package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"claritymeet.app/api-server/internal/model"
	"claritymeet.app/api-server/internal/store"
)

type reviewStore struct {
	q querier
}

func (s *reviewStore) GetByMeeting(ctx context.Context, meetingID int64) (*model.Review, error) {
	sql, args, err := psql.Select("id", "meeting_id", "summary", "outcome_rating", "followup_required", "created_at").
		From("reviews").
		Where(squirrel.Eq{"meeting_id": meetingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	var r model.Review
	err = s.q.QueryRow(ctx, sql, args...).
		Scan(&r.ID, &r.MeetingID, &r.Summary, &r.OutcomeRating, &r.FollowupRequired, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *reviewStore) Create(ctx context.Context, review *model.Review) error {
	sql, args, err := psql.Insert("reviews").
		Columns("id", "meeting_id", "summary", "outcome_rating", "followup_required").
		Values(review.ID, review.MeetingID, review.Summary, review.OutcomeRating, review.FollowupRequired).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	return s.q.QueryRow(ctx, sql, args...).Scan(&review.CreatedAt)
}
