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

var meetingColumns = []string{"id", "title", "scheduled_time", "duration_minutes", "status", "closed_at", "created_at"}

type meetingStore struct {
	q querier
}

func (s *meetingStore) GetByID(ctx context.Context, id int64) (*model.Meeting, error) {
	return s.get(ctx, id, false)
}

func (s *meetingStore) GetForUpdate(ctx context.Context, id int64) (*model.Meeting, error) {
	return s.get(ctx, id, true)
}

func (s *meetingStore) get(ctx context.Context, id int64, forUpdate bool) (*model.Meeting, error) {
	builder := psql.Select(meetingColumns...).From("meetings").Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	meeting, err := scanMeeting(s.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return meeting, nil
}

func (s *meetingStore) Create(ctx context.Context, meeting *model.Meeting) error {
	sql, args, err := psql.Insert("meetings").
		Columns("id", "title", "scheduled_time", "duration_minutes", "status").
		Values(meeting.ID, meeting.Title, meeting.ScheduledTime, meeting.DurationMinutes, meeting.Status).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	return s.q.QueryRow(ctx, sql, args...).Scan(&meeting.CreatedAt)
}

func (s *meetingStore) Update(ctx context.Context, meeting *model.Meeting) error {
	sql, args, err := psql.Update("meetings").
		Set("title", meeting.Title).
		Set("scheduled_time", meeting.ScheduledTime).
		Set("duration_minutes", meeting.DurationMinutes).
		Set("status", meeting.Status).
		Set("closed_at", meeting.ClosedAt).
		Where(squirrel.Eq{"id": meeting.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	tag, err := s.q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *meetingStore) List(ctx context.Context, status *model.MeetingStatus) ([]model.Meeting, error) {
	builder := psql.Select(meetingColumns...).From("meetings").OrderBy("scheduled_time DESC")
	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []model.Meeting
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, *meeting)
	}
	return meetings, rows.Err()
}

func scanMeeting(row pgx.Row) (*model.Meeting, error) {
	var m model.Meeting
	err := row.Scan(&m.ID, &m.Title, &m.ScheduledTime, &m.DurationMinutes, &m.Status, &m.ClosedAt, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
