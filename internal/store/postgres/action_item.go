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

var actionItemColumns = []string{"id", "meeting_id", "description", "owner", "deadline", "status", "created_at"}

type actionItemStore struct {
	q querier
}

func (s *actionItemStore) GetByID(ctx context.Context, id int64) (*model.ActionItem, error) {
	sql, args, err := psql.Select(actionItemColumns...).From("action_items").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	item, err := scanActionItem(s.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *actionItemStore) Create(ctx context.Context, item *model.ActionItem) error {
	sql, args, err := psql.Insert("action_items").
		Columns("id", "meeting_id", "description", "owner", "deadline", "status").
		Values(item.ID, item.MeetingID, item.Description, item.Owner, item.Deadline, item.Status).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	return s.q.QueryRow(ctx, sql, args...).Scan(&item.CreatedAt)
}

func (s *actionItemStore) Update(ctx context.Context, item *model.ActionItem) error {
	sql, args, err := psql.Update("action_items").
		Set("description", item.Description).
		Set("owner", item.Owner).
		Set("deadline", item.Deadline).
		Set("status", item.Status).
		Where(squirrel.Eq{"id": item.ID}).
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

func (s *actionItemStore) ListByMeeting(ctx context.Context, meetingID int64) ([]model.ActionItem, error) {
	return s.list(ctx, squirrel.Eq{"meeting_id": meetingID})
}

func (s *actionItemStore) ListByStatus(ctx context.Context, status model.ActionItemStatus) ([]model.ActionItem, error) {
	return s.list(ctx, squirrel.Eq{"status": status})
}

func (s *actionItemStore) list(ctx context.Context, pred any) ([]model.ActionItem, error) {
	sql, args, err := psql.Select(actionItemColumns...).From("action_items").
		Where(pred).
		OrderBy("created_at ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.ActionItem
	for rows.Next() {
		item, err := scanActionItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func scanActionItem(row pgx.Row) (*model.ActionItem, error) {
	var item model.ActionItem
	err := row.Scan(&item.ID, &item.MeetingID, &item.Description, &item.Owner, &item.Deadline, &item.Status, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
