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

var agendaItemColumns = []string{"id", "meeting_id", "topic", "time_allocation", "created_at"}

type agendaItemStore struct {
	q querier
}

func (s *agendaItemStore) GetByID(ctx context.Context, id int64) (*model.AgendaItem, error) {
	sql, args, err := psql.Select(agendaItemColumns...).From("agenda_items").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	item, err := scanAgendaItem(s.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *agendaItemStore) Create(ctx context.Context, item *model.AgendaItem) error {
	sql, args, err := psql.Insert("agenda_items").
		Columns("id", "meeting_id", "topic", "time_allocation").
		Values(item.ID, item.MeetingID, item.Topic, item.TimeAllocation).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	return s.q.QueryRow(ctx, sql, args...).Scan(&item.CreatedAt)
}

func (s *agendaItemStore) Update(ctx context.Context, item *model.AgendaItem) error {
	sql, args, err := psql.Update("agenda_items").
		Set("topic", item.Topic).
		Set("time_allocation", item.TimeAllocation).
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

func (s *agendaItemStore) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("agenda_items").Where(squirrel.Eq{"id": id}).ToSql()
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

func (s *agendaItemStore) ListByMeeting(ctx context.Context, meetingID int64) ([]model.AgendaItem, error) {
	sql, args, err := psql.Select(agendaItemColumns...).From("agenda_items").
		Where(squirrel.Eq{"meeting_id": meetingID}).
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

	var items []model.AgendaItem
	for rows.Next() {
		item, err := scanAgendaItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func scanAgendaItem(row pgx.Row) (*model.AgendaItem, error) {
	var item model.AgendaItem
	err := row.Scan(&item.ID, &item.MeetingID, &item.Topic, &item.TimeAllocation, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
