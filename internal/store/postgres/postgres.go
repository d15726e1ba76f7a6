// Package postgres implements the entity stores on pgx. Mutations run inside
// a transaction started by the Runner; per-meeting serialization comes from
// row locks taken by GetForUpdate.
package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"claritymeet.app/api-server/internal/service"
	"claritymeet.app/api-server/internal/store"
)

// psql builds queries with Postgres $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type stores struct {
	meetings    store.MeetingStore
	agendaItems store.AgendaItemStore
	actionItems store.ActionItemStore
	reviews     store.ReviewStore
}

func newStores(q querier) *stores {
	return &stores{
		meetings:    &meetingStore{q: q},
		agendaItems: &agendaItemStore{q: q},
		actionItems: &actionItemStore{q: q},
		reviews:     &reviewStore{q: q},
	}
}

func (s *stores) Meetings() store.MeetingStore       { return s.meetings }
func (s *stores) AgendaItems() store.AgendaItemStore { return s.agendaItems }
func (s *stores) ActionItems() store.ActionItemStore { return s.actionItems }
func (s *stores) Reviews() store.ReviewStore         { return s.reviews }

// Runner runs units of work against the connection pool.
type Runner struct {
	pool *pgxpool.Pool
}

var _ service.TxRunner = &Runner{}

func NewRunner(pool *pgxpool.Pool) *Runner {
	return &Runner{pool: pool}
}

func (r *Runner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(newStores(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
