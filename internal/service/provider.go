package service

import (
	"context"

	"claritymeet.app/api-server/internal/store"
)

// StoreProvider exposes the entity stores bound to one unit of work.
type StoreProvider interface {
	Meetings() store.MeetingStore
	AgendaItems() store.AgendaItemStore
	ActionItems() store.ActionItemStore
	Reviews() store.ReviewStore
}

// TxRunner executes fn against stores sharing a single transaction (or, for
// the in-memory implementation, a serialized critical section). Mutating
// operations rely on it for atomic guard-check-and-apply per meeting.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}
