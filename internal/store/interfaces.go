package store

import (
	"context"
	"errors"

	"claritymeet.app/api-server/internal/model"
)

var ErrNotFound = errors.New("not found")

type MeetingStore interface {
	GetByID(ctx context.Context, id int64) (*model.Meeting, error)
	// GetForUpdate loads a meeting for mutation. Inside a transaction the row
	// is locked so that guard-check-and-apply is atomic per meeting.
	GetForUpdate(ctx context.Context, id int64) (*model.Meeting, error)
	Create(ctx context.Context, meeting *model.Meeting) error
	Update(ctx context.Context, meeting *model.Meeting) error
	List(ctx context.Context, status *model.MeetingStatus) ([]model.Meeting, error)
}

type AgendaItemStore interface {
	GetByID(ctx context.Context, id int64) (*model.AgendaItem, error)
	Create(ctx context.Context, item *model.AgendaItem) error
	Update(ctx context.Context, item *model.AgendaItem) error
	Delete(ctx context.Context, id int64) error
	ListByMeeting(ctx context.Context, meetingID int64) ([]model.AgendaItem, error)
}

type ActionItemStore interface {
	GetByID(ctx context.Context, id int64) (*model.ActionItem, error)
	Create(ctx context.Context, item *model.ActionItem) error
	Update(ctx context.Context, item *model.ActionItem) error
	ListByMeeting(ctx context.Context, meetingID int64) ([]model.ActionItem, error)
	ListByStatus(ctx context.Context, status model.ActionItemStatus) ([]model.ActionItem, error)
}

type ReviewStore interface {
	GetByMeeting(ctx context.Context, meetingID int64) (*model.Review, error)
	Create(ctx context.Context, review *model.Review) error
}
