package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"claritymeet.app/api-server/common/id"
	"claritymeet.app/api-server/internal/model"
	"claritymeet.app/api-server/internal/store"
)

type MeetingService interface {
	Create(ctx context.Context, title string, scheduledTime time.Time, durationMinutes int) (*model.Meeting, error)
	Get(ctx context.Context, meetingID int64) (*model.Meeting, error)
	List(ctx context.Context, status *model.MeetingStatus) ([]model.Meeting, error)
	Start(ctx context.Context, meetingID int64) (*model.Meeting, error)
	Close(ctx context.Context, meetingID int64) (*model.Meeting, error)
}

type meetingService struct {
	tx    TxRunner
	clock clockwork.Clock
}

func NewMeetingService(tx TxRunner, clock clockwork.Clock) MeetingService {
	return &meetingService{tx: tx, clock: clock}
}

func (s *meetingService) Create(ctx context.Context, title string, scheduledTime time.Time, durationMinutes int) (*model.Meeting, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if durationMinutes < 1 {
		return nil, &ValidationError{Field: "duration_minutes", Reason: "must be a positive integer"}
	}
	if scheduledTime.IsZero() {
		return nil, &ValidationError{Field: "scheduled_time", Reason: "must be set"}
	}

	meeting := &model.Meeting{
		ID:              id.New(),
		Title:           title,
		ScheduledTime:   scheduledTime,
		DurationMinutes: durationMinutes,
		Status:          model.MeetingScheduled,
	}

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Meetings().Create(ctx, meeting); err != nil {
			return fmt.Errorf("creating meeting: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "meeting created", "meeting_id", meeting.ID, "title", meeting.Title)
	return meeting, nil
}

func (s *meetingService) Get(ctx context.Context, meetingID int64) (*model.Meeting, error) {
	var meeting *model.Meeting
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		loaded, err := stores.Meetings().GetByID(ctx, meetingID)
		if err != nil {
			return err
		}
		if err := hydrateMeeting(ctx, stores, loaded); err != nil {
			return err
		}
		meeting = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

func (s *meetingService) List(ctx context.Context, status *model.MeetingStatus) ([]model.Meeting, error) {
	var meetings []model.Meeting
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		loaded, err := stores.Meetings().List(ctx, status)
		if err != nil {
			return err
		}
		for i := range loaded {
			if err := hydrateMeeting(ctx, stores, &loaded[i]); err != nil {
				return err
			}
		}
		meetings = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (s *meetingService) Start(ctx context.Context, meetingID int64) (*model.Meeting, error) {
	meeting, err := s.transition(ctx, meetingID, func(m *model.Meeting) error {
		return m.Start()
	})
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "meeting started", "meeting_id", meetingID)
	return meeting, nil
}

func (s *meetingService) Close(ctx context.Context, meetingID int64) (*model.Meeting, error) {
	now := s.clock.Now()
	meeting, err := s.transition(ctx, meetingID, func(m *model.Meeting) error {
		return m.Close(now)
	})
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "meeting closed", "meeting_id", meetingID)
	return meeting, nil
}

// transition applies a guarded state change atomically: the meeting row is
// locked for the duration of guard-check-and-apply.
func (s *meetingService) transition(ctx context.Context, meetingID int64, apply func(*model.Meeting) error) (*model.Meeting, error) {
	var meeting *model.Meeting
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		loaded, err := stores.Meetings().GetForUpdate(ctx, meetingID)
		if err != nil {
			return err
		}
		if err := apply(loaded); err != nil {
			return err
		}
		if err := stores.Meetings().Update(ctx, loaded); err != nil {
			return fmt.Errorf("updating meeting: %w", err)
		}
		if err := hydrateMeeting(ctx, stores, loaded); err != nil {
			return err
		}
		meeting = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

// hydrateMeeting attaches agenda items, action items and the review.
func hydrateMeeting(ctx context.Context, stores StoreProvider, meeting *model.Meeting) error {
	agenda, err := stores.AgendaItems().ListByMeeting(ctx, meeting.ID)
	if err != nil {
		return fmt.Errorf("loading agenda items: %w", err)
	}
	actions, err := stores.ActionItems().ListByMeeting(ctx, meeting.ID)
	if err != nil {
		return fmt.Errorf("loading action items: %w", err)
	}
	review, err := stores.Reviews().GetByMeeting(ctx, meeting.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("loading review: %w", err)
	}

	meeting.AgendaItems = agenda
	meeting.ActionItems = actions
	meeting.Review = review
	return nil
}
