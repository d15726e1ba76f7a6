package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jonboulle/clockwork"

	"claritymeet.app/api-server/internal/model"
	"claritymeet.app/api-server/internal/store"
)

// Dashboard is a derived, uncached view computed fresh from the stores on
// every call.
type Dashboard struct {
	Counts             DashboardCounts
	UpcomingMeetings   []model.Meeting
	PendingReview      []model.Meeting
	OpenActionItems    []model.ActionItem
	OverdueActionItems []model.ActionItem
}

type DashboardCounts struct {
	Upcoming       int
	PendingReview  int
	OpenActions    int
	OverdueActions int
}

type DashboardService interface {
	Get(ctx context.Context) (*Dashboard, error)
}

type dashboardService struct {
	tx    TxRunner
	clock clockwork.Clock
}

func NewDashboardService(tx TxRunner, clock clockwork.Clock) DashboardService {
	return &dashboardService{tx: tx, clock: clock}
}

func (s *dashboardService) Get(ctx context.Context) (*Dashboard, error) {
	now := s.clock.Now()

	var dashboard *Dashboard
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		meetings, err := stores.Meetings().List(ctx, nil)
		if err != nil {
			return fmt.Errorf("listing meetings: %w", err)
		}

		var upcoming, pendingReview []model.Meeting
		for i := range meetings {
			meeting := &meetings[i]
			switch meeting.Status {
			case model.MeetingScheduled:
				if meeting.ScheduledTime.After(now) {
					if err := hydrateMeeting(ctx, stores, meeting); err != nil {
						return err
					}
					upcoming = append(upcoming, *meeting)
				}
			case model.MeetingClosed:
				if _, err := stores.Reviews().GetByMeeting(ctx, meeting.ID); err != nil {
					if !errors.Is(err, store.ErrNotFound) {
						return fmt.Errorf("loading review: %w", err)
					}
					if err := hydrateMeeting(ctx, stores, meeting); err != nil {
						return err
					}
					pendingReview = append(pendingReview, *meeting)
				}
			}
		}

		sort.Slice(upcoming, func(i, j int) bool {
			return upcoming[i].ScheduledTime.Before(upcoming[j].ScheduledTime)
		})

		openActions, err := stores.ActionItems().ListByStatus(ctx, model.ActionOpen)
		if err != nil {
			return fmt.Errorf("listing open action items: %w", err)
		}

		var overdue []model.ActionItem
		for _, item := range openActions {
			if item.IsOverdue(now) {
				overdue = append(overdue, item)
			}
		}

		dashboard = &Dashboard{
			Counts: DashboardCounts{
				Upcoming:       len(upcoming),
				PendingReview:  len(pendingReview),
				OpenActions:    len(openActions),
				OverdueActions: len(overdue),
			},
			UpcomingMeetings:   upcoming,
			PendingReview:      pendingReview,
			OpenActionItems:    openActions,
			OverdueActionItems: overdue,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dashboard, nil
}
