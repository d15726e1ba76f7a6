package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"claritymeet.app/api-server/common/id"
	"claritymeet.app/api-server/internal/model"
)

type ActionItemService interface {
	Create(ctx context.Context, meetingID int64, description, owner string, deadline time.Time) (*model.ActionItem, error)
	Complete(ctx context.Context, itemID int64) (*model.ActionItem, error)
	ListByMeeting(ctx context.Context, meetingID int64) ([]model.ActionItem, error)
}

type actionItemService struct {
	tx TxRunner
}

func NewActionItemService(tx TxRunner) ActionItemService {
	return &actionItemService{tx: tx}
}

func (s *actionItemService) Create(ctx context.Context, meetingID int64, description, owner string, deadline time.Time) (*model.ActionItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, &ValidationError{Field: "owner", Reason: "must not be empty"}
	}
	if deadline.IsZero() {
		return nil, &ValidationError{Field: "deadline", Reason: "must be set"}
	}

	item := &model.ActionItem{
		ID:          id.New(),
		MeetingID:   meetingID,
		Description: description,
		Owner:       owner,
		Deadline:    deadline,
		Status:      model.ActionOpen,
	}

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		meeting, err := stores.Meetings().GetForUpdate(ctx, meetingID)
		if err != nil {
			return err
		}
		if !meeting.CanAddActions() {
			return &model.InvalidTransitionError{Current: meeting.Status, Attempted: "add action item"}
		}
		if err := stores.ActionItems().Create(ctx, item); err != nil {
			return fmt.Errorf("creating action item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "action item created",
		"action_item_id", item.ID, "meeting_id", meetingID, "owner", owner)
	return item, nil
}

func (s *actionItemService) Complete(ctx context.Context, itemID int64) (*model.ActionItem, error) {
	var item *model.ActionItem
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		loaded, err := stores.ActionItems().GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		meeting, err := stores.Meetings().GetForUpdate(ctx, loaded.MeetingID)
		if err != nil {
			return err
		}
		if !meeting.CanCompleteActions() {
			return &model.InvalidTransitionError{Current: meeting.Status, Attempted: "complete action item"}
		}

		loaded.Complete()
		if err := stores.ActionItems().Update(ctx, loaded); err != nil {
			return fmt.Errorf("updating action item: %w", err)
		}
		item = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "action item completed", "action_item_id", itemID)
	return item, nil
}

func (s *actionItemService) ListByMeeting(ctx context.Context, meetingID int64) ([]model.ActionItem, error) {
	var items []model.ActionItem
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Meetings().GetByID(ctx, meetingID); err != nil {
			return err
		}
		loaded, err := stores.ActionItems().ListByMeeting(ctx, meetingID)
		if err != nil {
			return err
		}
		items = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
