package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"claritymeet.app/api-server/common/id"
	"claritymeet.app/api-server/internal/model"
)

type AgendaService interface {
	Add(ctx context.Context, meetingID int64, topic string, timeAllocation int) (*model.AgendaItem, error)
	Update(ctx context.Context, itemID int64, timeAllocation int) (*model.AgendaItem, error)
	Delete(ctx context.Context, itemID int64) error
}

type agendaService struct {
	tx TxRunner
}

func NewAgendaService(tx TxRunner) AgendaService {
	return &agendaService{tx: tx}
}

func (s *agendaService) Add(ctx context.Context, meetingID int64, topic string, timeAllocation int) (*model.AgendaItem, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, &ValidationError{Field: "topic", Reason: "must not be empty"}
	}
	if timeAllocation < 1 {
		return nil, &ValidationError{Field: "time_allocation", Reason: "must be a positive integer"}
	}

	item := &model.AgendaItem{
		ID:             id.New(),
		MeetingID:      meetingID,
		Topic:          topic,
		TimeAllocation: timeAllocation,
	}

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		meeting, err := stores.Meetings().GetForUpdate(ctx, meetingID)
		if err != nil {
			return err
		}
		if !meeting.CanEditAgenda() {
			return &model.InvalidTransitionError{Current: meeting.Status, Attempted: "edit agenda"}
		}
		if err := stores.AgendaItems().Create(ctx, item); err != nil {
			return fmt.Errorf("creating agenda item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "agenda item added", "agenda_item_id", item.ID, "meeting_id", meetingID)
	return item, nil
}

func (s *agendaService) Update(ctx context.Context, itemID int64, timeAllocation int) (*model.AgendaItem, error) {
	if timeAllocation < 1 {
		return nil, &ValidationError{Field: "time_allocation", Reason: "must be a positive integer"}
	}

	var item *model.AgendaItem
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		loaded, err := stores.AgendaItems().GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		meeting, err := stores.Meetings().GetForUpdate(ctx, loaded.MeetingID)
		if err != nil {
			return err
		}
		if !meeting.CanEditAgenda() {
			return &model.InvalidTransitionError{Current: meeting.Status, Attempted: "edit agenda"}
		}

		loaded.TimeAllocation = timeAllocation
		if err := stores.AgendaItems().Update(ctx, loaded); err != nil {
			return fmt.Errorf("updating agenda item: %w", err)
		}
		item = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "agenda item updated", "agenda_item_id", itemID, "time_allocation", timeAllocation)
	return item, nil
}

func (s *agendaService) Delete(ctx context.Context, itemID int64) error {
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		item, err := stores.AgendaItems().GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		meeting, err := stores.Meetings().GetForUpdate(ctx, item.MeetingID)
		if err != nil {
			return err
		}
		if !meeting.CanEditAgenda() {
			return &model.InvalidTransitionError{Current: meeting.Status, Attempted: "edit agenda"}
		}
		return stores.AgendaItems().Delete(ctx, itemID)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "agenda item deleted", "agenda_item_id", itemID)
	return nil
}
