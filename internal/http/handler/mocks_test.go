package handler_test

import (
	"context"
	"time"

	"claritymeet.app/api-server/internal/model"
	"claritymeet.app/api-server/internal/service"
	"claritymeet.app/api-server/internal/suggest"
)

type mockMeetingService struct {
	createFn func(ctx context.Context, title string, scheduledTime time.Time, durationMinutes int) (*model.Meeting, error)
	getFn    func(ctx context.Context, meetingID int64) (*model.Meeting, error)
	listFn   func(ctx context.Context, status *model.MeetingStatus) ([]model.Meeting, error)
	startFn  func(ctx context.Context, meetingID int64) (*model.Meeting, error)
	closeFn  func(ctx context.Context, meetingID int64) (*model.Meeting, error)
}

func (m *mockMeetingService) Create(ctx context.Context, title string, scheduledTime time.Time, durationMinutes int) (*model.Meeting, error) {
	if m.createFn != nil {
		return m.createFn(ctx, title, scheduledTime, durationMinutes)
	}
	return nil, nil
}

func (m *mockMeetingService) Get(ctx context.Context, meetingID int64) (*model.Meeting, error) {
	if m.getFn != nil {
		return m.getFn(ctx, meetingID)
	}
	return nil, nil
}

func (m *mockMeetingService) List(ctx context.Context, status *model.MeetingStatus) ([]model.Meeting, error) {
	if m.listFn != nil {
		return m.listFn(ctx, status)
	}
	return []model.Meeting{}, nil
}

func (m *mockMeetingService) Start(ctx context.Context, meetingID int64) (*model.Meeting, error) {
	if m.startFn != nil {
		return m.startFn(ctx, meetingID)
	}
	return nil, nil
}

func (m *mockMeetingService) Close(ctx context.Context, meetingID int64) (*model.Meeting, error) {
	if m.closeFn != nil {
		return m.closeFn(ctx, meetingID)
	}
	return nil, nil
}

type mockAgendaService struct {
	addFn    func(ctx context.Context, meetingID int64, topic string, timeAllocation int) (*model.AgendaItem, error)
	updateFn func(ctx context.Context, itemID int64, timeAllocation int) (*model.AgendaItem, error)
	deleteFn func(ctx context.Context, itemID int64) error
}

func (m *mockAgendaService) Add(ctx context.Context, meetingID int64, topic string, timeAllocation int) (*model.AgendaItem, error) {
	if m.addFn != nil {
		return m.addFn(ctx, meetingID, topic, timeAllocation)
	}
	return nil, nil
}

func (m *mockAgendaService) Update(ctx context.Context, itemID int64, timeAllocation int) (*model.AgendaItem, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, itemID, timeAllocation)
	}
	return nil, nil
}

func (m *mockAgendaService) Delete(ctx context.Context, itemID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, itemID)
	}
	return nil
}

type mockActionItemService struct {
	createFn        func(ctx context.Context, meetingID int64, description, owner string, deadline time.Time) (*model.ActionItem, error)
	completeFn      func(ctx context.Context, itemID int64) (*model.ActionItem, error)
	listByMeetingFn func(ctx context.Context, meetingID int64) ([]model.ActionItem, error)
}

func (m *mockActionItemService) Create(ctx context.Context, meetingID int64, description, owner string, deadline time.Time) (*model.ActionItem, error) {
	if m.createFn != nil {
		return m.createFn(ctx, meetingID, description, owner, deadline)
	}
	return nil, nil
}

func (m *mockActionItemService) Complete(ctx context.Context, itemID int64) (*model.ActionItem, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, itemID)
	}
	return nil, nil
}

func (m *mockActionItemService) ListByMeeting(ctx context.Context, meetingID int64) ([]model.ActionItem, error) {
	if m.listByMeetingFn != nil {
		return m.listByMeetingFn(ctx, meetingID)
	}
	return []model.ActionItem{}, nil
}

type mockReviewService struct {
	createFn func(ctx context.Context, meetingID int64, summary string, outcomeRating int, followupRequired bool) (*model.Review, error)
}

func (m *mockReviewService) Create(ctx context.Context, meetingID int64, summary string, outcomeRating int, followupRequired bool) (*model.Review, error) {
	if m.createFn != nil {
		return m.createFn(ctx, meetingID, summary, outcomeRating, followupRequired)
	}
	return nil, nil
}

type mockDashboardService struct {
	getFn func(ctx context.Context) (*service.Dashboard, error)
}

func (m *mockDashboardService) Get(ctx context.Context) (*service.Dashboard, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return &service.Dashboard{}, nil
}

type mockSuggestService struct {
	suggestAgendaFn   func(ctx context.Context, title string) ([]suggest.AgendaSuggestion, error)
	suggestActionsFn  func(ctx context.Context, title string, agendaTopics []string) ([]suggest.ActionSuggestion, error)
	summarizeReviewFn func(ctx context.Context, title string, actionItems []model.ActionItem) (*suggest.ReviewDraft, error)
}

func (m *mockSuggestService) SuggestAgenda(ctx context.Context, title string) ([]suggest.AgendaSuggestion, error) {
	if m.suggestAgendaFn != nil {
		return m.suggestAgendaFn(ctx, title)
	}
	return []suggest.AgendaSuggestion{}, nil
}

func (m *mockSuggestService) SuggestActions(ctx context.Context, title string, agendaTopics []string) ([]suggest.ActionSuggestion, error) {
	if m.suggestActionsFn != nil {
		return m.suggestActionsFn(ctx, title, agendaTopics)
	}
	return []suggest.ActionSuggestion{}, nil
}

func (m *mockSuggestService) SummarizeReview(ctx context.Context, title string, actionItems []model.ActionItem) (*suggest.ReviewDraft, error) {
	if m.summarizeReviewFn != nil {
		return m.summarizeReviewFn(ctx, title, actionItems)
	}
	return &suggest.ReviewDraft{}, nil
}
