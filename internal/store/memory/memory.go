// Package memory implements the entity stores on in-process maps. It backs
// tests and local development where no Postgres is available. The Runner
// serializes units of work with a single mutex, which subsumes the
// per-meeting serialization the service requires.
package memory

import (
	"context"
	"sort"
	"sync"

	"claritymeet.app/api-server/internal/model"
	"claritymeet.app/api-server/internal/service"
	"claritymeet.app/api-server/internal/store"
)

type Store struct {
	mu          sync.RWMutex
	meetings    map[int64]*model.Meeting
	agendaItems map[int64]*model.AgendaItem
	actionItems map[int64]*model.ActionItem
	reviews     map[int64]*model.Review // keyed by meeting id

	seq int64 // insertion order tiebreaker for stable listings
	ord map[int64]int64
}

func NewStore() *Store {
	return &Store{
		meetings:    make(map[int64]*model.Meeting),
		agendaItems: make(map[int64]*model.AgendaItem),
		actionItems: make(map[int64]*model.ActionItem),
		reviews:     make(map[int64]*model.Review),
		ord:         make(map[int64]int64),
	}
}

func (s *Store) Meetings() store.MeetingStore       { return &meetingStore{s: s} }
func (s *Store) AgendaItems() store.AgendaItemStore { return &agendaItemStore{s: s} }
func (s *Store) ActionItems() store.ActionItemStore { return &actionItemStore{s: s} }
func (s *Store) Reviews() store.ReviewStore         { return &reviewStore{s: s} }

var _ service.StoreProvider = &Store{}

func (s *Store) track(id int64) {
	s.seq++
	s.ord[id] = s.seq
}

// Runner serializes all units of work against one Store.
type Runner struct {
	txMu  sync.Mutex
	store *Store
}

var _ service.TxRunner = &Runner{}

func NewRunner(s *Store) *Runner {
	return &Runner{store: s}
}

func (r *Runner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	return fn(r.store)
}

type meetingStore struct {
	s *Store
}

func (m *meetingStore) GetByID(ctx context.Context, id int64) (*model.Meeting, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	meeting, ok := m.s.meetings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyMeeting(meeting), nil
}

// GetForUpdate is identical to GetByID here; the Runner already serializes
// every mutating unit of work.
func (m *meetingStore) GetForUpdate(ctx context.Context, id int64) (*model.Meeting, error) {
	return m.GetByID(ctx, id)
}

func (m *meetingStore) Create(ctx context.Context, meeting *model.Meeting) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.meetings[meeting.ID] = copyMeeting(meeting)
	m.s.track(meeting.ID)
	return nil
}

func (m *meetingStore) Update(ctx context.Context, meeting *model.Meeting) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.meetings[meeting.ID]; !ok {
		return store.ErrNotFound
	}
	m.s.meetings[meeting.ID] = copyMeeting(meeting)
	return nil
}

func (m *meetingStore) List(ctx context.Context, status *model.MeetingStatus) ([]model.Meeting, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	var meetings []model.Meeting
	for _, meeting := range m.s.meetings {
		if status != nil && meeting.Status != *status {
			continue
		}
		meetings = append(meetings, *copyMeeting(meeting))
	}
	sort.Slice(meetings, func(i, j int) bool {
		if !meetings[i].ScheduledTime.Equal(meetings[j].ScheduledTime) {
			return meetings[i].ScheduledTime.After(meetings[j].ScheduledTime)
		}
		return m.s.ord[meetings[i].ID] < m.s.ord[meetings[j].ID]
	})
	return meetings, nil
}

type agendaItemStore struct {
	s *Store
}

func (a *agendaItemStore) GetByID(ctx context.Context, id int64) (*model.AgendaItem, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	item, ok := a.s.agendaItems[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (a *agendaItemStore) Create(ctx context.Context, item *model.AgendaItem) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	cp := *item
	a.s.agendaItems[item.ID] = &cp
	a.s.track(item.ID)
	return nil
}

func (a *agendaItemStore) Update(ctx context.Context, item *model.AgendaItem) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.agendaItems[item.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *item
	a.s.agendaItems[item.ID] = &cp
	return nil
}

func (a *agendaItemStore) Delete(ctx context.Context, id int64) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.agendaItems[id]; !ok {
		return store.ErrNotFound
	}
	delete(a.s.agendaItems, id)
	return nil
}

func (a *agendaItemStore) ListByMeeting(ctx context.Context, meetingID int64) ([]model.AgendaItem, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	var items []model.AgendaItem
	for _, item := range a.s.agendaItems {
		if item.MeetingID == meetingID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return a.s.ord[items[i].ID] < a.s.ord[items[j].ID]
	})
	return items, nil
}

type actionItemStore struct {
	s *Store
}

func (a *actionItemStore) GetByID(ctx context.Context, id int64) (*model.ActionItem, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	item, ok := a.s.actionItems[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (a *actionItemStore) Create(ctx context.Context, item *model.ActionItem) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	cp := *item
	a.s.actionItems[item.ID] = &cp
	a.s.track(item.ID)
	return nil
}

func (a *actionItemStore) Update(ctx context.Context, item *model.ActionItem) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.actionItems[item.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *item
	a.s.actionItems[item.ID] = &cp
	return nil
}

func (a *actionItemStore) ListByMeeting(ctx context.Context, meetingID int64) ([]model.ActionItem, error) {
	return a.list(func(item *model.ActionItem) bool { return item.MeetingID == meetingID })
}

func (a *actionItemStore) ListByStatus(ctx context.Context, status model.ActionItemStatus) ([]model.ActionItem, error) {
	return a.list(func(item *model.ActionItem) bool { return item.Status == status })
}

func (a *actionItemStore) list(keep func(*model.ActionItem) bool) ([]model.ActionItem, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	var items []model.ActionItem
	for _, item := range a.s.actionItems {
		if keep(item) {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return a.s.ord[items[i].ID] < a.s.ord[items[j].ID]
	})
	return items, nil
}

type reviewStore struct {
	s *Store
}

func (r *reviewStore) GetByMeeting(ctx context.Context, meetingID int64) (*model.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	review, ok := r.s.reviews[meetingID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *review
	return &cp, nil
}

func (r *reviewStore) Create(ctx context.Context, review *model.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *review
	r.s.reviews[review.MeetingID] = &cp
	r.s.track(review.ID)
	return nil
}

func copyMeeting(m *model.Meeting) *model.Meeting {
	cp := *m
	if m.ClosedAt != nil {
		closedAt := *m.ClosedAt
		cp.ClosedAt = &closedAt
	}
	// Children are stored and hydrated separately; never alias them here.
	cp.AgendaItems = nil
	cp.ActionItems = nil
	cp.Review = nil
	return &cp
}
