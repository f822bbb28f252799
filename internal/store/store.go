package store

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"eventhub/internal/models"
)

var (
	ErrNotFound         = errors.New("event not found")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// maxUndoDepth bounds the undo log; the oldest entry is evicted first.
const maxUndoDepth = 5

// Store is the single source of truth for the event collection. Every
// mutation goes through a named operation so it can be paired with an
// inverse snapshot for undo, and every mutation recomputes the filtered
// view synchronously: the view is always a pure function of
// (events, filters), never mutated on its own.
type Store struct {
	mu sync.Mutex

	log *slog.Logger
	now func() time.Time

	events   []models.Event
	filters  models.FilterState
	filtered []models.Event

	undoLog   []models.UndoAction
	undoSeq   uint64
	conflicts []models.ConflictPayload
	pending   map[string]struct{}

	loading bool
	lastErr string
}

func New(log *slog.Logger) *Store {
	return &Store{
		log: log,
		now: time.Now,
		filters: models.FilterState{
			SortBy:        models.SortByDate,
			SortDirection: models.SortAsc,
		},
		pending: make(map[string]struct{}),
	}
}

func (s *Store) nowMillis() int64 {
	return s.now().UnixMilli()
}

// recompute must be called with s.mu held.
func (s *Store) recompute() {
	s.filtered = FilterAndSort(s.events, s.filters)
}

// SetAll replaces the entire collection and clears loading/error flags.
func (s *Store) SetAll(events []models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = make([]models.Event, len(events))
	copy(s.events, events)
	s.loading = false
	s.lastErr = ""
	s.recompute()
}

// Add appends a single event to the collection.
func (s *Store) Add(event models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	s.recompute()
}

// ApplyChange merges the given fields into the event with the matching id
// and bumps its lastUpdated stamp. A missing id is an inconsistency: it is
// logged and the call is a no-op.
func (s *Store) ApplyChange(id string, ch Change) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.log.Warn("apply change for unknown event", slog.String("event_id", id))
		return false
	}

	ch.apply(&s.events[i])
	s.events[i].LastUpdated = s.nowMillis()
	s.recompute()

	return true
}

// Replace commits the given snapshot as the new truth for its id.
func (s *Store) Replace(event models.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replaceLocked(event)
}

func (s *Store) replaceLocked(event models.Event) bool {
	i := s.indexOf(event.ID)
	if i < 0 {
		s.log.Warn("replace for unknown event", slog.String("event_id", event.ID))
		return false
	}

	s.events[i] = event
	s.recompute()

	return true
}

// DecrementAvailability takes one spot. The capacity check is paired with
// the decrement under the same lock.
func (s *Store) DecrementAvailability(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	if s.events[i].AvailableSpots <= 0 {
		return ErrCapacityExceeded
	}

	s.events[i].AvailableSpots--
	s.events[i].LastUpdated = s.nowMillis()
	s.recompute()

	return nil
}

// IncrementAvailability is the inverse of DecrementAvailability. Exceeding
// capacity indicates a broken undo/mutation pairing, so it is refused.
func (s *Store) IncrementAvailability(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	if s.events[i].AvailableSpots >= s.events[i].Capacity {
		return ErrCapacityExceeded
	}

	s.events[i].AvailableSpots++
	s.events[i].LastUpdated = s.nowMillis()
	s.recompute()

	return nil
}

// Event returns a copy of the event with the given id.
func (s *Store) Event(id string) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Event{}, false
	}

	return s.events[i], true
}

// Events returns a copy of the full collection in insertion order.
func (s *Store) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Event, len(s.events))
	copy(out, s.events)

	return out
}

// Filtered returns a copy of the current filtered, sorted view.
func (s *Store) Filtered() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Event, len(s.filtered))
	copy(out, s.filtered)

	return out
}

func (s *Store) Filters() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filters
}

func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.SearchQuery = query
	s.recompute()
}

func (s *Store) SetSortBy(sortBy models.SortBy) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.SortBy = sortBy
	s.recompute()
}

func (s *Store) SetSortDirection(dir models.SortDirection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.SortDirection = dir
	s.recompute()
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = loading
}

func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = msg
	s.loading = false
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = ""
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastErr
}

// TryMarkPending atomically claims the in-flight slot for the given event
// id. It returns false when an operation is already pending, so the check
// and the claim cannot be split across concurrent callers.
func (s *Store) TryMarkPending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[id]; ok {
		return false
	}

	s.pending[id] = struct{}{}

	return true
}

func (s *Store) ClearPending(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, id)
}

func (s *Store) HasPending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.pending[id]

	return ok
}

func (s *Store) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.pending))
	for id := range s.pending {
		out = append(out, id)
	}

	return out
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id string) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}

	return -1
}
