package store

import (
	"log/slog"

	"eventhub/internal/models"
)

// OptimisticRegister takes one spot ahead of server confirmation and pushes
// an undo entry holding the full pre-mutation snapshot. The capacity check
// and the decrement happen under the same lock. The returned token
// identifies the pushed entry, so a failed confirmation can revert exactly
// this mutation via Revert.
func (s *Store) OptimisticRegister(id string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return 0, ErrNotFound
	}

	if s.events[i].AvailableSpots <= 0 {
		return 0, ErrCapacityExceeded
	}

	token := s.pushUndoLocked(models.UndoRegistration, s.events[i])

	s.events[i].AvailableSpots--
	s.events[i].LastUpdated = s.nowMillis()
	s.recompute()

	return token, nil
}

// OptimisticCancel returns one spot ahead of server confirmation. Going
// past capacity would mean an unpaired mutation, so it is refused.
func (s *Store) OptimisticCancel(id string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return 0, ErrNotFound
	}

	if s.events[i].AvailableSpots >= s.events[i].Capacity {
		return 0, ErrCapacityExceeded
	}

	token := s.pushUndoLocked(models.UndoCancellation, s.events[i])

	s.events[i].AvailableSpots++
	s.events[i].LastUpdated = s.nowMillis()
	s.recompute()

	return token, nil
}

// ApplyOptimistic merges arbitrary field changes with an undo entry, for
// optimistic event edits that are not plain register/cancel.
func (s *Store) ApplyOptimistic(id string, ch Change) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return 0, ErrNotFound
	}

	token := s.pushUndoLocked(models.UndoEventUpdate, s.events[i])

	ch.apply(&s.events[i])
	s.events[i].LastUpdated = s.nowMillis()
	s.recompute()

	return token, nil
}

// pushUndoLocked appends an undo entry, evicting the oldest once the log
// holds maxUndoDepth entries. Must be called with s.mu held. Returns the
// entry's sequence token.
func (s *Store) pushUndoLocked(typ models.UndoType, previous models.Event) uint64 {
	s.undoSeq++

	s.undoLog = append(s.undoLog, models.UndoAction{
		Seq:       s.undoSeq,
		ID:        previous.ID,
		Type:      typ,
		Previous:  previous,
		Timestamp: s.nowMillis(),
	})

	if len(s.undoLog) > maxUndoDepth {
		s.undoLog = s.undoLog[len(s.undoLog)-maxUndoDepth:]
	}

	return s.undoSeq
}

// Revert removes the undo entry identified by token and restores its
// snapshot. Unlike Undo it targets one specific mutation: a corrective
// rollback can never reverse an unrelated operation that pushed a later
// entry. A token whose entry was already popped or evicted is a no-op.
func (s *Store) Revert(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, action := range s.undoLog {
		if action.Seq != token {
			continue
		}

		s.undoLog = append(s.undoLog[:i], s.undoLog[i+1:]...)

		j := s.indexOf(action.ID)
		if j < 0 {
			s.log.Warn("revert target no longer present", slog.String("event_id", action.ID))
			return false
		}

		s.events[j] = action.Previous
		s.recompute()

		return true
	}

	return false
}

// Undo pops the most recent undo entry and restores the full snapshot it
// holds. Only the latest action is reversible at any time. An empty log is
// a no-op.
func (s *Store) Undo() (models.UndoAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undoLog) == 0 {
		return models.UndoAction{}, false
	}

	action := s.undoLog[len(s.undoLog)-1]
	s.undoLog = s.undoLog[:len(s.undoLog)-1]

	i := s.indexOf(action.ID)
	if i < 0 {
		s.log.Warn("undo target no longer present", slog.String("event_id", action.ID))
		return action, false
	}

	s.events[i] = action.Previous
	s.recompute()

	return action, true
}

func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.undoLog) > 0
}

func (s *Store) UndoDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.undoLog)
}
