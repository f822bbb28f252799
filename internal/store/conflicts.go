package store

import (
	"log/slog"

	"github.com/google/uuid"

	"eventhub/internal/models"
)

// EnqueueConflict records a diverging (local, remote) pair of the same
// logical event, pending user resolution. Nothing is auto-resolved.
func (s *Store) EnqueueConflict(clientEvent, serverEvent models.Event) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	conflictID := uuid.NewString()

	s.conflicts = append(s.conflicts, models.ConflictPayload{
		ConflictID:  conflictID,
		ClientEvent: clientEvent,
		ServerEvent: serverEvent,
	})

	s.log.Info("conflict enqueued",
		slog.String("conflict_id", conflictID),
		slog.String("event_id", clientEvent.ID),
	)

	return conflictID
}

// ResolveConflict commits the chosen snapshot as the new truth for the
// entity and drops the queue entry. An unknown conflict id is a no-op.
func (s *Store) ResolveConflict(conflictID string, keepMine bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.conflicts {
		if c.ConflictID != conflictID {
			continue
		}

		chosen := c.ServerEvent
		if keepMine {
			chosen = c.ClientEvent
		}

		s.replaceLocked(chosen)
		s.conflicts = append(s.conflicts[:i], s.conflicts[i+1:]...)

		return true
	}

	return false
}

func (s *Store) Conflicts() []models.ConflictPayload {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ConflictPayload, len(s.conflicts))
	copy(out, s.conflicts)

	return out
}

func (s *Store) HasConflicts() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.conflicts) > 0
}
