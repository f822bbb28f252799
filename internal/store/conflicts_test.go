package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConflictKeepMine(t *testing.T) {
	t.Parallel()

	local := testEvent("1", 5, 10)
	local.Location = "Local Hall"

	remote := testEvent("1", 3, 10)
	remote.Location = "Remote Hall"

	s := newTestStore(t, local)

	conflictID := s.EnqueueConflict(local, remote)
	require.NotEmpty(t, conflictID)
	assert.True(t, s.HasConflicts())

	require.True(t, s.ResolveConflict(conflictID, true))

	ev, _ := s.Event("1")
	assert.Equal(t, "Local Hall", ev.Location)
	assert.Equal(t, 5, ev.AvailableSpots)

	assert.False(t, s.HasConflicts())
}

func TestResolveConflictKeepServer(t *testing.T) {
	t.Parallel()

	local := testEvent("1", 5, 10)
	remote := testEvent("1", 3, 10)
	remote.Location = "Remote Hall"

	s := newTestStore(t, local)

	conflictID := s.EnqueueConflict(local, remote)

	require.True(t, s.ResolveConflict(conflictID, false))

	ev, _ := s.Event("1")
	assert.Equal(t, "Remote Hall", ev.Location)
	assert.Equal(t, 3, ev.AvailableSpots)
}

func TestResolveUnknownConflictIsNoOp(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, testEvent("1", 5, 10))

	assert.False(t, s.ResolveConflict("missing", true))

	ev, _ := s.Event("1")
	assert.Equal(t, 5, ev.AvailableSpots)
}

func TestConflictsCopyOut(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, testEvent("1", 5, 10))

	s.EnqueueConflict(testEvent("1", 5, 10), testEvent("1", 4, 10))

	conflicts := s.Conflicts()
	require.Len(t, conflicts, 1)

	conflicts[0].ConflictID = "tampered"

	assert.NotEqual(t, "tampered", s.Conflicts()[0].ConflictID)
}
