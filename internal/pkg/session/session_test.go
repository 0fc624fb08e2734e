package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	sess := New()
	require.Equal(t, StateCreated, sess.State())
	require.False(t, sess.State().Terminal())

	require.True(t, sess.Activate())
	require.Equal(t, StateActive, sess.State())
	require.False(t, sess.Activate())

	require.True(t, sess.Drain())
	require.Equal(t, StateDraining, sess.State())
	require.False(t, sess.Drain())

	require.True(t, sess.Finish(StateClosed))
	require.Equal(t, StateClosed, sess.State())
	require.True(t, sess.State().Terminal())
}

func TestFinishExactlyOnce(t *testing.T) {
	sess := New()
	sess.Activate()
	require.True(t, sess.Finish(StateCancelled))
	require.False(t, sess.Finish(StateClosed))
	require.False(t, sess.Finish(StateErrored))
	require.Equal(t, StateCancelled, sess.State())
}

func TestFinishRejectsNonTerminal(t *testing.T) {
	sess := New()
	sess.Activate()
	require.False(t, sess.Finish(StateDraining))
	require.Equal(t, StateActive, sess.State())
}

func TestCancelMonotonic(t *testing.T) {
	sess := New()
	require.False(t, sess.Cancelled())
	sess.Cancel()
	require.True(t, sess.Cancelled())
	sess.Cancel()
	require.True(t, sess.Cancelled())
}

func TestCounters(t *testing.T) {
	sess := New()
	require.Equal(t, uint64(0), sess.Requests())
	require.Equal(t, uint64(0), sess.Responses())
	sess.AddRequest()
	sess.AddRequest()
	sess.AddResponse()
	require.Equal(t, uint64(2), sess.Requests())
	require.Equal(t, uint64(1), sess.Responses())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "created", StateCreated.String())
	require.Equal(t, "active", StateActive.String())
	require.Equal(t, "draining", StateDraining.String())
	require.Equal(t, "closed", StateClosed.String())
	require.Equal(t, "cancelled", StateCancelled.String())
	require.Equal(t, "errored", StateErrored.String())
	require.Equal(t, "unknown", State(99).String())
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	require.Equal(t, 0, store.Len())

	sess := New()
	require.NoError(t, store.Add(sess))
	require.Equal(t, 1, store.Len())
	require.ErrorIs(t, store.Add(sess), ErrSessionAlreadyExists)

	got, err := store.Get(sess.ID())
	require.NoError(t, err)
	require.Same(t, sess, got)

	require.NoError(t, store.Remove(sess.ID()))
	require.Equal(t, 0, store.Len())
	require.ErrorIs(t, store.Remove(sess.ID()), ErrSessionNotFound)

	_, err = store.Get(sess.ID())
	require.ErrorIs(t, err, ErrSessionNotFound)
}
