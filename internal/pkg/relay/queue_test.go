package relay

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPutTakeOrder(t *testing.T) {
	ctx := context.Background()
	q := New[int](4)
	for i := 0; i < 4; i++ {
		require.NoError(t, q.Put(ctx, i))
	}
	require.Equal(t, 4, q.Len())
	for i := 0; i < 4; i++ {
		v, err := q.Take(ctx)
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	require.Equal(t, 0, q.Len())
}

func TestDefaultCapacity(t *testing.T) {
	q := New[int](0)
	require.Equal(t, DefaultCapacity, q.Cap())
	q = New[int](-1)
	require.Equal(t, DefaultCapacity, q.Cap())
}

func TestPutBlocksWhenFull(t *testing.T) {
	ctx := context.Background()
	q := New[int](1)
	require.NoError(t, q.Put(ctx, 1))

	unblocked := make(chan error, 1)
	go func() {
		unblocked <- q.Put(ctx, 2)
	}()

	select {
	case <-unblocked:
		t.Fatal("put should block while the queue is full")
	case <-time.After(50 * time.Millisecond):
	}

	v, err := q.Take(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.NoError(t, <-unblocked)

	v, err = q.Take(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestCloseDrainsBufferedItems(t *testing.T) {
	ctx := context.Background()
	q := New[string](4)
	require.NoError(t, q.Put(ctx, "a"))
	require.NoError(t, q.Put(ctx, "b"))
	q.Close()
	q.Close() // idempotent

	v, err := q.Take(ctx)
	require.NoError(t, err)
	require.Equal(t, "a", v)
	v, err = q.Take(ctx)
	require.NoError(t, err)
	require.Equal(t, "b", v)

	_, err = q.Take(ctx)
	require.ErrorIs(t, err, ErrDrained)
	_, err = q.Take(ctx)
	require.ErrorIs(t, err, ErrDrained)
}

func TestAbandonUnblocksPut(t *testing.T) {
	ctx := context.Background()
	q := New[int](1)
	require.NoError(t, q.Put(ctx, 1))

	unblocked := make(chan error, 1)
	go func() {
		unblocked <- q.Put(ctx, 2)
	}()
	time.Sleep(20 * time.Millisecond)
	q.Abandon()
	q.Abandon() // idempotent
	require.ErrorIs(t, <-unblocked, ErrAbandoned)

	// Later puts fail fast.
	require.ErrorIs(t, q.Put(ctx, 3), ErrAbandoned)
}

func TestPutObservesContext(t *testing.T) {
	q := New[int](1)
	require.NoError(t, q.Put(context.Background(), 1))

	ctx, cancel := context.WithCancel(context.Background())
	unblocked := make(chan error, 1)
	go func() {
		unblocked <- q.Put(ctx, 2)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()
	require.ErrorIs(t, <-unblocked, context.Canceled)
}

func TestTakeObservesContext(t *testing.T) {
	q := New[int](1)
	ctx, cancel := context.WithCancel(context.Background())
	unblocked := make(chan error, 1)
	go func() {
		_, err := q.Take(ctx)
		unblocked <- err
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()
	require.ErrorIs(t, <-unblocked, context.Canceled)
}
