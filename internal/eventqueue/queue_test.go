package eventqueue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klaytn-labs/p2psim/internal/event"
)

func TestQueue_OrdersByFireTime(t *testing.T) {
	q := New()
	q.Enqueue(&event.Event{Kind: event.TxnGen, FireTime: 5})
	q.Enqueue(&event.Event{Kind: event.TxnGen, FireTime: 1})
	q.Enqueue(&event.Event{Kind: event.TxnGen, FireTime: 3})

	var order []float64
	for !q.Empty() {
		ev, ok := q.PopMin()
		require.True(t, ok)
		order = append(order, ev.FireTime)
	}
	require.Equal(t, []float64{1, 3, 5}, order)
}

func TestQueue_TieBreaksByInsertionOrder(t *testing.T) {
	q := New()
	first := &event.Event{Kind: event.TxnGen, FireTime: 10}
	second := &event.Event{Kind: event.TxnRecv, FireTime: 10}
	third := &event.Event{Kind: event.BlockRecv, FireTime: 10}
	q.Enqueue(first)
	q.Enqueue(second)
	q.Enqueue(third)

	got, ok := q.PopMin()
	require.True(t, ok)
	require.Same(t, first, got)

	got, ok = q.PopMin()
	require.True(t, ok)
	require.Same(t, second, got)

	got, ok = q.PopMin()
	require.True(t, ok)
	require.Same(t, third, got)
}

func TestQueue_EmptyReportsCorrectly(t *testing.T) {
	q := New()
	require.True(t, q.Empty())
	require.Equal(t, 0, q.Len())

	q.Enqueue(&event.Event{Kind: event.TxnGen, FireTime: 0})
	require.False(t, q.Empty())
	require.Equal(t, 1, q.Len())

	_, ok := q.PopMin()
	require.True(t, ok)
	require.True(t, q.Empty())

	_, ok = q.PopMin()
	require.False(t, ok)
}
