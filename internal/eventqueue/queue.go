// Package eventqueue implements the global min-heap that drives simulated
// time. It is backed by github.com/emirpasic/gods/queues/priorityqueue, a
// teacher-pack dependency (see ethereum-go-ethereum/go.mod), rather than a
// hand-rolled container/heap wrapper.
package eventqueue

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"

	"github.com/klaytn-labs/p2psim/internal/event"
)

// eventComparator orders first by fire time, then by insertion sequence, so
// that two events scheduled for the same simulated instant are dispatched in
// FIFO order of enqueuing — gods' underlying heap is not stable on its own,
// so the tie-break has to be encoded in the comparator itself to keep runs
// reproducible.
func eventComparator(a, b interface{}) int {
	ea, eb := a.(*event.Event), b.(*event.Event)
	switch {
	case ea.FireTime < eb.FireTime:
		return -1
	case ea.FireTime > eb.FireTime:
		return 1
	case ea.Seq < eb.Seq:
		return -1
	case ea.Seq > eb.Seq:
		return 1
	default:
		return 0
	}
}

// Queue is a min-heap of *event.Event keyed by (FireTime, Seq). It is not
// goroutine-safe: the driver is its only caller, matching the single-
// threaded, cooperative scheduling model of the engine.
type Queue struct {
	pq     *priorityqueue.Queue
	nextSeq uint64
}

// New returns an empty event queue.
func New() *Queue {
	return &Queue{pq: priorityqueue.NewWith(eventComparator)}
}

// Enqueue admits ev, stamping it with the next insertion sequence number and
// overwriting any Seq it already carries. Always admissible; O(log n)
// amortized.
func (q *Queue) Enqueue(ev *event.Event) {
	ev.Seq = q.nextSeq
	q.nextSeq++
	q.pq.Enqueue(ev)
}

// PopMin returns the earliest event, or (nil, false) if the queue is empty.
func (q *Queue) PopMin() (*event.Event, bool) {
	v, ok := q.pq.Dequeue()
	if !ok {
		return nil, false
	}
	return v.(*event.Event), true
}

// Empty reports whether the queue holds no events.
func (q *Queue) Empty() bool {
	return q.pq.Empty()
}

// Len reports the number of pending events.
func (q *Queue) Len() int {
	return q.pq.Size()
}
