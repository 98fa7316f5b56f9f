package event

import "sync"

// Queue is a mutex-guarded FIFO mailbox with one external producer and
// one consumer. Consumers use the check-then-pop pattern:
//
//	for !q.IsEmpty() {
//		e := q.PopFront()
//		...
//	}
//
// The lock covers only the queue mutation, never the event's
// processing. Growth is unbounded; only resize/key/mouse events are
// ever enqueued and consumers drain every iteration, so a backlog
// means a stalled consumer, not a dropped event.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// IsEmpty reports whether the queue has no pending events.
func (q *Queue) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events) == 0
}

// PopFront removes and returns the oldest event. Popping an empty
// queue is a contract violation and panics: with a single consumer per
// queue it cannot happen under check-then-pop.
func (q *Queue) PopFront() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		panic("event: PopFront on empty queue")
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e
}
