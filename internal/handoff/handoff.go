// Package handoff carries full state snapshots from the simulation
// goroutine to the render goroutine. Single producer, single consumer,
// latest wins: the consumer only ever cares about the freshest value,
// never about completeness or seeing every intermediate tick.
package handoff

import "sync"

// Mailbox is the one-directional channel between the loops. Publish
// never blocks the producer: when the buffer is full the oldest
// pending value is dropped.
type Mailbox[T any] struct {
	ch chan T

	// dropMu serializes the evict-then-send fallback across producers.
	dropMu sync.Mutex
}

// New returns a mailbox buffering up to capacity pending values.
func New[T any](capacity int) *Mailbox[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Mailbox[T]{ch: make(chan T, capacity)}
}

// Publish enqueues v, evicting the oldest pending value if the buffer
// is full. It never blocks.
func (m *Mailbox[T]) Publish(v T) {
	select {
	case m.ch <- v:
		return
	default:
	}

	m.dropMu.Lock()
	defer m.dropMu.Unlock()
	for {
		select {
		case m.ch <- v:
			return
		default:
			select {
			case <-m.ch:
			default:
			}
		}
	}
}

// TakeLatest drains every pending value and returns the most recent
// one. It never blocks; ok is false when nothing was pending.
func (m *Mailbox[T]) TakeLatest() (latest T, ok bool) {
	for {
		select {
		case v := <-m.ch:
			latest, ok = v, true
		default:
			return latest, ok
		}
	}
}
