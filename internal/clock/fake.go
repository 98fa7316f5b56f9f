package clock

import (
	"sync"
	"time"
)

// Fake is a manually driven clock for tests. Sleep advances the fake
// time by the full requested duration, so loop code that sleeps makes
// deterministic progress without real waiting.
type Fake struct {
	mu  sync.Mutex
	now time.Time

	// SleepCalls records every Sleep duration in order.
	SleepCalls []time.Duration
}

// NewFake returns a fake clock starting at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Sleep(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SleepCalls = append(f.SleepCalls, d)
	if d > 0 {
		f.now = f.now.Add(d)
	}
}

// Advance moves the fake time forward without recording a sleep.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
