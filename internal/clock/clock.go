// Package clock abstracts the time source so the loop scheduling can
// be tested with an injectable clock. Both loops use the same
// two-phase strategy: a coarse sleep that stops short of the
// deadline, then a busy spin through the caller's own loop for the
// final stretch. OS sleep granularity is too coarse to hit a 10 ms
// period directly; undershooting by the guard interval bounds the
// scheduling error to roughly that guard.
package clock

import "time"

// DefaultGuard is how much of the wait is left to spinning. Sleeps
// shorter than this are skipped entirely.
const DefaultGuard = 1500 * time.Microsecond

// Clock is the time source a loop runs against.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// Real is the wall clock.
type Real struct{}

func (Real) Now() time.Time        { return time.Now() }
func (Real) Sleep(d time.Duration) { time.Sleep(d) }

// CoarseWait sleeps toward deadline, stopping guard short of it. If
// less than guard remains it returns immediately so the caller's loop
// spins the rest of the way. It never overshoots; the caller re-checks
// the deadline itself.
func CoarseWait(c Clock, deadline time.Time, guard time.Duration) {
	remaining := deadline.Sub(c.Now())
	if remaining > guard {
		c.Sleep(remaining - guard)
	}
}
