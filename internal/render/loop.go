package render

import (
	"context"
	"log/slog"
	"time"

	"github.com/ted-dokos/cube-engine/internal/clock"
	"github.com/ted-dokos/cube-engine/internal/event"
	"github.com/ted-dokos/cube-engine/internal/handoff"
	"github.com/ted-dokos/cube-engine/internal/sim"
)

const (
	// DefaultFrameBudget caps the render loop at 100 FPS. It is a
	// separate constant from the simulation tick; the two loops pace
	// themselves independently.
	DefaultFrameBudget = 10 * time.Millisecond

	// fpsReportInterval is how often the observed frame rate is logged.
	fpsReportInterval = 2 * time.Second
)

// Loop consumes snapshots and drives the backend. It never blocks on
// the simulation: each iteration takes whatever snapshot is freshest,
// or renders with the previous camera when none arrived.
type Loop struct {
	queue   *event.Queue
	in      *handoff.Mailbox[sim.Snapshot]
	backend Backend
	clk     clock.Clock

	frameBudget time.Duration
	guard       time.Duration
}

// NewLoop wires a render loop around the given backend.
func NewLoop(queue *event.Queue, in *handoff.Mailbox[sim.Snapshot], backend Backend, clk clock.Clock) *Loop {
	return &Loop{
		queue:       queue,
		in:          in,
		backend:     backend,
		clk:         clk,
		frameBudget: DefaultFrameBudget,
		guard:       clock.DefaultGuard,
	}
}

// Run drives the loop until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	lastRender := l.clk.Now()
	if err := l.backend.Render(); err != nil {
		slog.Warn("Initial render failed", "error", err)
	}

	lastReport := lastRender
	frames := 0
	slog.Info("Render loop started", "frame_budget", l.frameBudget)
	for ctx.Err() == nil {
		lastRender = l.iterate(lastRender, &lastReport, &frames)
		clock.CoarseWait(l.clk, lastRender.Add(l.frameBudget), l.guard)
	}
	slog.Info("Render loop stopped")
}

// iterate runs one pass: drain events, apply the freshest snapshot,
// report FPS, render if the frame budget is due. Returns the updated
// last-render time.
func (l *Loop) iterate(lastRender time.Time, lastReport *time.Time, frames *int) time.Time {
	l.drainEvents()

	if snap, ok := l.in.TakeLatest(); ok {
		l.backend.UpdateCamera(snap.Camera)
	}

	now := l.clk.Now()
	if now.Sub(*lastReport) >= fpsReportInterval {
		elapsed := now.Sub(*lastReport).Seconds()
		slog.Debug("Observed frame rate", "fps", float64(*frames)/elapsed)
		*frames = 0
		*lastReport = now
	}

	if now.Sub(lastRender) >= l.frameBudget {
		lastRender = now
		*frames++
		if err := l.backend.Render(); err != nil {
			// Retry on the next frame.
			slog.Warn("Render failed", "error", err)
		}
	}
	return lastRender
}

func (l *Loop) drainEvents() {
	for !l.queue.IsEmpty() {
		switch e := l.queue.PopFront().(type) {
		case event.Resize:
			l.backend.Resize(e.Width, e.Height)
		case event.MouseMove:
			l.backend.UpdateBackground(e.X, e.Y)
		case event.Paint:
			// The backend repaints every frame anyway.
		default:
			slog.Warn("Unhandled event on render queue", "event", e)
		}
	}
}
