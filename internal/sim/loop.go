package sim

import (
	"context"
	"log/slog"
	"time"

	"github.com/ted-dokos/cube-engine/internal/clock"
	"github.com/ted-dokos/cube-engine/internal/event"
	"github.com/ted-dokos/cube-engine/internal/handoff"
)

// Loop is the fixed-tick scheduler. Each iteration it fully drains the
// simulation-side event queue into the input state, runs as many fixed
// ticks as wall time owes (catching up if the goroutine was delayed),
// publishes a snapshot, and coarse-sleeps toward the next tick.
type Loop struct {
	state *State
	queue *event.Queue
	out   *handoff.Mailbox[Snapshot]
	clk   clock.Clock

	input        InputState
	tickDuration time.Duration
	guard        time.Duration
	lastTick     time.Time

	// Client-area size, the recentring anchor for mouse samples.
	width  int
	height int
}

// NewLoop wires a simulation loop. width and height are the initial
// client-area size; resize events keep them current.
func NewLoop(state *State, queue *event.Queue, out *handoff.Mailbox[Snapshot], clk clock.Clock, width, height int) *Loop {
	return &Loop{
		state:        state,
		queue:        queue,
		out:          out,
		clk:          clk,
		tickDuration: TickDuration,
		guard:        clock.DefaultGuard,
		width:        width,
		height:       height,
	}
}

// Run drives the loop until ctx is cancelled. Cancellation is checked
// once per iteration; there is no other shutdown path.
func (l *Loop) Run(ctx context.Context) {
	l.lastTick = l.clk.Now()
	slog.Info("Simulation loop started", "tick_duration", l.tickDuration)
	for ctx.Err() == nil {
		l.step()
		clock.CoarseWait(l.clk, l.lastTick.Add(l.tickDuration), l.guard)
	}
	slog.Info("Simulation loop stopped", "tick", l.state.Tick)
}

// step runs one outer iteration: drain, tick to catch up, publish.
func (l *Loop) step() {
	l.drainEvents()

	// Falling behind by more than a tick or two should be rare; when
	// it happens the same aggregated input feeds every catch-up tick.
	for l.clk.Now().Sub(l.lastTick) >= l.tickDuration {
		l.lastTick = l.lastTick.Add(l.tickDuration)
		l.state.Update(&l.input, float32(l.tickDuration.Seconds()))
		l.input.PostUpdateReset()
	}

	l.out.Publish(l.state.Snapshot())
}

func (l *Loop) drainEvents() {
	for !l.queue.IsEmpty() {
		switch e := l.queue.PopFront().(type) {
		case event.KeyDown:
			l.input.ApplyKeyDown(e)
		case event.KeyUp:
			l.input.ApplyKeyUp(e)
		case event.MouseMove:
			if !l.input.ApplyMouseMove(e, l.width, l.height) {
				slog.Debug("Discarding mouse sample outside central box",
					"x", e.X, "y", e.Y)
			}
		case event.Resize:
			l.width = e.Width
			l.height = e.Height
			if e.Height > 0 {
				l.state.SetAspect(float32(e.Width) / float32(e.Height))
			}
		default:
			slog.Warn("Unhandled event on simulation queue", "event", e)
		}
	}
}
