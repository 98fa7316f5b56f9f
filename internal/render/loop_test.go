package render

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/ted-dokos/cube-engine/internal/clock"
	"github.com/ted-dokos/cube-engine/internal/event"
	"github.com/ted-dokos/cube-engine/internal/handoff"
	"github.com/ted-dokos/cube-engine/internal/sim"
)

func newTestLoop() (*Loop, *event.Queue, *handoff.Mailbox[sim.Snapshot], *Headless, *clock.Fake) {
	q := event.NewQueue()
	in := handoff.New[sim.Snapshot](64)
	b := &Headless{}
	clk := clock.NewFake(time.Unix(2000, 0))
	return NewLoop(q, in, b, clk), q, in, b, clk
}

func snapshotWithTick(tick int64) sim.Snapshot {
	s := sim.NewState(1)
	s.Tick = tick
	s.Camera.Eye = mgl32.Vec3{float32(tick), 0, 0}
	return s.Snapshot()
}

func TestIterate_AppliesFreshestSnapshotOnly(t *testing.T) {
	l, _, in, b, _ := newTestLoop()
	for tick := int64(1); tick <= 5; tick++ {
		in.Publish(snapshotWithTick(tick))
	}

	last := time.Unix(2000, 0)
	report := last
	frames := 0
	l.iterate(last.Add(-time.Hour), &report, &frames)

	if len(b.Cameras) != 1 {
		t.Fatalf("camera updates = %d, want exactly 1", len(b.Cameras))
	}
	if got := b.Cameras[0].Eye.X(); got != 5 {
		t.Fatalf("applied camera from tick %v, want tick 5", got)
	}
}

func TestIterate_RendersOnlyWhenBudgetDue(t *testing.T) {
	l, _, _, b, clk := newTestLoop()
	report := clk.Now()
	frames := 0

	// Not due: last render was just now.
	last := l.iterate(clk.Now(), &report, &frames)
	if b.Frames != 0 {
		t.Fatalf("rendered %d frames before the budget was due", b.Frames)
	}

	clk.Advance(DefaultFrameBudget)
	last = l.iterate(last, &report, &frames)
	if b.Frames != 1 {
		t.Fatalf("frames = %d, want 1 once budget is due", b.Frames)
	}
}

func TestIterate_BackendEventsDispatched(t *testing.T) {
	l, q, _, b, clk := newTestLoop()
	q.Push(event.Resize{Width: 640, Height: 480})
	q.Push(event.MouseMove{X: 15, Y: 25})
	q.Push(event.Paint{})

	report := clk.Now()
	frames := 0
	l.iterate(clk.Now(), &report, &frames)

	if len(b.Resizes) != 1 || b.Resizes[0] != [2]int{640, 480} {
		t.Fatalf("resizes = %v, want [[640 480]]", b.Resizes)
	}
	if len(b.Background) != 1 || b.Background[0] != [2]int{15, 25} {
		t.Fatalf("background updates = %v, want [[15 25]]", b.Background)
	}
	if !q.IsEmpty() {
		t.Fatal("render queue not fully drained")
	}
}

func TestIterate_RenderFailureSwallowedAndRetried(t *testing.T) {
	l, _, _, b, clk := newTestLoop()
	b.RenderErr = errors.New("surface lost")
	report := clk.Now()
	frames := 0

	last := clk.Now().Add(-time.Hour)
	last = l.iterate(last, &report, &frames)
	if b.Frames != 1 {
		t.Fatalf("frames = %d, want 1 despite the error", b.Frames)
	}

	// Recovery: the next due frame renders again.
	b.RenderErr = nil
	clk.Advance(DefaultFrameBudget)
	l.iterate(last, &report, &frames)
	if b.Frames != 2 {
		t.Fatalf("frames = %d, want 2 after retry", b.Frames)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	q := event.NewQueue()
	in := handoff.New[sim.Snapshot](64)
	b := &Headless{}
	l := NewLoop(q, in, b, clock.Real{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("render loop did not stop after cancellation")
	}
	if b.Frames == 0 {
		t.Fatal("expected at least the initial frame to render")
	}
}
