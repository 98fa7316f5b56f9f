package sim

import (
	"context"
	"testing"
	"time"

	"github.com/ted-dokos/cube-engine/internal/clock"
	"github.com/ted-dokos/cube-engine/internal/event"
	"github.com/ted-dokos/cube-engine/internal/handoff"
)

func newTestLoop() (*Loop, *event.Queue, *handoff.Mailbox[Snapshot], *clock.Fake) {
	q := event.NewQueue()
	out := handoff.New[Snapshot](64)
	clk := clock.NewFake(time.Unix(1000, 0))
	l := NewLoop(NewState(16.0/9.0), q, out, clk, 800, 600)
	l.lastTick = clk.Now()
	return l, q, out, clk
}

func TestStep_PublishesEvenWithoutTicking(t *testing.T) {
	l, _, out, _ := newTestLoop()

	l.step()

	snap, ok := out.TakeLatest()
	if !ok {
		t.Fatal("step published nothing")
	}
	if snap.Tick != 0 {
		t.Fatalf("tick = %d, want 0 before any tick is due", snap.Tick)
	}
}

func TestStep_CatchesUpMissedTicks(t *testing.T) {
	l, _, out, clk := newTestLoop()

	clk.Advance(35 * time.Millisecond)
	l.step()

	snap, ok := out.TakeLatest()
	if !ok {
		t.Fatal("step published nothing")
	}
	if snap.Tick != 3 {
		t.Fatalf("tick = %d, want 3 after 35ms of owed time", snap.Tick)
	}
	// lastTick advances in whole tick units, keeping the residue.
	if owed := clk.Now().Sub(l.lastTick); owed != 5*time.Millisecond {
		t.Fatalf("owed time after catch-up = %v, want 5ms", owed)
	}
}

func TestStep_ResetsOneShotInputAfterTick(t *testing.T) {
	l, q, _, clk := newTestLoop()
	q.Push(event.KeyDown{Key: event.KeyJump})
	q.Push(event.KeyDown{Key: event.KeyForward})
	q.Push(event.MouseMove{X: 420, Y: 310})

	clk.Advance(10 * time.Millisecond)
	l.step()

	if l.input.Jump || l.input.MouseDX != 0 || l.input.MouseDY != 0 {
		t.Fatalf("one-shot input survived the tick: %+v", l.input)
	}
	if !l.input.Forward {
		t.Fatal("level flag cleared by tick; should persist until key-up")
	}
}

func TestStep_ResizeUpdatesAspectAndAnchor(t *testing.T) {
	l, q, _, _ := newTestLoop()
	q.Push(event.Resize{Width: 1000, Height: 500})

	l.step()

	if l.state.Camera.Aspect != 2 {
		t.Fatalf("aspect = %v, want 2", l.state.Camera.Aspect)
	}
	if l.width != 1000 || l.height != 500 {
		t.Fatalf("anchor area = %dx%d, want 1000x500", l.width, l.height)
	}
}

func TestStep_DrainsQueueCompletely(t *testing.T) {
	l, q, _, _ := newTestLoop()
	for i := 0; i < 50; i++ {
		q.Push(event.MouseMove{X: 401, Y: 300})
	}

	l.step()

	if !q.IsEmpty() {
		t.Fatal("simulation queue not fully drained")
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	q := event.NewQueue()
	out := handoff.New[Snapshot](64)
	l := NewLoop(NewState(1), q, out, clock.Real{}, 800, 600)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancellation")
	}

	snap, ok := out.TakeLatest()
	if !ok || snap.Tick == 0 {
		t.Fatalf("expected ticks to have run, got (tick=%d, ok=%v)", snap.Tick, ok)
	}
}
