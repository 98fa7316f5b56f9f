package sim

import "github.com/ted-dokos/cube-engine/internal/event"

// InputState aggregates everything the platform delivered since the
// last tick: level-triggered movement flags, a one-shot jump, and
// accumulated mouse deltas. The simulation loop owns it exclusively.
type InputState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool

	// MouseDX/MouseDY accumulate cursor deltas against the recentring
	// anchor across every mouse sample seen since the last tick.
	MouseDX int
	MouseDY int
}

// PostUpdateReset clears the one-shot fields after a tick has consumed
// them. Level flags persist until an explicit up-edge.
func (s *InputState) PostUpdateReset() {
	s.MouseDX = 0
	s.MouseDY = 0
	s.Jump = false
}

// ApplyKeyDown applies a down-edge.
//
// Left/right suppress OS auto-repeat: a down event flagged as repeat
// leaves the flag alone. Forward/backward/jump apply on every down
// event unconditionally. The asymmetry is long-standing observed
// behavior; keep it rather than harmonizing the two sides.
func (s *InputState) ApplyKeyDown(e event.KeyDown) {
	switch e.Key {
	case event.KeyLeft:
		if !e.Repeat {
			s.Left = true
		}
	case event.KeyRight:
		if !e.Repeat {
			s.Right = true
		}
	case event.KeyForward:
		s.Forward = true
	case event.KeyBackward:
		s.Backward = true
	case event.KeyJump:
		s.Jump = true
	}
}

// ApplyKeyUp clears the level flag for the released key regardless of
// repeat state. Jump is one-shot and is cleared by PostUpdateReset,
// not by an up-edge.
func (s *InputState) ApplyKeyUp(e event.KeyUp) {
	switch e.Key {
	case event.KeyLeft:
		s.Left = false
	case event.KeyRight:
		s.Right = false
	case event.KeyForward:
		s.Forward = false
	case event.KeyBackward:
		s.Backward = false
	}
}

// ApplyMouseMove folds one cursor sample into the accumulated deltas.
// The sample is measured against the recentring anchor at the center
// of the width x height client area. Samples landing outside the
// centered quarter-window box are spurious (typically the cursor's
// first entry into the window) and are discarded; the caller may want
// to log them.
func (s *InputState) ApplyMouseMove(e event.MouseMove, width, height int) bool {
	centerX := width / 2
	centerY := height / 2
	dx := e.X - centerX
	dy := e.Y - centerY
	if abs(dx) >= width/4 || abs(dy) >= height/4 {
		return false
	}
	s.MouseDX += dx
	s.MouseDY += dy
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
