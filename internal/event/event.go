// Package event defines the platform-originated event types and the
// mutex-guarded FIFO queues that carry them from the platform layer to
// the simulation and render loops.
package event

// Key is an abstract input field. Mapping raw platform key codes onto
// these is the platform layer's job.
type Key int

const (
	KeyUnknown Key = iota
	KeyForward
	KeyBackward
	KeyLeft
	KeyRight
	KeyJump
)

// Event is one platform occurrence. Each concrete type carries exactly
// the payload its tag needs; consumers type-switch and log anything
// they do not recognize.
type Event interface {
	isEvent()
}

// Resize reports the new client-area size.
type Resize struct {
	Width  int
	Height int
}

// Paint asks the render side to repaint. No payload.
type Paint struct{}

// MouseMove carries the OS-reported cursor position in client
// coordinates. Consumers turn it into a delta against the recentring
// anchor themselves.
type MouseMove struct {
	X int
	Y int
}

// KeyDown reports a key transition to pressed. Repeat is set when the
// platform says the key was already held (OS auto-repeat).
type KeyDown struct {
	Key    Key
	Repeat bool
}

// KeyUp reports a key transition to released.
type KeyUp struct {
	Key Key
}

func (Resize) isEvent()    {}
func (Paint) isEvent()     {}
func (MouseMove) isEvent() {}
func (KeyDown) isEvent()   {}
func (KeyUp) isEvent()     {}
