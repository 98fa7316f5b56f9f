// Package render paces the consumer side of the engine: it drains the
// render-side event queue, applies the freshest simulation snapshot,
// and invokes the rendering backend at a bounded frame rate.
package render

import (
	"github.com/ted-dokos/cube-engine/internal/camera"
)

// Backend is the narrow interface the render loop requires of the
// graphics layer. The instance set is handed to the backend at startup
// and never mutated afterwards; per frame only the camera pose and the
// client-area size change.
type Backend interface {
	// UpdateCamera replaces the camera pose used for subsequent frames.
	UpdateCamera(camera.Camera)

	// Resize adapts the surface to a new client-area size.
	Resize(width, height int)

	// UpdateBackground applies the cosmetic cursor-position effect.
	UpdateBackground(x, y int)

	// Render draws one frame. Failures (e.g. a lost surface) are
	// swallowed by the caller and implicitly retried next frame.
	Render() error
}

// Headless is a Backend that records calls and renders nothing. It
// backs tests and lets the engine run without a display.
type Headless struct {
	Cameras    []camera.Camera
	Resizes    [][2]int
	Background [][2]int
	Frames     int

	// RenderErr, when set, is returned by every Render call.
	RenderErr error
}

func (h *Headless) UpdateCamera(c camera.Camera) {
	h.Cameras = append(h.Cameras, c)
}

func (h *Headless) Resize(width, height int) {
	h.Resizes = append(h.Resizes, [2]int{width, height})
}

func (h *Headless) UpdateBackground(x, y int) {
	h.Background = append(h.Background, [2]int{x, y})
}

func (h *Headless) Render() error {
	h.Frames++
	return h.RenderErr
}
