// Package platform is the concrete window/input/draw layer behind the
// engine's narrow interfaces. It owns the raylib window, translates
// polled input into events on both queues, and draws the instance set
// from whatever camera the render loop last applied. Everything here
// is replaceable; no simulation code imports this package.
package platform

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ted-dokos/cube-engine/internal/camera"
	"github.com/ted-dokos/cube-engine/internal/event"
	"github.com/ted-dokos/cube-engine/internal/sim"
)

// Window implements render.Backend and acts as the single external
// event producer feeding both event queues. All methods must be called
// from the goroutine that ran Init, locked to its OS thread.
type Window struct {
	simQueue    *event.Queue
	renderQueue *event.Queue
	onClose     func()
	closeOnce   sync.Once

	title  string
	width  int
	height int

	cam      camera.Camera
	entities []sim.ModelInstances
	clear    rl.Color
}

// NewWindow prepares a window; Init actually opens it. onClose fires
// once when the user asks the window to close.
func NewWindow(width, height int, title string, simQueue, renderQueue *event.Queue, entities []sim.ModelInstances, onClose func()) *Window {
	return &Window{
		simQueue:    simQueue,
		renderQueue: renderQueue,
		onClose:     onClose,
		title:       title,
		width:       width,
		height:      height,
		entities:    entities,
		clear:       rl.NewColor(18, 18, 24, 255),
	}
}

// Init opens the window and captures the cursor. Must run on a locked
// OS thread.
func (w *Window) Init() {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(w.width), int32(w.height), w.title)
	rl.DisableCursor()
}

// Close tears the window down.
func (w *Window) Close() {
	rl.CloseWindow()
}

// UpdateCamera replaces the camera used for subsequent frames.
func (w *Window) UpdateCamera(c camera.Camera) {
	w.cam = c
}

// Resize records the new client-area size. The surface itself follows
// the window automatically.
func (w *Window) Resize(width, height int) {
	w.width = width
	w.height = height
}

// UpdateBackground shifts the clear color with the cursor position, a
// purely cosmetic effect.
func (w *Window) UpdateBackground(x, y int) {
	w.clear = rl.NewColor(uint8(18+x%64), uint8(18+y%64), 24, 255)
}

// Render pumps platform events into the queues and draws one frame.
func (w *Window) Render() error {
	w.pumpEvents()

	rl.BeginDrawing()
	rl.ClearBackground(w.clear)

	rl.BeginMode3D(rl.Camera3D{
		Position:   vec3(w.cam.Eye[0], w.cam.Eye[1], w.cam.Eye[2]),
		Target:     vec3(w.cam.Eye[0]+w.cam.Direction[0], w.cam.Eye[1]+w.cam.Direction[1], w.cam.Eye[2]+w.cam.Direction[2]),
		Up:         vec3(w.cam.Up[0], w.cam.Up[1], w.cam.Up[2]),
		Fovy:       w.cam.FOVy,
		Projection: rl.CameraPerspective,
	})
	for _, model := range w.entities {
		for _, inst := range model.Instances {
			pos := vec3(inst.Position[0], inst.Position[1], inst.Position[2])
			rl.DrawCube(pos, inst.Scale, inst.Scale, inst.Scale, shaderColor(inst.Shader))
			rl.DrawCubeWires(pos, inst.Scale, inst.Scale, inst.Scale, rl.Black)
		}
	}
	rl.EndMode3D()
	rl.EndDrawing()
	return nil
}

// keyMap is the raw-key-to-abstract-field mapping; arrows match the
// original bindings, WASD is a convenience alias.
var keyMap = map[int32]event.Key{
	rl.KeyUp:    event.KeyForward,
	rl.KeyW:     event.KeyForward,
	rl.KeyDown:  event.KeyBackward,
	rl.KeyS:     event.KeyBackward,
	rl.KeyLeft:  event.KeyLeft,
	rl.KeyA:     event.KeyLeft,
	rl.KeyRight: event.KeyRight,
	rl.KeyD:     event.KeyRight,
	rl.KeySpace: event.KeyJump,
}

// pumpEvents polls raylib once per frame and feeds both queues. The
// render goroutine doubles as the single external producer.
func (w *Window) pumpEvents() {
	if rl.WindowShouldClose() {
		w.closeOnce.Do(w.onClose)
		return
	}

	if rl.IsWindowResized() {
		width, height := rl.GetScreenWidth(), rl.GetScreenHeight()
		w.width, w.height = width, height
		resize := event.Resize{Width: width, Height: height}
		w.renderQueue.Push(resize)
		w.simQueue.Push(resize)
	}

	for raw, key := range keyMap {
		if rl.IsKeyPressed(raw) {
			w.simQueue.Push(event.KeyDown{Key: key})
		} else if rl.IsKeyPressedRepeat(raw) {
			w.simQueue.Push(event.KeyDown{Key: key, Repeat: true})
		}
		if rl.IsKeyReleased(raw) {
			w.simQueue.Push(event.KeyUp{Key: key})
		}
	}

	pos := rl.GetMousePosition()
	move := event.MouseMove{X: int(pos.X), Y: int(pos.Y)}
	w.renderQueue.Push(move)
	w.simQueue.Push(move)
	// Recenter so the next sample is a delta against the anchor.
	rl.SetMousePosition(w.width/2, w.height/2)
}

func shaderColor(s sim.Shader) rl.Color {
	switch s {
	case sim.ShaderNonMaterial:
		return rl.White
	case sim.ShaderPulse:
		return rl.Orange
	case sim.ShaderRipple:
		return rl.SkyBlue
	case sim.ShaderColorTween:
		return rl.Purple
	case sim.ShaderSimpleTransparency:
		return rl.NewColor(200, 200, 255, 120)
	case sim.ShaderAerogel:
		return rl.NewColor(160, 220, 220, 90)
	default:
		return rl.Beige
	}
}

func vec3(x, y, z float32) rl.Vector3 {
	return rl.NewVector3(x, y, z)
}
