// Package sim owns the simulation side of the engine: the aggregated
// input state, the player camera and physics body, the startup scene,
// and the fixed-tick loop that advances them and publishes snapshots.
package sim

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/ted-dokos/cube-engine/internal/camera"
	"github.com/ted-dokos/cube-engine/internal/physics"
	"github.com/ted-dokos/cube-engine/internal/rotor"
)

const (
	// TickDuration is the fixed simulation step.
	TickDuration = 10 * time.Millisecond

	// cameraPhysicsOffset is how far the eye sits above the body's
	// center of mass.
	cameraPhysicsOffset = 0.4

	// rotationMovementDeg is the look rotation per mouse count.
	rotationMovementDeg = 0.1

	// polarThreshold keeps the camera direction away from straight up
	// or down: pitch is rejected once |dir.y| would exceed
	// 1 - polarThreshold.
	polarThreshold = 0.001

	cameraEyeStartY = 5.0
)

// State is the simulation's whole world: player camera + body, the
// static instance set, and the tick counter. It is owned exclusively
// by the simulation goroutine and escapes only as Snapshot copies.
type State struct {
	Camera   camera.Camera
	Body     *physics.Body
	Entities []ModelInstances
	Tick     int64

	// MouseSensitivity scales mouse-look deltas. 1 is the stock feel.
	MouseSensitivity float32
}

// Snapshot is an immutable copy of simulation output published once
// per tick. The render side either consumes it or discards it; it is
// never mutated after publish.
type Snapshot struct {
	Tick     int64
	Camera   camera.Camera
	Entities []ModelInstances
}

// NewState builds the startup world for the given aspect ratio.
func NewState(aspect float32) *State {
	body := physics.NewBody()
	body.Hull = physics.NewHull([]mgl32.Vec3{
		{0.125, 0.125, 0.5},
		{-0.125, 0.125, 0.5},
		{0.125, -0.125, 0.5},
		{-0.125, -0.125, 0.5},
		{0.125, 0.125, -0.5},
		{-0.125, 0.125, -0.5},
		{0.125, -0.125, -0.5},
		{-0.125, -0.125, -0.5},
	}, nil)
	body.Position = mgl32.Vec3{0, cameraEyeStartY - cameraPhysicsOffset, 10}

	return &State{
		Camera: camera.New(
			mgl32.Vec3{0, cameraEyeStartY, 10},
			mgl32.Vec3{0, -1, -2},
			mgl32.Vec3{0, 1, 0},
			aspect, 45, 0.1, 100,
		),
		Body:             body,
		Entities:         buildScene(),
		MouseSensitivity: 1,
	}
}

// SetAspect propagates a window resize into the camera projection.
func (s *State) SetAspect(aspect float32) {
	s.Camera.SetAspect(aspect)
}

// Update advances the world by one fixed tick of deltaT seconds under
// the given aggregated input. The caller resets the input's one-shot
// fields afterwards.
func (s *State) Update(in *InputState, deltaT float32) {
	s.Tick++
	s.Body.Accel = mgl32.Vec3{0, physics.Gravity, 0}

	dir := s.Camera.Direction
	lateralDir := mgl32.Vec3{-dir.Z(), 0, dir.X()}.Normalize()
	s.applyAxisForce(in.Right, in.Left, lateralDir, deltaT)

	forwardDir := mgl32.Vec3{dir.X(), 0, dir.Z()}.Normalize()
	s.applyAxisForce(in.Forward, in.Backward, forwardDir, deltaT)

	if in.Jump && s.Body.Position.Y() <= physics.JumpThresholdY {
		s.Body.Velocity = s.Body.Velocity.Add(mgl32.Vec3{0, physics.JumpImpulse, 0})
	}

	deltaPos := s.Body.Update(deltaT, physics.MaxPlayerSpeed)
	s.Camera.Eye = s.Camera.Eye.Add(deltaPos)
	if s.Body.Position.Y() < physics.FloorY {
		s.Body.Position[1] = physics.FloorY
		s.Body.Velocity[1] = 0
		// The normal eye tracking above already moved the eye with the
		// pre-clamp delta, so re-snap it to the clamped body.
		s.Camera.Eye = s.Body.Position.Add(mgl32.Vec3{0, cameraPhysicsOffset, 0})
	}

	s.mouseLook(in)
}

// applyAxisForce pushes along axis when exactly one of the two keys is
// held. When neither or both are held it applies a damping force
// instead: the velocity's projection onto the axis, scaled by
// -mass/(10*deltaT). The 1/(10*deltaT) ratio is tuned, not derived;
// reproduce it exactly.
func (s *State) applyAxisForce(positive, negative bool, axis mgl32.Vec3, deltaT float32) {
	force := axis.Mul(physics.PlayerForce)
	switch {
	case positive && !negative:
		s.Body.ApplyForce(force)
	case negative && !positive:
		s.Body.ApplyForce(force.Mul(-1))
	default:
		along := s.Body.Velocity.Mul(s.Body.Mass).Dot(axis)
		s.Body.ApplyForce(axis.Mul(-along / (10 * deltaT)))
	}
}

// mouseLook applies the accumulated mouse deltas: yaw about world up,
// then pitch about the camera's local right axis. Pitch is applied
// tentatively; when it would push the direction within polarThreshold
// of a vertical pole it is discarded for this tick and yaw acts on the
// original direction instead.
func (s *State) mouseLook(in *InputState) {
	dir := s.Camera.Direction
	perCount := rotationMovementDeg * s.MouseSensitivity
	yawRot := rotor.FromAxisAngle(
		mgl32.Vec3{0, 1, 0},
		mgl32.DegToRad(-perCount*float32(in.MouseDX)),
	)
	pitchRot := rotor.FromAxisAngle(
		mgl32.Vec3{dir.Z(), 0, -dir.X()}.Normalize(),
		mgl32.DegToRad(perCount*float32(in.MouseDY)),
	)

	pitched := pitchRot.RotateVector(dir).Normalize()
	if math32.Abs(pitched.Dot(mgl32.Vec3{0, 1, 0})) > 1-polarThreshold {
		s.Camera.Direction = yawRot.RotateVector(dir).Normalize()
	} else {
		s.Camera.Direction = yawRot.RotateVector(pitched).Normalize()
	}
}

// Snapshot deep-copies the publishable state. Instances never change
// after startup, but the copy keeps the published value fully owned by
// its consumer.
func (s *State) Snapshot() Snapshot {
	entities := make([]ModelInstances, len(s.Entities))
	for i, m := range s.Entities {
		instances := make([]Instance, len(m.Instances))
		copy(instances, m.Instances)
		entities[i] = ModelInstances{ModelID: m.ModelID, Instances: instances}
	}
	return Snapshot{
		Tick:     s.Tick,
		Camera:   s.Camera,
		Entities: entities,
	}
}
