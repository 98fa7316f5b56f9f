// Package physics integrates a single rigid body with a semi-implicit
// step and a hard velocity cap. It is not a general physics engine:
// there is no collision response, only a bounding-vertex hull carried
// for a future broad phase.
package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Body is a rigid body owned by the simulation goroutine. The angular
// fields are carried for the instance transforms but the inner loop
// never integrates them.
type Body struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Accel    mgl32.Vec3
	Mass     float32

	AngularPosition mgl32.Quat
	AngularVelocity mgl32.Vec3
	AngularAccel    mgl32.Vec3

	Hull Hull
}

// NewBody returns a body at the origin with unit mass, at rest under
// gravity. Mass must stay positive; a non-positive mass is out of
// contract and not defended against.
func NewBody() *Body {
	return &Body{
		Mass:            1,
		Accel:           mgl32.Vec3{0, Gravity, 0},
		AngularPosition: mgl32.QuatIdent(),
	}
}

// ApplyForce accumulates f/mass into the body's acceleration. The
// caller resets acceleration to pure gravity at the start of each tick
// before applying that tick's forces.
func (b *Body) ApplyForce(f mgl32.Vec3) {
	b.Accel = b.Accel.Add(f.Mul(1 / b.Mass))
}

// Update advances the body by deltaT seconds and returns the realized
// position delta, which the caller uses to translate the camera eye in
// lockstep.
//
// Position normally advances by the trapezoidal estimate
// deltaT*(v + 0.5*deltaV). When maxVel >= 0 and the post-step speed
// exceeds it, velocity is rescaled to exactly maxVel and position
// instead advances by plain Euler with the clamped velocity. The
// switch of integration scheme on the clamped path is deliberate; do
// not "fix" it to stay trapezoidal. A negative maxVel disables the
// clamp.
func (b *Body) Update(deltaT, maxVel float32) mgl32.Vec3 {
	oldPos := b.Position
	deltaV := b.Accel.Mul(deltaT)
	deltaPos := b.Velocity.Add(deltaV.Mul(0.5)).Mul(deltaT)
	b.Velocity = b.Velocity.Add(deltaV)

	speed := math32.Sqrt(b.Velocity.Dot(b.Velocity))
	if maxVel >= 0 && speed > maxVel {
		b.Velocity = b.Velocity.Mul(maxVel / speed)
		b.Position = b.Position.Add(b.Velocity.Mul(deltaT))
	} else {
		b.Position = b.Position.Add(deltaPos)
	}
	return b.Position.Sub(oldPos)
}
