// Package rotor implements 3D rotations as rotors, the even-graded
// elements of 3D geometric algebra. A rotor carries the same
// information as a unit quaternion but stores directly as four packed
// floats in the layout the rendering backend expects per instance, and
// applying it needs only multiplications and additions.
package rotor

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Rotor represents an orientation. The zero value is not a valid
// rotation; use Identity or one of the constructors. Only unit-norm
// rotors represent pure rotations, and repeated composition is never
// renormalized here, so long chains of FromAxisAngle products drift.
type Rotor struct {
	S  float32
	XY float32
	XZ float32
	YZ float32
}

// New builds a rotor from raw components.
func New(s, xy, xz, yz float32) Rotor {
	return Rotor{S: s, XY: xy, XZ: xz, YZ: yz}
}

// FromAxisAngle returns the rotor rotating by angle (radians) about
// axis. The axis must already be unit length; this is not checked in
// release builds.
func FromAxisAngle(axis mgl32.Vec3, angle float32) Rotor {
	debugAssertUnit(axis)
	return FromQuat(mgl32.QuatRotate(angle, axis))
}

// FromQuat converts a quaternion using the fixed sign convention
// shared with the instance buffer layout.
func FromQuat(q mgl32.Quat) Rotor {
	return Rotor{S: q.W, XY: -q.V.Z(), XZ: q.V.Y(), YZ: -q.V.X()}
}

// Identity returns the no-op rotor.
func Identity() Rotor {
	return Rotor{S: 1}
}

// Inverse returns the reverse rotation. For a unit rotor this is the
// reverse (bivector parts negated, scalar unchanged).
func (r Rotor) Inverse() Rotor {
	return Rotor{S: r.S, XY: -r.XY, XZ: -r.XZ, YZ: -r.YZ}
}

// RotateVector applies the sandwich product R v R~ to v.
func (r Rotor) RotateVector(v mgl32.Vec3) mgl32.Vec3 {
	// S = Rv, a vector plus a trivector part.
	sx := r.S*v.X() + r.XY*v.Y() + r.XZ*v.Z()
	sy := -r.XY*v.X() + r.S*v.Y() + r.YZ*v.Z()
	sz := -r.XZ*v.X() - r.YZ*v.Y() + r.S*v.Z()
	sxyz := r.YZ*v.X() - r.XZ*v.Y() + r.XY*v.Z()

	// S R~ = R v R~, the trivector part cancels.
	return mgl32.Vec3{
		sx*r.S + sy*r.XY + sz*r.XZ + sxyz*r.YZ,
		sy*r.S - sx*r.XY - sxyz*r.XZ + sz*r.YZ,
		sz*r.S + sxyz*r.XY - sx*r.XZ - sy*r.YZ,
	}
}

// Array returns the packed per-instance layout.
func (r Rotor) Array() [4]float32 {
	return [4]float32{r.S, r.XY, r.XZ, r.YZ}
}
