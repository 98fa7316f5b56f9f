// Package camera holds the player camera pose and projection. The
// camera is owned by the simulation goroutine; the render side only
// ever sees copies published inside snapshots.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera is a value type: copying it is the supported way to hand it
// across goroutines. Direction is not guaranteed normalized between
// mutations; the mouse-look update renormalizes it after every change.
type Camera struct {
	Eye       mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3

	Aspect float32
	FOVy   float32 // vertical field of view, degrees
	Near   float32
	Far    float32
}

// New returns a camera looking along direction from eye.
func New(eye, direction, up mgl32.Vec3, aspect, fovy, near, far float32) Camera {
	return Camera{
		Eye:       eye,
		Direction: direction,
		Up:        up,
		Aspect:    aspect,
		FOVy:      fovy,
		Near:      near,
		Far:       far,
	}
}

// SetAspect updates the projection aspect ratio (width over height).
func (c *Camera) SetAspect(aspect float32) {
	c.Aspect = aspect
}

// ViewProjection builds the combined matrix the backend uploads per
// frame: depth remap for a 0..1 clip range, then perspective, then a
// look-to view from the eye along Direction.
func (c Camera) ViewProjection() mgl32.Mat4 {
	view := mgl32.LookAtV(c.Eye, c.Eye.Add(c.Direction), c.Up)
	proj := mgl32.Perspective(mgl32.DegToRad(c.FOVy), c.Aspect, c.Near, c.Far)
	return depthRemap.Mul4(proj).Mul4(view)
}

// depthRemap compresses the GL-style -1..1 clip-space depth into the
// 0..1 range the backend renders with. Column-major.
var depthRemap = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0.5,
	0, 0, 0, 1,
}
