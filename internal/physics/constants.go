package physics

const (
	// Gravity is the vertical acceleration applied every tick, in
	// world units per second squared.
	Gravity = -9.0

	// PlayerForce scales the horizontal movement forces.
	PlayerForce = 6.0

	// MaxPlayerSpeed caps the player's speed after integration.
	MaxPlayerSpeed = 10.0

	// JumpImpulse is the vertical velocity added on a jump.
	JumpImpulse = 5.0

	// FloorY is the ground plane; bodies below it are clamped back.
	FloorY = -5.0

	// JumpThresholdY is the height at or below which a jump request is
	// honored. Slightly above FloorY so a freshly clamped body counts
	// as grounded.
	JumpThresholdY = -4.999
)
