package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/ted-dokos/cube-engine/internal/rotor"
)

// Shader selects the material program an instance is drawn with. The
// values are the indices the backend's pipeline array uses.
type Shader uint32

const (
	ShaderTexture Shader = iota
	ShaderNonMaterial
	ShaderPulse
	ShaderRipple
	ShaderColorTween
	ShaderSimpleTransparency
	ShaderAerogel
)

// Instance is one renderable placement of a model. The set of
// instances is established at startup and never mutated afterwards;
// only the camera moves relative to them.
type Instance struct {
	Position mgl32.Vec3
	Scale    float32
	Rotation rotor.Rotor
	Shader   Shader
}

// InstanceRaw is the packed per-instance layout the backend uploads.
type InstanceRaw struct {
	Pos    [3]float32
	Scale  float32
	Rot    [4]float32
	Shader uint32
}

// Raw packs the instance for the backend's instance buffer.
func (i Instance) Raw() InstanceRaw {
	return InstanceRaw{
		Pos:    i.Position,
		Scale:  i.Scale,
		Rot:    i.Rotation.Array(),
		Shader: uint32(i.Shader),
	}
}

// ModelInstances groups the instances drawn with one model's geometry.
type ModelInstances struct {
	ModelID   uint32
	Instances []Instance
}

const (
	instancesPerRow  = 10
	instanceSpacing  = 3.0
	instanceTiltDeg  = 45.0
	demoCubeY        = -4.5
	floorY           = -20.0
	floorScale       = 11.0
	lightMarkerScale = 0.25
)

// buildScene lays out the startup scene: a rotated cube grid, a big
// floor slab, a marker cube at the light position, and a row of
// shader-demo cubes.
func buildScene() []ModelInstances {
	displacement := mgl32.Vec3{
		instancesPerRow * 0.5,
		0,
		instancesPerRow * 0.5,
	}

	grid := make([]Instance, 0, instancesPerRow*instancesPerRow+2)
	for z := 0; z < instancesPerRow; z++ {
		for x := 0; x < instancesPerRow; x++ {
			position := mgl32.Vec3{float32(x), 0, float32(z)}.
				Sub(displacement).
				Mul(-instanceSpacing)

			rotation := rotor.Identity()
			if position.Len() > 0 {
				// An instance exactly at the origin keeps the identity
				// rotation; its position cannot serve as a rotation axis.
				rotation = rotor.FromAxisAngle(
					position.Normalize(),
					mgl32.DegToRad(instanceTiltDeg),
				)
			}
			grid = append(grid, Instance{
				Position: position,
				Scale:    1,
				Rotation: rotation,
				Shader:   ShaderTexture,
			})
		}
	}
	grid = append(grid, Instance{
		Position: mgl32.Vec3{0, floorY, 0},
		Scale:    floorScale,
		Rotation: rotor.Identity(),
		Shader:   ShaderTexture,
	})
	grid = append(grid, Instance{
		Position: mgl32.Vec3{2, 2, 2},
		Scale:    lightMarkerScale,
		Rotation: rotor.Identity(),
		Shader:   ShaderNonMaterial,
	})

	demos := []Instance{
		{Position: mgl32.Vec3{0, demoCubeY, 0}, Scale: 0.5, Rotation: rotor.Identity(), Shader: ShaderPulse},
		{Position: mgl32.Vec3{3, demoCubeY, 0}, Scale: 0.5, Rotation: rotor.Identity(), Shader: ShaderRipple},
		{Position: mgl32.Vec3{-3, demoCubeY, 0}, Scale: 0.5, Rotation: rotor.Identity(), Shader: ShaderColorTween},
		// Later draw order hides anything behind this one; transparency
		// sorting is a known backend limitation.
		{Position: mgl32.Vec3{-6, demoCubeY, 0}, Scale: 0.5, Rotation: rotor.Identity(), Shader: ShaderSimpleTransparency},
		{Position: mgl32.Vec3{3, demoCubeY, 3}, Scale: 0.75, Rotation: rotor.Identity(), Shader: ShaderAerogel},
	}

	return []ModelInstances{
		{ModelID: 0, Instances: grid},
		{ModelID: 1, Instances: demos},
		{ModelID: 2, Instances: []Instance{
			{Position: mgl32.Vec3{-3, demoCubeY, 3}, Scale: 0.5, Rotation: rotor.Identity(), Shader: ShaderPulse},
		}},
		{ModelID: 3, Instances: []Instance{
			{Position: mgl32.Vec3{-3, demoCubeY, 6}, Scale: 0.5, Rotation: rotor.Identity(), Shader: ShaderColorTween},
		}},
		{ModelID: 4, Instances: []Instance{
			{Position: mgl32.Vec3{-6, demoCubeY, -3}, Scale: 0.5, Rotation: rotor.Identity(), Shader: ShaderSimpleTransparency},
		}},
	}
}
