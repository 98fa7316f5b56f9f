//go:build !debugchecks

package rotor

import "github.com/go-gl/mathgl/mgl32"

func debugAssertUnit(mgl32.Vec3) {}
