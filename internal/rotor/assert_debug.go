//go:build debugchecks

package rotor

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func debugAssertUnit(axis mgl32.Vec3) {
	if math32.Abs(axis.Len()-1) >= 1e-6 {
		panic(fmt.Sprintf("rotor: axis %v is not unit length", axis))
	}
}
