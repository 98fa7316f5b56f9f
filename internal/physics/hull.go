package physics

import "github.com/go-gl/mathgl/mgl32"

// Hull is a placeholder collision shape: body-local vertices with no
// indices and no broad or narrow phase attached to them yet.
type Hull struct {
	Vertices []mgl32.Vec3
}

// NewHull keeps the vertices and discards the indices; nothing reads
// them until a real collision pass exists.
func NewHull(vertices []mgl32.Vec3, _ []uint32) Hull {
	return Hull{Vertices: vertices}
}

// Bounds returns the axis-aligned extent of the hull vertices. An
// empty hull reports a degenerate box at the origin.
func (h Hull) Bounds() (min, max mgl32.Vec3) {
	if len(h.Vertices) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	min, max = h.Vertices[0], h.Vertices[0]
	for _, v := range h.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max
}
