package volume

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	CavityRadius = 35
	BoxHalf      = 25
	RoomRadius   = 100
)

// SdSphere is the signed distance to a sphere of radius r at the origin.
func SdSphere(p mgl32.Vec3, r float32) float32 {
	return p.Len() - r
}

// SdBox is the signed distance to an axis-aligned box with half extents h.
func SdBox(p, h mgl32.Vec3) float32 {
	d := mgl32.Vec3{
		math32.Abs(p[0]) - h[0],
		math32.Abs(p[1]) - h[1],
		math32.Abs(p[2]) - h[2],
	}
	inside := math32.Min(math32.Max(d[0], math32.Max(d[1], d[2])), 0)
	outside := mgl32.Vec3{
		math32.Max(d[0], 0),
		math32.Max(d[1], 0),
		math32.Max(d[2], 0),
	}.Len()
	return inside + outside
}

// Field is the analytic scene: a box with a spherical cavity carved out of
// it, unioned with everything beyond a large enclosing sphere. It has no
// storage and accepts any coordinate.
type Field struct{}

// Distance evaluates min(max(-sphere(p,35), box(p,25)), -sphere(p,100)).
func (Field) Distance(p mgl32.Vec3) float32 {
	carved := math32.Max(-SdSphere(p, CavityRadius), SdBox(p, mgl32.Vec3{BoxHalf, BoxHalf, BoxHalf}))
	return math32.Min(carved, -SdSphere(p, RoomRadius))
}

func (f Field) Occupied(p mgl32.Vec3) bool {
	return f.Distance(p) < 0
}

// VoxelAt satisfies trace.Source. A cell is sampled at its centre.
func (f Field) VoxelAt(c [3]int) uint8 {
	p := mgl32.Vec3{float32(c[0]) + 0.5, float32(c[1]) + 0.5, float32(c[2]) + 0.5}
	if f.Occupied(p) {
		return 1
	}
	return 0
}
