package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rotate2D turns v by a radians: (x cos - y sin, y cos + x sin).
func Rotate2D(v mgl32.Vec2, a float32) mgl32.Vec2 {
	s, c := math32.Sincos(a)
	return mgl32.Vec2{v[0]*c - v[1]*s, v[1]*c + v[0]*s}
}

// RotatePlanes applies rot.x in the yz plane, then rot.y in xz, then rot.z
// in xy. The order is fixed; the three rotations do not commute.
func RotatePlanes(v, rot mgl32.Vec3) mgl32.Vec3 {
	yz := Rotate2D(mgl32.Vec2{v[1], v[2]}, rot[0])
	v[1], v[2] = yz[0], yz[1]

	xz := Rotate2D(mgl32.Vec2{v[0], v[2]}, rot[1])
	v[0], v[2] = xz[0], xz[1]

	xy := Rotate2D(mgl32.Vec2{v[0], v[1]}, rot[2])
	v[0], v[1] = xy[0], xy[1]
	return v
}
