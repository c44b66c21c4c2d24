package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Params is the per-frame camera/scene input. The host fills it once per
// frame and every invocation reads the same copy.
type Params struct {
	Resolution     [2]int
	CameraDir      mgl32.Vec3
	PlaneU         mgl32.Vec3 // pre-scaled by aspect ratio
	PlaneV         mgl32.Vec3
	Position       mgl32.Vec3
	Rotation       mgl32.Vec3 // radians for the yz, xz and xy planes
	RenderDistance int
}

// Ray origin and direction. Dir is not normalized.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

var (
	// FixedCameraDir is the forward vector of both paths (focal length 0.8).
	FixedCameraDir = mgl32.Vec3{0, 0, 0.8}
	// FixedOrigin is where the analytic path's camera sits, inside the
	// enclosing sphere and in front of the carved box.
	FixedOrigin = mgl32.Vec3{0, 0, -60}
)

const FixedMaxSteps = 640

// DefaultBasis returns the screen plane vectors; V is scaled by h/w.
func DefaultBasis(res [2]int) (u, v mgl32.Vec3) {
	aspect := float32(1)
	if res[0] > 0 {
		aspect = float32(res[1]) / float32(res[0])
	}
	return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}.Mul(aspect)
}

// FixedParams describes the analytic path's camera for a resolution.
func FixedParams(res [2]int) Params {
	u, v := DefaultBasis(res)
	return Params{
		Resolution:     res,
		CameraDir:      FixedCameraDir,
		PlaneU:         u,
		PlaneV:         v,
		Position:       FixedOrigin,
		RenderDistance: FixedMaxSteps,
	}
}

// ScreenPos maps an invocation index to [-1,1]^2. The index is used as is,
// without a half-pixel offset.
func ScreenPos(x, y int, res [2]int) mgl32.Vec2 {
	w, h := float32(res[0]), float32(res[1])
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return mgl32.Vec2{float32(x)/w*2 - 1, float32(y)/h*2 - 1}
}

// Ray builds the unrotated ray through a screen position.
func (p Params) Ray(screen mgl32.Vec2) Ray {
	dir := p.CameraDir.Add(p.PlaneU.Mul(screen.X())).Add(p.PlaneV.Mul(screen.Y()))
	return Ray{Origin: p.Position, Dir: dir}
}

// FreeRay builds the ray and then turns origin and direction by Rotation.
func (p Params) FreeRay(screen mgl32.Vec2) Ray {
	r := p.Ray(screen)
	r.Origin = RotatePlanes(r.Origin, p.Rotation)
	r.Dir = RotatePlanes(r.Dir, p.Rotation)
	return r
}
