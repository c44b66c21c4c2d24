package volume

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func floorInt(v float32) int { return int(math32.Floor(v)) }
func ceilInt(v float32) int  { return int(math32.Ceil(v)) }

// Sphere fills a sphere in the grid
func Sphere(g *Grid, center mgl32.Vec3, radius float32, v Voxel) {
	r2 := radius * radius
	minBound := [3]int{floorInt(center.X() - radius), floorInt(center.Y() - radius), floorInt(center.Z() - radius)}
	maxBound := [3]int{ceilInt(center.X() + radius), ceilInt(center.Y() + radius), ceilInt(center.Z() + radius)}

	for x := minBound[0]; x <= maxBound[0]; x++ {
		for y := minBound[1]; y <= maxBound[1]; y++ {
			for z := minBound[2]; z <= maxBound[2]; z++ {
				dx := float32(x) - center.X() + 0.5
				dy := float32(y) - center.Y() + 0.5
				dz := float32(z) - center.Z() + 0.5
				if dx*dx+dy*dy+dz*dz <= r2 {
					g.Set(x, y, z, v)
				}
			}
		}
	}
}

// Cube fills every cell between minB and maxB inclusive.
func Cube(g *Grid, minB, maxB mgl32.Vec3, v Voxel) {
	minI := [3]int{floorInt(minB.X()), floorInt(minB.Y()), floorInt(minB.Z())}
	maxI := [3]int{floorInt(maxB.X()), floorInt(maxB.Y()), floorInt(maxB.Z())}

	for x := minI[0]; x <= maxI[0]; x++ {
		for y := minI[1]; y <= maxI[1]; y++ {
			for z := minI[2]; z <= maxI[2]; z++ {
				g.Set(x, y, z, v)
			}
		}
	}
}

// Cone fills a cone in the grid
// base is the center of the base circle, tip is the apex
func Cone(g *Grid, base, tip mgl32.Vec3, radius float32, v Voxel) {
	heightVec := tip.Sub(base)
	height := heightVec.Len()
	if height < 1e-5 {
		return
	}
	axis := heightVec.Normalize()

	maxDim := math32.Max(radius, height)
	center := base.Add(tip).Mul(0.5)
	minB := [3]int{floorInt(center.X() - maxDim), floorInt(center.Y() - maxDim), floorInt(center.Z() - maxDim)}
	maxB := [3]int{ceilInt(center.X() + maxDim), ceilInt(center.Y() + maxDim), ceilInt(center.Z() + maxDim)}

	for x := minB[0]; x <= maxB[0]; x++ {
		for y := minB[1]; y <= maxB[1]; y++ {
			for z := minB[2]; z <= maxB[2]; z++ {
				p := mgl32.Vec3{float32(x) + 0.5, float32(y) + 0.5, float32(z) + 0.5}
				rel := p.Sub(base)
				distOnAxis := rel.Dot(axis)
				if distOnAxis < 0 || distOnAxis > height {
					continue
				}

				radiusAtDist := radius * (1.0 - distOnAxis/height)
				distToAxis2 := rel.LenSqr() - distOnAxis*distOnAxis
				if distToAxis2 <= radiusAtDist*radiusAtDist {
					g.Set(x, y, z, v)
				}
			}
		}
	}
}

// Point fills a single voxel
func Point(g *Grid, x, y, z int, v Voxel) {
	g.Set(x, y, z, v)
}
