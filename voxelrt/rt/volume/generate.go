package volume

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// GenerateRandom scatters voxels over the cube [0,extent)^3: each cell is
// filled with probability 1/oneIn and gets a type drawn uniformly from 1-9.
// The same seed always produces the same world. Returns the filled count.
func GenerateRandom(g *Grid, seed int64, extent, oneIn int) int {
	if oneIn <= 0 {
		return 0
	}
	rng := rand.New(rand.NewSource(seed))
	filled := 0
	for x := 0; x < extent; x++ {
		for y := 0; y < extent; y++ {
			for z := 0; z < extent; z++ {
				if rng.Intn(oneIn) != 0 {
					continue
				}
				g.Set(x, y, z, Voxel(rng.Intn(int(MaxVoxel))+1))
				filled++
			}
		}
	}
	return filled
}

// GenerateShapes builds a small showcase scene out of the fill primitives,
// sized relative to the grid so it works for any extent above 16.
func GenerateShapes(g *Grid) {
	d := g.Dims()
	size := float32(min(d[0], d[1], d[2]))
	c := size / 2

	// floor slab
	Cube(g, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{size - 2, 2, size - 2}, 7)
	Sphere(g, mgl32.Vec3{c, c * 0.6, c}, size*0.15, 4)
	Cube(g, mgl32.Vec3{c * 0.3, 3, c * 0.3}, mgl32.Vec3{c * 0.5, c * 0.4, c * 0.5}, 5)
	Cone(g, mgl32.Vec3{c * 1.5, 3, c * 1.5}, mgl32.Vec3{c * 1.5, c, c * 1.5}, size*0.1, 8)

	// one marker per additive type along the x axis
	for i := 1; i <= 3; i++ {
		Point(g, int(c)+i*2, 3, int(c*0.4), Voxel(i))
	}
}
