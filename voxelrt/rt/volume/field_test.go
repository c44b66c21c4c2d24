package volume

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSdPrimitives(t *testing.T) {
	assert.InDelta(t, 4.0, SdSphere(mgl32.Vec3{3, 4, 0}, 1), 1e-5)
	assert.InDelta(t, -1.0, SdSphere(mgl32.Vec3{0, 0, 0}, 1), 1e-5)

	h := mgl32.Vec3{25, 25, 25}
	assert.InDelta(t, 5.0, SdBox(mgl32.Vec3{30, 0, 0}, h), 1e-5)
	assert.InDelta(t, -15.0, SdBox(mgl32.Vec3{10, 0, 0}, h), 1e-5)
	// corner region: distance to the corner point
	assert.InDelta(t, 5.0, SdBox(mgl32.Vec3{28, 29, 0}, h), 1e-5)
}

func TestFieldSamples(t *testing.T) {
	f := Field{}

	// 10 along x sits in the spherical cavity: max(35-10, -15) = 25, min(25, 90) = 25.
	assert.InDelta(t, 25.0, f.Distance(mgl32.Vec3{10, 0, 0}), 1e-4)
	assert.False(t, f.Occupied(mgl32.Vec3{10, 0, 0}))

	// Inside the box near its corner, outside the cavity.
	assert.InDelta(t, -1.0, f.Distance(mgl32.Vec3{24, 24, 24}), 1e-4)
	assert.True(t, f.Occupied(mgl32.Vec3{24, 24, 24}))

	// Between the box and the enclosing sphere.
	assert.False(t, f.Occupied(mgl32.Vec3{60, 0, 0}))

	// Beyond the enclosing sphere everything is solid.
	assert.InDelta(t, -100.0, f.Distance(mgl32.Vec3{200, 0, 0}), 1e-4)
	assert.True(t, f.Occupied(mgl32.Vec3{200, 0, 0}))
	assert.True(t, f.Occupied(mgl32.Vec3{1e6, -1e6, 1e6}))

	assert.False(t, f.Occupied(mgl32.Vec3{0, 0, 0}))
}

func TestFieldVoxelAtSamplesCellCentre(t *testing.T) {
	f := Field{}
	assert.Equal(t, uint8(1), f.VoxelAt([3]int{24, 24, 24}))
	assert.Equal(t, uint8(0), f.VoxelAt([3]int{0, 0, 0}))
	assert.Equal(t, uint8(0), f.VoxelAt([3]int{0, 0, -60}))
	assert.Equal(t, uint8(1), f.VoxelAt([3]int{0, 0, 150}))
}
