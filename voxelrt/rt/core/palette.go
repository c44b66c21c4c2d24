package core

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/rayvox/voxelrt/rt/trace"
)

// Tint is how a voxel type changes the running colour. Ids 1-3 add to one
// channel; ids 4-9 multiply the RGB channels.
type Tint struct {
	Add mgl32.Vec3
	Mul mgl32.Vec3
}

var identity = mgl32.Vec3{1, 1, 1}

// Tints is indexed by voxel id. Id 0 leaves the colour unchanged.
var Tints = [10]Tint{
	0: {Mul: identity},
	1: {Add: mgl32.Vec3{0.25, 0, 0}, Mul: identity},
	2: {Add: mgl32.Vec3{0, 0.25, 0}, Mul: identity},
	3: {Add: mgl32.Vec3{0, 0, 0.25}, Mul: identity},
	4: {Mul: mgl32.Vec3{0.3, 0.4, 0.5}},
	5: {Mul: mgl32.Vec3{0.5, 0.3, 0.4}},
	6: {Mul: mgl32.Vec3{0.4, 0.5, 0.3}},
	7: {Mul: mgl32.Vec3{0.9, 0.6, 0.2}},
	8: {Mul: mgl32.Vec3{0.2, 0.6, 0.9}},
	9: {Mul: mgl32.Vec3{0.6, 0.2, 0.9}},
}

var (
	BufferBase = mgl32.Vec3{0.1, 0.1, 0.1}
	// grey level per axis for the face that was crossed last
	BufferFace = mgl32.Vec3{0.25, 0.75, 0.5}
	FieldMiss  = mgl32.Vec3{0.1, 0.1, 0.1}
	FieldFace  = mgl32.Vec3{0.5, 1.0, 0.75}
)

func faceLevel(m trace.Mask, face mgl32.Vec3) (float32, bool) {
	a := m.Axis()
	if a == trace.AxisNone {
		return 0, false
	}
	return face[a], true
}

func opaque(c mgl32.Vec3) mgl32.Vec4 {
	return mgl32.Vec4{c[0], c[1], c[2], 1}
}

// ShadeVoxel colours a buffer-path result: the crossed face picks a grey
// level (base grey when none was crossed), then the voxel id tints it. A miss
// has id 0 and an empty mask and comes out as the base grey.
func ShadeVoxel(r trace.Result) mgl32.Vec4 {
	c := BufferBase
	if s, ok := faceLevel(r.Mask, BufferFace); ok {
		c = mgl32.Vec3{s, s, s}
	}
	if int(r.Voxel) < len(Tints) {
		t := Tints[r.Voxel]
		c = mgl32.Vec3{c[0] * t.Mul[0], c[1] * t.Mul[1], c[2] * t.Mul[2]}.Add(t.Add)
	}
	return opaque(c)
}

// ShadeField colours an analytic-path result. Misses are grey; hits are a
// grey level picked by the crossed face, black when no face was crossed.
func ShadeField(r trace.Result) mgl32.Vec4 {
	if r.Miss {
		return opaque(FieldMiss)
	}
	s, _ := faceLevel(r.Mask, FieldFace)
	return opaque(mgl32.Vec3{s, s, s})
}

func unorm(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math32.Round(v * 255))
}

// ToRGBA converts to 8-bit unorm with clamping, as the storage texture would.
func ToRGBA(c mgl32.Vec4) color.RGBA {
	return color.RGBA{R: unorm(c[0]), G: unorm(c[1]), B: unorm(c[2]), A: unorm(c[3])}
}
