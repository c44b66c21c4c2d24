package app

import (
	"context"
	"image"
	"image/color"
	"sync/atomic"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/rayvox/voxelrt/rt/core"
	"github.com/gekko3d/rayvox/voxelrt/rt/trace"
	"github.com/gekko3d/rayvox/voxelrt/rt/volume"
)

var background = color.RGBA{26, 26, 26, 255}

func freeParams(w, h int, pos mgl32.Vec3, dist int) core.Params {
	c := NewController(pos, mgl32.Vec3{}, core.FixedCameraDir, dist)
	return c.Params([2]int{w, h})
}

func newImage(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestRenderEmptyBuffer(t *testing.T) {
	g := volume.NewCubeGrid(16)
	params := freeParams(40, 30, mgl32.Vec3{8.5, 8.5, 8.5}, 64)
	img := newImage(40, 30)

	f, err := NewRenderer(4, 16, nil).Render(context.Background(), BufferPass{Grid: g}, params, img)
	require.NoError(t, err)

	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			require.Equal(t, background, img.RGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
	assert.Equal(t, int64(1200), f.Misses)
	assert.Zero(t, f.Hits)
	assert.Equal(t, "buffer", f.Pass)
	assert.Equal(t, f.Pixels(), f.Hits+f.Misses)
}

func TestBufferPassEmptyShade(t *testing.T) {
	params := freeParams(8, 8, mgl32.Vec3{4, 4, 4}, 64)
	c, res := BufferPass{Grid: volume.NewCubeGrid(8)}.Shade(params, 3, 5)
	assert.Equal(t, mgl32.Vec4{0.1, 0.1, 0.1, 1}, c)
	assert.True(t, res.Miss)
	assert.Equal(t, trace.Mask{}, res.Mask)
	assert.Equal(t, 65, res.Iterations)
}

func TestBufferPassSameCellHit(t *testing.T) {
	g := volume.NewCubeGrid(8)
	g.Set(4, 4, 4, 2)
	params := freeParams(8, 8, mgl32.Vec3{4.5, 4.5, 4.5}, 64)
	c, res := BufferPass{Grid: g}.Shade(params, 0, 0)
	require.True(t, res.Hit())
	assert.Equal(t, 1, res.Iterations)
	assert.InDelta(t, 0.1, c[0], 1e-6)
	assert.InDelta(t, 0.35, c[1], 1e-6)
	assert.InDelta(t, 0.1, c[2], 1e-6)
}

func TestRenderDeterministicAcrossWorkers(t *testing.T) {
	g := volume.NewCubeGrid(32)
	volume.GenerateRandom(g, 42, 32, 6)
	params := freeParams(48, 36, mgl32.Vec3{16, 16, 1}, 48)
	params.Rotation = mgl32.Vec3{0.1, -0.2, 0.05}

	var ref Frame
	var refPix []byte
	for i, cfg := range []struct{ workers, tile int }{{1, 16}, {3, 16}, {8, 7}, {2, 64}} {
		img := newImage(48, 36)
		f, err := NewRenderer(cfg.workers, cfg.tile, nil).Render(context.Background(), BufferPass{Grid: g}, params, img)
		require.NoError(t, err)
		if i == 0 {
			ref, refPix = f, img.Pix
			continue
		}
		assert.Equal(t, ref.Digest, f.Digest, "workers=%d tile=%d", cfg.workers, cfg.tile)
		assert.Equal(t, refPix, img.Pix)
		assert.Equal(t, ref.Hits, f.Hits)
		assert.NotEqual(t, ref.ID, f.ID)
	}
	assert.Positive(t, ref.Hits)
}

type countingPass struct {
	calls atomic.Int64
}

func (p *countingPass) Name() string { return "count" }

func (p *countingPass) Shade(core.Params, int, int) (mgl32.Vec4, trace.Result) {
	p.calls.Add(1)
	return mgl32.Vec4{1, 1, 1, 1}, trace.Result{Voxel: 1}
}

func TestRenderCoversEveryPixel(t *testing.T) {
	p := &countingPass{}
	img := newImage(37, 23)
	f, err := NewRenderer(5, 16, nil).Render(context.Background(), p, freeParams(37, 23, mgl32.Vec3{}, 1), img)
	require.NoError(t, err)
	assert.Equal(t, int64(37*23), p.calls.Load())
	assert.Equal(t, int64(37*23), f.Hits)
	for i := 0; i < len(img.Pix); i++ {
		require.Equal(t, uint8(255), img.Pix[i])
	}
}

func TestRenderRejectsMismatchedImage(t *testing.T) {
	_, err := NewRenderer(1, 16, nil).Render(context.Background(), &countingPass{}, freeParams(10, 10, mgl32.Vec3{}, 1), newImage(10, 11))
	assert.ErrorContains(t, err, "image is 10x11, want 10x10")
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &countingPass{}
	_, err := NewRenderer(2, 16, nil).Render(ctx, p, freeParams(64, 64, mgl32.Vec3{}, 1), newImage(64, 64))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, p.calls.Load())
}

func TestAnalyticPassStop(t *testing.T) {
	params := core.FixedParams([2]int{64, 48})
	img := newImage(64, 48)
	f, err := NewRenderer(0, 0, nil).Render(context.Background(), AnalyticPass{Mode: trace.StopOnHit}, params, img)
	require.NoError(t, err)

	// centre ray goes through the cavity and ends on the far wall, crossing z faces only
	assert.Equal(t, color.RGBA{191, 191, 191, 255}, img.RGBAAt(32, 24))
	_, res := AnalyticPass{Mode: trace.StopOnHit}.Shade(params, 32, 24)
	assert.Equal(t, [3]int{0, 0, 100}, res.Cell)
	assert.Equal(t, trace.AxisZ, res.Mask.Axis())
	assert.Positive(t, f.Hits)
	assert.Zero(t, f.Held)
}

func TestAnalyticPassHoldAlwaysMisses(t *testing.T) {
	params := core.FixedParams([2]int{32, 24})
	img := newImage(32, 24)
	f, err := NewRenderer(0, 0, nil).Render(context.Background(), AnalyticPass{Mode: trace.HoldOnHit}, params, img)
	require.NoError(t, err)

	assert.Zero(t, f.Hits)
	assert.Equal(t, f.Pixels(), f.Misses)
	assert.Positive(t, f.Held)
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			require.Equal(t, background, img.RGBAAt(x, y))
		}
	}
}

func TestAnalyticPassIgnoresCamera(t *testing.T) {
	params := core.FixedParams([2]int{16, 16})
	moved := params
	moved.Position = mgl32.Vec3{40, 40, 40}
	moved.Rotation = mgl32.Vec3{1, 2, 3}
	pass := AnalyticPass{Mode: trace.StopOnHit, MaxSteps: 640}
	for _, xy := range [][2]int{{0, 0}, {8, 8}, {15, 3}} {
		a, _ := pass.Shade(params, xy[0], xy[1])
		b, _ := pass.Shade(moved, xy[0], xy[1])
		assert.Equal(t, a, b)
	}
}

func TestTiles(t *testing.T) {
	ts := tiles(33, 17, 16)
	assert.Len(t, ts, 6)
	assert.Equal(t, tile{32, 16, 33, 17}, ts[len(ts)-1])
	assert.Empty(t, tiles(0, 10, 16))
}
