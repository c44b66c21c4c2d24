package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/rayvox/voxelrt/rt/core"
	"github.com/gekko3d/rayvox/voxelrt/rt/trace"
	"github.com/gekko3d/rayvox/voxelrt/rt/volume"
)

// Pass is one per-pixel kernel. Shade must be safe to call from many
// goroutines at once; all mutable traversal state lives on the stack.
type Pass interface {
	Name() string
	Shade(params core.Params, x, y int) (mgl32.Vec4, trace.Result)
}

// AnalyticPass marches the implicit field from the fixed camera. Rotation
// and position in params are ignored.
type AnalyticPass struct {
	Field    volume.Field
	Mode     trace.Mode
	MaxSteps int // 0 uses params.RenderDistance
}

func (p AnalyticPass) Name() string { return "analytic" }

func (p AnalyticPass) Shade(params core.Params, x, y int) (mgl32.Vec4, trace.Result) {
	steps := p.MaxSteps
	if steps == 0 {
		steps = params.RenderDistance
	}
	ray := params.Ray(core.ScreenPos(x, y, params.Resolution))
	ray.Origin = core.FixedOrigin
	res := trace.March(p.Field, ray.Origin, ray.Dir, trace.Options{MaxSteps: steps, Mode: p.Mode})
	return core.ShadeField(res), res
}

// BufferPass marches the voxel grid from the free camera.
type BufferPass struct {
	Grid *volume.Grid
}

func (p BufferPass) Name() string { return "buffer" }

func (p BufferPass) Shade(params core.Params, x, y int) (mgl32.Vec4, trace.Result) {
	ray := params.FreeRay(core.ScreenPos(x, y, params.Resolution))
	res := trace.March(p.Grid, ray.Origin, ray.Dir, trace.Options{
		MaxSteps: params.RenderDistance,
		Mode:     trace.StopOnHit,
	})
	return core.ShadeVoxel(res), res
}
