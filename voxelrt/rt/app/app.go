// Package app drives frames: it picks a pass for the configured scene,
// fans the per-pixel kernel out over tiles and keeps the camera state
// between frames.
package app

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/rayvox"
	"github.com/gekko3d/rayvox/voxelrt/rt/core"
	"github.com/gekko3d/rayvox/voxelrt/rt/trace"
	"github.com/gekko3d/rayvox/voxelrt/rt/volume"
)

type App struct {
	Config     rayvox.Config
	Logger     rayvox.Logger
	Renderer   *Renderer
	Controller *Controller
	Clock      *FrameClock
	Pass       Pass
	Grid       *volume.Grid // nil for the analytic scene

	Image     *image.RGBA
	LastFrame Frame
	DebugMode bool
}

// BuildWorld allocates and fills the voxel grid described by cfg.
func BuildWorld(cfg rayvox.WorldConfig) (*volume.Grid, int, error) {
	g := volume.NewCubeGrid(cfg.Size)
	switch cfg.Kind {
	case rayvox.WorldRandom:
		return g, volume.GenerateRandom(g, cfg.Seed, cfg.Extent, cfg.OneIn), nil
	case rayvox.WorldShapes:
		volume.GenerateShapes(g)
		return g, g.Count(), nil
	case rayvox.WorldVox:
		vf, err := volume.LoadVox(cfg.Path)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load world: %w", err)
		}
		// models sit one cell above the invisible first slice, centred in x and z
		n := 0
		for _, m := range vf.Models {
			off := [3]int{(cfg.Size - int(m.Size[0])) / 2, 1, (cfg.Size - int(m.Size[1])) / 2}
			n += m.Stamp(g, off)
		}
		return g, n, nil
	}
	return nil, 0, fmt.Errorf("%w: unknown world kind %q", rayvox.ErrInvalidConfig, cfg.Kind)
}

func hitMode(s string) trace.Mode {
	if s == rayvox.HitModeStop {
		return trace.StopOnHit
	}
	return trace.HoldOnHit
}

func vec3(a [3]float32) mgl32.Vec3 { return mgl32.Vec3(a) }

func NewApp(cfg rayvox.Config, logger rayvox.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = rayvox.OrNop(logger)

	a := &App{
		Config:    cfg,
		Logger:    logger,
		Renderer:  NewRenderer(cfg.Workers, cfg.TileSize, logger),
		Clock:     NewFrameClock(time.Now()),
		Image:     image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		DebugMode: cfg.Debug,
		Controller: NewController(
			vec3(cfg.Camera.Position),
			vec3(cfg.Camera.Rotation),
			vec3(cfg.Camera.Direction),
			cfg.Camera.RenderDistance,
		),
	}

	switch cfg.Scene {
	case rayvox.SceneAnalytic:
		a.Pass = AnalyticPass{Mode: hitMode(cfg.Analytic.HitMode), MaxSteps: cfg.Analytic.MaxSteps}
		logger.Infof("analytic scene, %s on hit, %d steps", hitMode(cfg.Analytic.HitMode), cfg.Analytic.MaxSteps)
	default:
		start := time.Now()
		g, n, err := BuildWorld(cfg.World)
		if err != nil {
			return nil, err
		}
		a.Grid = g
		a.Pass = BufferPass{Grid: g}
		logger.Infof("%s world %d^3: %d voxels in %s", cfg.World.Kind, cfg.World.Size, n, time.Since(start))
	}
	return a, nil
}

func (a *App) Resolution() [2]int {
	return [2]int{a.Config.Width, a.Config.Height}
}

// Params returns the camera for the next frame. The analytic scene always
// uses the fixed camera.
func (a *App) Params() core.Params {
	if _, ok := a.Pass.(AnalyticPass); ok {
		return core.FixedParams(a.Resolution())
	}
	return a.Controller.Params(a.Resolution())
}

// Update applies input gathered since the last frame. dt is in seconds.
func (a *App) Update(in InputState, dt float32) {
	a.Controller.Apply(in, dt)
}

// Resize reallocates the target image; the next frame uses the new size.
func (a *App) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == a.Config.Width && h == a.Config.Height) {
		return
	}
	a.Config.Width, a.Config.Height = w, h
	a.Image = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (a *App) Render(ctx context.Context) (Frame, error) {
	f, err := a.Renderer.Render(ctx, a.Pass, a.Params(), a.Image)
	if err != nil {
		return f, err
	}
	a.LastFrame = f
	if a.DebugMode {
		a.Logger.Debugf("%s", a.Renderer.Profiler.StatsString())
	}
	return f, nil
}

// Overlay returns the lines drawn over the frame in debug mode.
func (a *App) Overlay() []string {
	p := a.Controller.Position
	r := a.Controller.Rotation
	return []string{
		a.Clock.Title(),
		fmt.Sprintf("%s hits %d misses %d", a.LastFrame.Pass, a.LastFrame.Hits, a.LastFrame.Misses),
		fmt.Sprintf("pos %.1f %.1f %.1f", p[0], p[1], p[2]),
		fmt.Sprintf("rot %.2f %.2f %.2f", r[0], r[1], r[2]),
		fmt.Sprintf("speed %.1f", a.Controller.MoveSpeed),
	}
}
