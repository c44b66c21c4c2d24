package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/rayvox/voxelrt/rt/core"
)

const (
	// MoveRate is in cells per second at MoveSpeed 1.
	MoveRate = 5
	TurnStep = 0.05
)

// InputState is what the window reported since the last frame. Turn fields
// count key presses; positive TurnX is Left, positive TurnZ is Up.
type InputState struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
	TurnX, TurnZ      int
	Wheel             float32
	ToggleFullscreen  bool
	Quit              bool
}

// Controller owns the free camera.
type Controller struct {
	Position       mgl32.Vec3
	Rotation       mgl32.Vec3
	CameraDir      mgl32.Vec3
	RenderDistance int
	MoveSpeed      float32
}

func NewController(position, rotation, dir mgl32.Vec3, renderDistance int) *Controller {
	return &Controller{
		Position:       position,
		Rotation:       rotation,
		CameraDir:      dir,
		RenderDistance: renderDistance,
		MoveSpeed:      1,
	}
}

// Apply moves and turns the camera for one frame lasting dt seconds.
func (c *Controller) Apply(in InputState, dt float32) {
	c.MoveSpeed += in.Wheel

	d := MoveRate * dt * c.MoveSpeed
	if in.Forward {
		c.Position[2] += d
	}
	if in.Backward {
		c.Position[2] -= d
	}
	if in.Left {
		c.Position[0] -= d
	}
	if in.Right {
		c.Position[0] += d
	}
	if in.Up {
		c.Position[1] += d
	}
	if in.Down {
		c.Position[1] -= d
	}

	c.Rotation[0] += TurnStep * float32(in.TurnX)
	c.Rotation[2] += TurnStep * float32(in.TurnZ)
}

func (c *Controller) Params(res [2]int) core.Params {
	u, v := core.DefaultBasis(res)
	return core.Params{
		Resolution:     res,
		CameraDir:      c.CameraDir,
		PlaneU:         u,
		PlaneV:         v,
		Position:       c.Position,
		Rotation:       c.Rotation,
		RenderDistance: c.RenderDistance,
	}
}

// FrameClock measures frame time and a once-per-second average FPS.
type FrameClock struct {
	last    time.Time
	dt      time.Duration
	frames  int
	elapsed time.Duration
	fps     float64
}

func NewFrameClock(now time.Time) *FrameClock {
	return &FrameClock{last: now}
}

// Tick closes the current frame and returns its length in seconds.
func (c *FrameClock) Tick(now time.Time) float32 {
	c.dt = now.Sub(c.last)
	c.last = now
	c.frames++
	c.elapsed += c.dt
	if c.elapsed >= time.Second {
		c.fps = float64(c.frames) / c.elapsed.Seconds()
		c.frames = 0
		c.elapsed = 0
	}
	return float32(c.dt.Seconds())
}

func (c *FrameClock) DT() time.Duration { return c.dt }
func (c *FrameClock) FPS() float64      { return c.fps }

func (c *FrameClock) Title() string {
	return fmt.Sprintf("RayVox [fps: %.2f dt: %.2f]", c.fps, float64(c.dt.Microseconds())/1000.0)
}
