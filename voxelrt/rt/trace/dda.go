// Package trace steps rays through a uniform grid of unit cells, one cell
// boundary at a time, asking a Source whether each visited cell is solid.
package trace

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Source answers occupancy queries for the traversal. 0 means empty; any
// other value is the voxel type and counts as solid.
type Source interface {
	VoxelAt(c [3]int) uint8
}

type SourceFunc func(c [3]int) uint8

func (f SourceFunc) VoxelAt(c [3]int) uint8 { return f(c) }

type Axis int

const (
	AxisNone Axis = iota - 1
	AxisX
	AxisY
	AxisZ
)

// Mask records which axis boundary was crossed by the last step.
// At most one component is set.
type Mask [3]bool

func MaskOf(a Axis) Mask {
	var m Mask
	if a >= AxisX && a <= AxisZ {
		m[a] = true
	}
	return m
}

func (m Mask) Axis() Axis {
	for i := 0; i < 3; i++ {
		if m[i] {
			return Axis(i)
		}
	}
	return AxisNone
}

// Mode selects what happens when the ray enters a solid cell.
type Mode int

const (
	// StopOnHit ends the traversal at the first solid cell.
	StopOnHit Mode = iota
	// HoldOnHit stays on a solid cell without advancing and keeps counting
	// iterations. The step bound then always runs out, so the result is
	// always a miss; Result.Held reports that a solid cell was reached.
	HoldOnHit
)

func (m Mode) String() string {
	switch m {
	case StopOnHit:
		return "stop"
	case HoldOnHit:
		return "hold"
	}
	return "unknown"
}

type Options struct {
	MaxSteps int
	Mode     Mode
}

// State is the private per-ray cursor.
type State struct {
	Cell      [3]int
	SideDist  mgl32.Vec3
	DeltaDist mgl32.Vec3
	Step      [3]int
	Mask      Mask
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// NewState places the cursor in the cell containing origin. A zero direction
// component gives an infinite DeltaDist on that axis, which is never the
// minimum and so is never stepped.
func NewState(origin, dir mgl32.Vec3) State {
	var s State
	length := dir.Len()
	for i := 0; i < 3; i++ {
		cell := math32.Floor(origin[i])
		sg := sign(dir[i])
		s.Cell[i] = int(cell)
		s.Step[i] = int(sg)
		s.DeltaDist[i] = math32.Abs(length / dir[i])
		s.SideDist[i] = (sg*(cell-origin[i]) + sg*0.5 + 0.5) * s.DeltaDist[i]
	}
	return s
}

// NextAxis picks the axis with the smallest side distance. x is taken only
// when strictly below both others and y only when strictly below z, so z
// wins every tie and any comparison involving NaN.
func NextAxis(side mgl32.Vec3) Axis {
	if side[0] < side[1] {
		if side[0] < side[2] {
			return AxisX
		}
		return AxisZ
	}
	if side[1] < side[2] {
		return AxisY
	}
	return AxisZ
}

// Advance moves the cursor one cell along NextAxis.
func (s *State) Advance() Axis {
	a := NextAxis(s.SideDist)
	s.SideDist[a] += s.DeltaDist[a]
	s.Cell[a] += s.Step[a]
	s.Mask = MaskOf(a)
	return a
}

// Result is the terminal state of a traversal.
type Result struct {
	Voxel      uint8
	Mask       Mask
	Cell       [3]int
	Iterations int
	Miss       bool
	Held       bool
}

func (r Result) Hit() bool { return !r.Miss }

// March runs the bounded traversal. It never loops more than MaxSteps+1 times.
func March(src Source, origin, dir mgl32.Vec3, opt Options) Result {
	maxSteps := opt.MaxSteps
	if maxSteps < 0 {
		maxSteps = 0
	}
	st := NewState(origin, dir)
	var res Result

	for i := 0; i <= maxSteps; i++ {
		res.Iterations = i + 1
		if opt.Mode == HoldOnHit {
			if i == maxSteps {
				res.Miss = true
				break
			}
			if v := src.VoxelAt(st.Cell); v != 0 {
				res.Held = true
				res.Voxel = v
				continue
			}
		} else {
			if v := src.VoxelAt(st.Cell); v != 0 {
				res.Voxel = v
				break
			}
			if i == maxSteps {
				st.Mask = Mask{}
				res.Voxel = 0
				res.Miss = true
				break
			}
		}
		st.Advance()
	}

	res.Cell = st.Cell
	res.Mask = st.Mask
	return res
}
