package volume

const DefaultSize = 256

// Voxel is a cell tag: 0 is empty, 1-9 are solid types.
type Voxel uint8

const (
	Empty    Voxel = 0
	MaxVoxel Voxel = 9
)

// Grid is a dense, x-major voxel buffer. It is written by the host before a
// frame and only read while rays are being traced.
type Grid struct {
	dims [3]int
	data []Voxel
}

func NewGrid(dx, dy, dz int) *Grid {
	if dx < 0 {
		dx = 0
	}
	if dy < 0 {
		dy = 0
	}
	if dz < 0 {
		dz = 0
	}
	return &Grid{
		dims: [3]int{dx, dy, dz},
		data: make([]Voxel, dx*dy*dz),
	}
}

func NewCubeGrid(size int) *Grid {
	return NewGrid(size, size, size)
}

func (g *Grid) Dims() [3]int {
	return g.dims
}

func (g *Grid) index(x, y, z int) int {
	return (x*g.dims[1]+y)*g.dims[2] + z
}

func (g *Grid) inBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < g.dims[0] && y < g.dims[1] && z < g.dims[2]
}

// Set stores v at (x,y,z). Writes outside the buffer are dropped.
func (g *Grid) Set(x, y, z int, v Voxel) {
	if !g.inBounds(x, y, z) {
		return
	}
	g.data[g.index(x, y, z)] = v
}

// Get reads the raw buffer. Unlike Lookup, cell 0 on each axis is addressable.
func (g *Grid) Get(x, y, z int) Voxel {
	if !g.inBounds(x, y, z) {
		return Empty
	}
	return g.data[g.index(x, y, z)]
}

// Lookup is the traversal-side accessor. Any component <= 0 or >= the axis
// size reads as empty, so the first slice of every axis is never visible.
func (g *Grid) Lookup(c [3]int) Voxel {
	for i := 0; i < 3; i++ {
		if c[i] <= 0 || c[i] >= g.dims[i] {
			return Empty
		}
	}
	return g.data[g.index(c[0], c[1], c[2])]
}

// VoxelAt satisfies trace.Source.
func (g *Grid) VoxelAt(c [3]int) uint8 {
	return uint8(g.Lookup(c))
}

func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Empty
	}
}

// Count returns the number of non-empty cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != Empty {
			n++
		}
	}
	return n
}
