package grid

// Cell value range. Paint writes MaxValue, erase writes MinValue, and
// landmark seeding uses MaxValue so seeded cells render at full density.
const (
	MinValue = 0.0
	MaxValue = 1.0
)

// Grid stores a fixed-size 2D scalar map in row-major order. Dimensions
// are immutable after construction.
type Grid struct {
	w, h int
	data []float64
}

// New allocates a grid with the given dimensions, every cell set to fill.
func New(w, h int, fill float64) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{w: w, h: h, data: make([]float64, w*h)}
	if fill != 0 {
		for i := range g.data {
			g.data[i] = fill
		}
	}
	return g
}

// Width returns the world-space width in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the world-space height in cells.
func (g *Grid) Height() int { return g.h }

// Get reads the cell at (x, y). The second return is false when the
// coordinate lies outside the grid.
func (g *Grid) Get(x, y int) (float64, bool) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0, false
	}
	return g.data[y*g.w+x], true
}

// Set writes the cell at (x, y). Out-of-range coordinates are ignored
// so stray pointer edits near the map edge are harmless.
func (g *Grid) Set(x, y int, v float64) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.data[y*g.w+x] = v
}

// SeedLandmarks marks a few corner and near-corner cells so an otherwise
// empty map still has visible reference points to navigate by.
func (g *Grid) SeedLandmarks() {
	g.Set(0, 0, MaxValue)
	g.Set(g.w-1, g.h-1, MaxValue)
	g.Set(g.w-2, g.h-5, MaxValue)
	g.Set(g.w-10, g.h-10, MaxValue)
}
