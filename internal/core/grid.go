package core

// Grid stores a 2D grid of float64 cell values in row-major order. Cell (x, y)
// lives at y*W + x.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []float64 { return g.data }

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Out-of-range coordinates read as zero.
func (g *Grid) At(x, y int) float64 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.data[y*g.W+x]
}

// Set writes v at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, v float64) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() { g.Fill(0) }
