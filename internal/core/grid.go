package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidSize reports non-positive grid dimensions.
var ErrInvalidSize = errors.New("core: grid dimensions must be positive")

// Grid is a double-buffered 2D grid of byte-sized cell values in row-major
// order. The current buffer holds the live generation; the next buffer is
// scratch space that a stepper fills before calling Swap.
type Grid struct {
	W, H int

	cur []uint8
	nxt []uint8
	n   uint64
}

// NewGrid allocates a grid with both buffers zero-filled.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] got %dx%d", w, h)
	}
	total := w * h
	return &Grid{W: w, H: h, cur: make([]uint8, total), nxt: make([]uint8, total)}, nil
}

// Cur exposes the current generation. Callers may read and, where a rule
// explicitly allows it, write cells in place.
func (g *Grid) Cur() []uint8 { return g.cur }

// Next exposes the scratch buffer for the generation being computed.
func (g *Grid) Next() []uint8 { return g.nxt }

// Len returns the number of cells.
func (g *Grid) Len() int { return g.W * g.H }

// Tick returns how many times Swap has completed since the last Seed.
func (g *Grid) Tick() uint64 { return g.n }

// Index returns the linear slice index for coordinates (x, y). No bounds
// checking is performed.
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Seed fills the current buffer: each cell takes value when a draw from src
// falls below threshold, else zero. Draws happen once per cell in row-major
// order. The next buffer is cleared and the tick counter restarts.
func (g *Grid) Seed(src Source, threshold float64, value uint8) {
	for i := range g.cur {
		g.cur[i] = 0
		if src.Float64() < threshold {
			g.cur[i] = value
		}
	}
	clear(g.nxt)
	g.n = 0
}

// Swap exchanges the buffer identities and advances the tick counter. It must
// be called exactly once per step, after every cell of Next has been written.
func (g *Grid) Swap() {
	if len(g.cur) != len(g.nxt) {
		panic(fmt.Sprintf("core: grid buffers diverged (cur=%d next=%d)", len(g.cur), len(g.nxt)))
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.n++
}

// Clear fills both buffers with zeros.
func (g *Grid) Clear() {
	clear(g.cur)
	clear(g.nxt)
}
