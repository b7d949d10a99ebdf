package renderer

import "fmt"

// Grid is a dense, fixed-size two-dimensional buffer of cells stored in
// one contiguous slice, addressed row-major: index(x,y) = y*width + x.
// A grid never grows or shrinks after construction; callers that need a
// different size build a new one.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a width x height grid of empty cells.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("renderer: invalid grid size %dx%d", width, height))
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.Fill(EmptyCell())
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// index converts coordinates to a slice offset. Out-of-range
// coordinates are a caller bug, not a runtime condition.
func (g *Grid) index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("renderer: cell (%d,%d) out of range for %dx%d grid",
			x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// Set overwrites the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[g.index(x, y)] = c
}

// Fill overwrites every cell with c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// copyFrom overwrites this grid's cells with src's. The grids must be
// the same shape; Screen guarantees that by constructing both at once.
func (g *Grid) copyFrom(src *Grid) {
	copy(g.cells, src.cells)
}
