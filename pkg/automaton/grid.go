// Package automaton defines the cell and automaton contracts and a generic
// rectangular grid that advances its cells in synchronous steps.
package automaton

import (
	"fmt"

	"meta-ca/internal/parallel"
)

// Cell is any value that can compute its successor from its neighbors. The
// neighbor slice is only valid for the duration of the call and may be
// shorter than the full neighborhood.
type Cell[C any] interface {
	LocalTransition(neighbors []*C) C
}

// Automaton is anything that can produce its next whole-grid snapshot.
type Automaton[A any] interface {
	GlobalTransition() A
}

// Grid stores cells in row-major order. A grid is never resized; each
// GlobalTransition returns a new snapshot and leaves the receiver untouched.
type Grid[C Cell[C]] struct {
	w, h   int
	cells  []C
	hood   Neighborhood
	border C
}

// New allocates a grid of zero-valued cells.
func New[C Cell[C]](w, h int, hood Neighborhood) Grid[C] {
	w, h = clampDims(w, h)
	return Grid[C]{w: w, h: h, cells: make([]C, w*h), hood: hood}
}

// FromCells builds a grid from an explicit cell slice, which is copied.
func FromCells[C Cell[C]](w, h int, cells []C, hood Neighborhood) (Grid[C], error) {
	if w < 0 || h < 0 || len(cells) != w*h {
		return Grid[C]{}, fmt.Errorf("%w: %d cells for %dx%d", ErrCellCount, len(cells), w, h)
	}
	g := Grid[C]{w: w, h: h, cells: make([]C, len(cells)), hood: hood}
	copy(g.cells, cells)
	return g, nil
}

// Generate builds a grid by calling fn for every coordinate.
func Generate[C Cell[C]](w, h int, hood Neighborhood, fn func(x, y int) C) Grid[C] {
	g := New[C](w, h, hood)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.cells[y*g.w+x] = fn(x, y)
		}
	}
	return g
}

func clampDims(w, h int) (int, int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// WithBorder returns a copy of g that uses c for neighbors past the edge.
// It only matters for EdgeBorder neighborhoods.
func (g Grid[C]) WithBorder(c C) Grid[C] {
	g.border = c
	return g
}

// Border returns the synthetic cell used past the edge.
func (g Grid[C]) Border() C { return g.border }

// Width returns the number of columns.
func (g Grid[C]) Width() int { return g.w }

// Height returns the number of rows.
func (g Grid[C]) Height() int { return g.h }

// Len returns the number of cells.
func (g Grid[C]) Len() int { return len(g.cells) }

// Neighborhood returns the grid's neighborhood policy.
func (g Grid[C]) Neighborhood() Neighborhood { return g.hood }

// Cells exposes the backing slice for reading. Use Set to inject values.
func (g Grid[C]) Cells() []C { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid[C]) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) lies on the grid.
func (g Grid[C]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// At returns the cell at (x, y).
func (g Grid[C]) At(x, y int) (C, error) {
	if !g.InBounds(x, y) {
		var zero C
		return zero, g.boundsErr(x, y)
	}
	return g.cells[g.Index(x, y)], nil
}

// AtIndex returns the cell at linear index i.
func (g Grid[C]) AtIndex(i int) (C, error) {
	if i < 0 || i >= len(g.cells) {
		var zero C
		return zero, fmt.Errorf("%w: index %d outside %d cells", ErrOutOfBounds, i, len(g.cells))
	}
	return g.cells[i], nil
}

// Set overwrites the cell at (x, y). It is meant for injecting stimuli
// between transitions. The cell slice is copied first, so other copies of g
// keep their snapshot; build large grids with Generate or FromCells.
func (g *Grid[C]) Set(x, y int, c C) error {
	if !g.InBounds(x, y) {
		return g.boundsErr(x, y)
	}
	return g.SetIndex(g.Index(x, y), c)
}

// SetIndex overwrites the cell at linear index i, copying the cell slice
// like Set.
func (g *Grid[C]) SetIndex(i int, c C) error {
	if i < 0 || i >= len(g.cells) {
		return fmt.Errorf("%w: index %d outside %d cells", ErrOutOfBounds, i, len(g.cells))
	}
	g.cells = append([]C(nil), g.cells...)
	g.cells[i] = c
	return nil
}

func (g Grid[C]) boundsErr(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
}

// Clone returns a grid with its own copy of the cell slice.
func (g Grid[C]) Clone() Grid[C] {
	g.cells = append([]C(nil), g.cells...)
	return g
}

// Neighbors returns the neighbors of (x, y) in neighborhood order.
func (g Grid[C]) Neighbors(x, y int) ([]*C, error) {
	if !g.InBounds(x, y) {
		return nil, g.boundsErr(x, y)
	}
	return g.appendNeighbors(make([]*C, 0, g.hood.Size()), g.Index(x, y)), nil
}

func (g *Grid[C]) appendNeighbors(dst []*C, i int) []*C {
	x, y := i%g.w, i/g.w
	for _, o := range g.hood.Offsets {
		nx, ny := x+o.DX, y+o.DY
		if nx < 0 || ny < 0 || nx >= g.w || ny >= g.h {
			if g.hood.Edge == EdgeBorder {
				dst = append(dst, &g.border)
			}
			continue
		}
		dst = append(dst, &g.cells[ny*g.w+nx])
	}
	return dst
}

// GlobalTransition computes every cell's successor against the current
// snapshot and returns the result as a new grid.
func (g Grid[C]) GlobalTransition() Grid[C] {
	next := make([]C, len(g.cells))
	parallel.For(len(g.cells), func(lo, hi int) {
		buf := make([]*C, 0, g.hood.Size())
		for i := lo; i < hi; i++ {
			buf = g.appendNeighbors(buf[:0], i)
			next[i] = g.cells[i].LocalTransition(buf)
		}
	})
	g.cells = next
	return g
}
