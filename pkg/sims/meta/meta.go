// Package meta is a cellular automaton whose cells are themselves Conway
// grids. A sub-grid advances one generation per outer step only while it is
// at least as active as each of its neighbors.
package meta

import (
	"fmt"
	"math/rand/v2"

	"meta-ca/pkg/automaton"
	"meta-ca/pkg/sims/life"
)

// Grid is the outer automaton. Each outer cell exclusively owns its sub-grid.
type Grid struct {
	grid automaton.Grid[life.Grid]
}

var _ automaton.Automaton[Grid] = Grid{}

// New returns a w*h outer grid of empty subW*subH sub-grids.
func New(w, h, subW, subH int) Grid {
	return Grid{grid: automaton.Generate(w, h, automaton.Moore, func(int, int) life.Grid {
		return life.New(subW, subH)
	})}
}

// Random returns a w*h outer grid of independently randomized sub-grids.
func Random(w, h, subW, subH int, rng *rand.Rand) Grid {
	return Grid{grid: automaton.Generate(w, h, automaton.Moore, func(int, int) life.Grid {
		return life.Random(subW, subH, rng)
	})}
}

// FromGrids builds an outer grid from row-major sub-grids. Each sub-grid is
// copied so the result owns all of its cells.
func FromGrids(w, h int, grids []life.Grid) (Grid, error) {
	owned := make([]life.Grid, len(grids))
	for i, g := range grids {
		owned[i] = g.Clone()
	}
	g, err := automaton.FromCells(w, h, owned, automaton.Moore)
	if err != nil {
		return Grid{}, fmt.Errorf("meta: %w", err)
	}
	return Grid{grid: g}, nil
}

// Width returns the number of outer columns.
func (g Grid) Width() int { return g.grid.Width() }

// Height returns the number of outer rows.
func (g Grid) Height() int { return g.grid.Height() }

// SubSize returns the dimensions of the first sub-grid, or zero for an
// empty outer grid.
func (g Grid) SubSize() (int, int) {
	cells := g.grid.Cells()
	if len(cells) == 0 {
		return 0, 0
	}
	return cells[0].Width(), cells[0].Height()
}

// Grids exposes the row-major sub-grids for reading.
func (g Grid) Grids() []life.Grid { return g.grid.Cells() }

// At returns the sub-grid at outer coordinate (x, y).
func (g Grid) At(x, y int) (life.Grid, error) { return g.grid.At(x, y) }

// Set replaces the sub-grid at (x, y) with a copy of sub.
func (g *Grid) Set(x, y int, sub life.Grid) error { return g.grid.Set(x, y, sub.Clone()) }

// TurnOn switches on cell (x, y) of the sub-grid at outer coordinate (ox, oy).
func (g *Grid) TurnOn(ox, oy, x, y int) error {
	return g.update(ox, oy, func(sub *life.Grid) error { return sub.TurnOn(x, y) })
}

// Toggle flips cell (x, y) of the sub-grid at outer coordinate (ox, oy).
func (g *Grid) Toggle(ox, oy, x, y int) error {
	return g.update(ox, oy, func(sub *life.Grid) error { return sub.Toggle(x, y) })
}

// update edits a copy of one sub-grid and stores it back, so copies of g
// taken earlier are unaffected.
func (g *Grid) update(ox, oy int, fn func(*life.Grid) error) error {
	sub, err := g.grid.At(ox, oy)
	if err != nil {
		return err
	}
	if err := fn(&sub); err != nil {
		return err
	}
	return g.grid.Set(ox, oy, sub)
}

// Activities returns each sub-grid's activity in row-major order.
func (g Grid) Activities() []int {
	cells := g.grid.Cells()
	out := make([]int, len(cells))
	for i, c := range cells {
		out[i] = c.Activity()
	}
	return out
}

// GlobalTransition applies the activity gate to every sub-grid against the
// current snapshot.
func (g Grid) GlobalTransition() Grid {
	return Grid{grid: g.grid.GlobalTransition()}
}
