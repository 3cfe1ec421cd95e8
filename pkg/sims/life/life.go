package life

import (
	"fmt"
	"math/rand/v2"

	"meta-ca/pkg/automaton"
	"meta-ca/pkg/core"
)

// State is the value of a single Conway cell.
type State uint8

const (
	Off State = iota
	On
)

// LocalTransition applies Conway's rule against whatever neighbors were
// supplied; border cells simply see fewer of them.
func (s State) LocalTransition(neighbors []*State) State {
	n := 0
	for _, nb := range neighbors {
		if *nb == On {
			n++
		}
	}
	switch {
	case n < 2 || n > 3:
		return Off
	case n == 3:
		return On
	}
	return s
}

// Grid is a Conway board without wraparound. Activity is the number of cells
// that changed in the transition that produced the grid. Copies are separate
// snapshots: the mutators write to a fresh cell slice.
type Grid struct {
	grid     automaton.Grid[State]
	activity int
}

var (
	_ automaton.Cell[State]     = Off
	_ automaton.Cell[Grid]      = Grid{}
	_ automaton.Automaton[Grid] = Grid{}
)

// New returns a w*h grid with every cell Off.
func New(w, h int) Grid {
	return Grid{grid: automaton.New[State](w, h, automaton.Moore)}
}

// Random returns a w*h grid where each cell is On with probability one half.
func Random(w, h int, rng *rand.Rand) Grid {
	g := New(w, h)
	core.FillBinary(rng, g.grid.Cells())
	return g
}

// FromStates builds a grid from row-major states.
func FromStates(w, h int, states []State) (Grid, error) {
	g, err := automaton.FromCells(w, h, states, automaton.Moore)
	if err != nil {
		return Grid{}, fmt.Errorf("life: %w", err)
	}
	return Grid{grid: g}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.grid.Width() }

// Height returns the number of rows.
func (g Grid) Height() int { return g.grid.Height() }

// Activity returns how many cells changed in the last transition.
func (g Grid) Activity() int { return g.activity }

// States exposes the row-major cell values for reading.
func (g Grid) States() []State { return g.grid.Cells() }

// At returns the state at (x, y).
func (g Grid) At(x, y int) (State, error) { return g.grid.At(x, y) }

// Set overwrites the state at (x, y).
func (g *Grid) Set(x, y int, s State) error { return g.grid.Set(x, y, s) }

// TurnOn switches the cell at (x, y) on.
func (g *Grid) TurnOn(x, y int) error { return g.grid.Set(x, y, On) }

// Toggle flips the cell at (x, y).
func (g *Grid) Toggle(x, y int) error {
	s, err := g.grid.At(x, y)
	if err != nil {
		return err
	}
	return g.grid.Set(x, y, s^1)
}

// Population counts the cells that are On.
func (g Grid) Population() int {
	n := 0
	for _, s := range g.grid.Cells() {
		if s == On {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and cell values.
// Activity is not compared.
func (g Grid) Equal(o Grid) bool {
	if g.Width() != o.Width() || g.Height() != o.Height() {
		return false
	}
	a, b := g.grid.Cells(), o.grid.Cells()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that owns its cells.
func (g Grid) Clone() Grid {
	return Grid{grid: g.grid.Clone(), activity: g.activity}
}

// GlobalTransition advances every cell one generation and records how many
// of them changed.
func (g Grid) GlobalTransition() Grid {
	next := g.grid.GlobalTransition()
	changed := 0
	prev, cur := g.grid.Cells(), next.Cells()
	for i := range prev {
		if prev[i] != cur[i] {
			changed++
		}
	}
	return Grid{grid: next, activity: changed}
}

// LocalTransition lets a whole grid act as a cell of a larger automaton: it
// advances one generation only if it is at least as active as every
// neighbor, and is copied unchanged otherwise.
func (g Grid) LocalTransition(neighbors []*Grid) Grid {
	if g.Leads(neighbors) {
		return g.GlobalTransition()
	}
	return g.Clone()
}

// Leads reports whether g's activity is at least the maximum activity among
// neighbors. With no neighbors the maximum does not exist and g leads.
func (g Grid) Leads(neighbors []*Grid) bool {
	for _, n := range neighbors {
		if n.activity > g.activity {
			return false
		}
	}
	return true
}
