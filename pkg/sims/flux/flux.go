// Package flux is a four-ray light automaton. Each cell carries one ray per
// axis and refills it from the neighbor on that axis.
package flux

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"meta-ca/pkg/automaton"
)

// Axis indexes a cell's rays. The order matches automaton.VonNeumann.
type Axis int

const (
	Left Axis = iota
	Right
	Up
	Down
)

// Axes is the number of rays per cell.
const Axes = 4

// Cell holds one intensity per axis plus scattering (Diffusion) and
// transmission (Opacity) coefficients.
type Cell struct {
	Rays      [Axes]float64
	Diffusion float64
	Opacity   float64
}

var _ automaton.Cell[Cell] = Cell{}

// NewCell returns a dark cell with the given coefficients.
func NewCell(opacity, diffusion float64) Cell {
	return Cell{Opacity: opacity, Diffusion: diffusion}
}

// LocalTransition rebuilds ray k from the neighbor in slot k: that
// neighbor's own ray k keeps 1-3*diffusion, its other three rays each
// scatter diffusion into it, and the sum is scaled by opacity. A missing
// slot is treated as a dark cell.
func (c Cell) LocalTransition(neighbors []*Cell) Cell {
	next := Cell{Diffusion: c.Diffusion, Opacity: c.Opacity}
	keep := max(0, 1-3*c.Diffusion)
	for k := 0; k < Axes; k++ {
		if k >= len(neighbors) {
			break
		}
		n := neighbors[k]
		own := n.Rays[k]
		others := floats.Sum(n.Rays[:]) - own
		next.Rays[k] = (own*keep + others*c.Diffusion) * c.Opacity
	}
	return next
}

// Total is the sum of the rays.
func (c Cell) Total() float64 { return floats.Sum(c.Rays[:]) }

// Intensity is the Euclidean norm of the rays.
func (c Cell) Intensity() float64 { return floats.Norm(c.Rays[:], 2) }

// Grid is a four-ray light field; past the edge sits a dark cell with zero
// coefficients.
type Grid struct {
	grid      automaton.Grid[Cell]
	opacity   float64
	diffusion float64
}

var _ automaton.Automaton[Grid] = Grid{}

// New returns a dark w*h grid with uniform coefficients.
func New(w, h int, opacity, diffusion float64) Grid {
	return Grid{
		grid: automaton.Generate(w, h, automaton.VonNeumann, func(int, int) Cell {
			return NewCell(opacity, diffusion)
		}),
		opacity:   opacity,
		diffusion: diffusion,
	}
}

// FromCells builds a grid from row-major cells. Lit uses the first cell's
// coefficients.
func FromCells(w, h int, cells []Cell) (Grid, error) {
	g, err := automaton.FromCells(w, h, cells, automaton.VonNeumann)
	if err != nil {
		return Grid{}, fmt.Errorf("flux: %w", err)
	}
	out := Grid{grid: g}
	if len(cells) > 0 {
		out.opacity, out.diffusion = cells[0].Opacity, cells[0].Diffusion
	}
	return out, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.grid.Width() }

// Height returns the number of rows.
func (g Grid) Height() int { return g.grid.Height() }

// Cells exposes the row-major cells for reading.
func (g Grid) Cells() []Cell { return g.grid.Cells() }

// At returns the cell at (x, y).
func (g Grid) At(x, y int) (Cell, error) { return g.grid.At(x, y) }

// Set overwrites the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) error { return g.grid.Set(x, y, c) }

// Lit returns a source cell shining intensity along every axis with the
// grid's coefficients.
func (g Grid) Lit(intensity float64) Cell {
	c := NewCell(g.opacity, g.diffusion)
	for k := range c.Rays {
		c.Rays[k] = intensity
	}
	return c
}

// GlobalTransition propagates light one step.
func (g Grid) GlobalTransition() Grid {
	g.grid = g.grid.GlobalTransition()
	return g
}

// Intensities returns each cell's ray norm in row-major order.
func (g Grid) Intensities() []float64 {
	out := make([]float64, g.grid.Len())
	for i, c := range g.grid.Cells() {
		out[i] = c.Intensity()
	}
	return out
}

// Total sums every ray on the grid.
func (g Grid) Total() float64 {
	total := 0.0
	for _, c := range g.grid.Cells() {
		total += c.Total()
	}
	return total
}

// WithCoefficients returns a copy of g with new coefficients on every cell.
func (g Grid) WithCoefficients(opacity, diffusion float64) Grid {
	next := g.grid.Clone()
	cells := next.Cells()
	for i := range cells {
		cells[i].Opacity = opacity
		cells[i].Diffusion = diffusion
	}
	return Grid{grid: next, opacity: opacity, diffusion: diffusion}
}
