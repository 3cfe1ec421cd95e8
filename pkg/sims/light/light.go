// Package light diffuses directional light rays across a grid. Every block
// collects the rays its eight neighbors send toward it, passing straight
// rays through attenuated and scattering the rest.
package light

import (
	"fmt"
	"strconv"
	"strings"

	"meta-ca/pkg/automaton"
)

// Direction is a ray heading, numbered clockwise from the upper left so that
// a direction and its opposite are four apart. Direction d matches slot d of
// automaton.Radial.
type Direction int

const (
	UpLeft Direction = iota
	Up
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
)

// Directions is the number of ray headings.
const Directions = 8

var directionNames = [Directions]string{"up-left", "up", "up-right", "right", "down-right", "down", "down-left", "left"}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction { return (d + Directions/2) % Directions }

func (d Direction) String() string {
	if d < 0 || d >= Directions {
		return "direction(" + strconv.Itoa(int(d)) + ")"
	}
	return directionNames[d]
}

// Cutoff is the weakest ray that still propagates.
const Cutoff = 1.0

// Ray is light of some intensity travelling in one direction.
type Ray struct {
	Direction Direction
	Intensity float64
}

// Block is a cell holding light plus its scattering (Diffusion) and
// absorbing (Opacity) coefficients.
type Block struct {
	Light     []Ray
	Diffusion float64
	Opacity   float64
}

var _ automaton.Cell[Block] = Block{}

// NewBlock returns a dark block with the given coefficients.
func NewBlock(opacity, diffusion float64) Block {
	return Block{Opacity: opacity, Diffusion: diffusion}
}

// Source returns a block shining with the given intensity in all directions.
func Source(intensity, opacity, diffusion float64) Block {
	b := NewBlock(opacity, diffusion)
	b.Light = make([]Ray, Directions)
	for d := range b.Light {
		b.Light[d] = Ray{Direction: Direction(d), Intensity: intensity}
	}
	return b
}

// Beam returns a block with a single ray.
func Beam(dir Direction, intensity, opacity, diffusion float64) Block {
	b := NewBlock(opacity, diffusion)
	b.Light = []Ray{{Direction: dir, Intensity: intensity}}
	return b
}

// LocalTransition gathers, for each neighbor slot, the light that neighbor
// sends toward this block. Rays already heading that way keep
// 1-opacity-7*diffusion of their intensity and every other ray scatters
// diffusion of its intensity into it. Rays weaker than Cutoff are dropped.
func (b Block) LocalTransition(neighbors []*Block) Block {
	next := Block{Light: make([]Ray, 0, len(neighbors)), Diffusion: b.Diffusion, Opacity: b.Opacity}
	direct := max(0, 1-b.Opacity-7*b.Diffusion)
	for slot, n := range neighbors {
		d := Direction((Directions/2 + slot) % Directions)
		sum := 0.0
		for _, r := range n.Light {
			switch {
			case r.Intensity < Cutoff:
			case r.Direction == d:
				sum += r.Intensity * direct
			default:
				sum += r.Intensity * b.Diffusion
			}
		}
		next.Light = append(next.Light, Ray{Direction: d, Intensity: sum})
	}
	return next
}

// Intensity sums the block's rays.
func (b Block) Intensity() float64 {
	total := 0.0
	for _, r := range b.Light {
		total += r.Intensity
	}
	return total
}

// Grid is a light field. Positions past the edge behave as dark blocks with
// zero coefficients.
type Grid struct {
	grid automaton.Grid[Block]
}

var _ automaton.Automaton[Grid] = Grid{}

// New returns a dark w*h grid whose blocks all share the given coefficients.
func New(w, h int, opacity, diffusion float64) Grid {
	return Grid{grid: automaton.Generate(w, h, automaton.Radial, func(int, int) Block {
		return NewBlock(opacity, diffusion)
	})}
}

// FromBlocks builds a grid from row-major blocks.
func FromBlocks(w, h int, blocks []Block) (Grid, error) {
	g, err := automaton.FromCells(w, h, blocks, automaton.Radial)
	if err != nil {
		return Grid{}, fmt.Errorf("light: %w", err)
	}
	return Grid{grid: g}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.grid.Width() }

// Height returns the number of rows.
func (g Grid) Height() int { return g.grid.Height() }

// Blocks exposes the row-major blocks for reading.
func (g Grid) Blocks() []Block { return g.grid.Cells() }

// At returns the block at (x, y).
func (g Grid) At(x, y int) (Block, error) { return g.grid.At(x, y) }

// Set overwrites the block at (x, y), typically to place a light source.
func (g *Grid) Set(x, y int, b Block) error { return g.grid.Set(x, y, b) }

// GlobalTransition propagates light one step.
func (g Grid) GlobalTransition() Grid { return Grid{grid: g.grid.GlobalTransition()} }

// Intensities returns each block's summed intensity in row-major order.
func (g Grid) Intensities() []float64 {
	out := make([]float64, g.grid.Len())
	for i, b := range g.grid.Cells() {
		out[i] = b.Intensity()
	}
	return out
}

// WithCoefficients returns a copy of g whose blocks keep their light but use
// new coefficients.
func (g Grid) WithCoefficients(opacity, diffusion float64) Grid {
	next := g.grid.Clone()
	cells := next.Cells()
	for i := range cells {
		cells[i].Opacity = opacity
		cells[i].Diffusion = diffusion
	}
	return Grid{grid: next}
}

// String prints each block's intensity truncated to an integer.
func (g Grid) String() string {
	var b strings.Builder
	for i, v := range g.Intensities() {
		if i > 0 && i%g.Width() == 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
		b.WriteByte(' ')
	}
	return b.String()
}
