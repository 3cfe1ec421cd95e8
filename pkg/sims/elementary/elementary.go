// Package elementary runs a one-dimensional Wolfram rule and scrolls its
// history down the screen.
package elementary

import (
	"fmt"
	"strconv"

	"meta-ca/pkg/automaton"
	"meta-ca/pkg/core"
)

// Row is a cell's left and right neighbor. Past either end sits a dead cell.
var Row = automaton.Neighborhood{
	Offsets: []automaton.Offset{{DX: -1}, {DX: 1}},
	Edge:    automaton.EdgeBorder,
}

// Cell is one bit of a generation plus the Wolfram code that advances it.
type Cell struct {
	Bit  uint8
	Rule uint8
}

var _ automaton.Cell[Cell] = Cell{}

// LocalTransition looks up (left, self, right) in the rule's bits.
func (c Cell) LocalTransition(neighbors []*Cell) Cell {
	var left, right uint8
	if len(neighbors) == 2 {
		left, right = neighbors[0].Bit, neighbors[1].Bit
	}
	idx := (left&1)<<2 | (c.Bit&1)<<1 | right&1
	return Cell{Bit: (c.Rule >> idx) & 1, Rule: c.Rule}
}

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary keeps the current generation as a w*1 grid and the last h
// generations, newest on top, as the render buffer.
type Elementary struct {
	cfg     Config
	line    automaton.Grid[Cell]
	history []uint8
	steps   int
}

// New creates an automaton with the given configuration.
func New(cfg Config) *Elementary {
	e := &Elementary{cfg: cfg}
	e.Reset(0)
	return e
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.cfg.Width, H: e.cfg.Height} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.history }

// Reset clears the history and seeds a single live cell in the middle.
func (e *Elementary) Reset(int64) {
	w := e.cfg.Width
	e.line = automaton.Generate(w, 1, Row, func(x, _ int) Cell {
		c := Cell{Rule: e.cfg.Rule}
		if x == w/2 {
			c.Bit = 1
		}
		return c
	})
	e.history = make([]uint8, w*e.cfg.Height)
	e.steps = 0
	e.writeTop()
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	if w := e.cfg.Width; e.cfg.Height > 1 {
		copy(e.history[w:], e.history[:w*(e.cfg.Height-1)])
	}
	e.line = e.line.GlobalTransition()
	e.steps++
	e.writeTop()
}

// Stimulate flips the bit of the current generation in column x. History
// rows cannot be edited, so any row of the column selects it.
func (e *Elementary) Stimulate(x, y int) error {
	if y < 0 || y >= e.cfg.Height {
		return fmt.Errorf("elementary: row %d: %w", y, automaton.ErrOutOfBounds)
	}
	c, err := e.line.At(x, 0)
	if err != nil {
		return err
	}
	c.Bit ^= 1
	if err := e.line.Set(x, 0, c); err != nil {
		return err
	}
	e.writeTop()
	return nil
}

// Stats reports the generation and rule.
func (e *Elementary) Stats() []core.Stat {
	return []core.Stat{
		{Label: "Generation", Value: strconv.Itoa(e.steps)},
		{Label: "Rule", Value: strconv.Itoa(int(e.cfg.Rule))},
	}
}

func (e *Elementary) writeTop() {
	if len(e.history) == 0 {
		return
	}
	for x, c := range e.line.Cells() {
		e.history[x] = c.Bit
	}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
