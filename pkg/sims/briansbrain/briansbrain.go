// Package briansbrain implements Brian's Brain: a dead cell fires when
// exactly two neighbors are firing, a firing cell starts dying, and a dying
// cell dies.
package briansbrain

import (
	"math/rand/v2"
	"strconv"

	"meta-ca/pkg/automaton"
	"meta-ca/pkg/core"
)

// State is one of the three Brian's Brain states.
type State uint8

const (
	Dead State = iota
	On
	Dying
)

var _ automaton.Cell[State] = Dead

// LocalTransition applies the Brian's Brain rule.
func (s State) LocalTransition(neighbors []*State) State {
	switch s {
	case On:
		return Dying
	case Dying:
		return Dead
	}
	firing := 0
	for _, n := range neighbors {
		if *n == On {
			firing++
		}
	}
	if firing == 2 {
		return On
	}
	return Dead
}

// Random returns a w*h Moore grid where roughly one cell in density is
// firing.
func Random(w, h, density int, r *rand.Rand) automaton.Grid[State] {
	if density < 1 {
		density = 1
	}
	return automaton.Generate(w, h, automaton.Moore, func(int, int) State {
		if r.IntN(density) == 0 {
			return On
		}
		return Dead
	})
}

// Config controls the briansbrain sim.
type Config struct {
	Width   int
	Height  int
	Density int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Density: 8}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for key, dst := range map[string]*int{"w": &c.Width, "h": &c.Height, "density": &c.Density} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	return c
}

// Brain adapts a State grid to core.Sim.
type Brain struct {
	cfg   Config
	grid  automaton.Grid[State]
	cells []uint8
	steps int
}

// New creates a Brain simulation with the provided configuration.
func New(cfg Config) *Brain {
	b := &Brain{cfg: cfg, grid: automaton.New[State](cfg.Width, cfg.Height, automaton.Moore)}
	b.cells = make([]uint8, b.grid.Len())
	return b
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.Size{W: b.grid.Width(), H: b.grid.Height()} }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []uint8 { return b.cells }

// Grid returns the current snapshot.
func (b *Brain) Grid() automaton.Grid[State] { return b.grid }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	b.grid = Random(b.cfg.Width, b.cfg.Height, b.cfg.Density, core.NewRNG(seed).Source())
	b.steps = 0
	b.refresh()
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	b.grid = b.grid.GlobalTransition()
	b.steps++
	b.refresh()
}

// Stimulate fires the cell under (x, y).
func (b *Brain) Stimulate(x, y int) error {
	if err := b.grid.Set(x, y, On); err != nil {
		return err
	}
	b.refresh()
	return nil
}

// Stats reports the step count and the number of firing cells.
func (b *Brain) Stats() []core.Stat {
	firing := 0
	for _, s := range b.grid.Cells() {
		if s == On {
			firing++
		}
	}
	return []core.Stat{
		{Label: "Step", Value: strconv.Itoa(b.steps)},
		{Label: "Firing", Value: strconv.Itoa(firing)},
	}
}

func (b *Brain) refresh() {
	for i, s := range b.grid.Cells() {
		b.cells[i] = uint8(s)
	}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
