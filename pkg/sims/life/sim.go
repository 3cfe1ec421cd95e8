package life

import (
	"strconv"

	"meta-ca/pkg/core"
)

// Sim drives a Grid for the interactive front ends.
type Sim struct {
	cfg     Config
	grid    Grid
	display []uint8
	steps   int
}

// NewSim returns a Sim with an empty grid; call Reset to seed it.
func NewSim(cfg Config) *Sim {
	s := &Sim{cfg: cfg, grid: New(cfg.Width, cfg.Height)}
	s.display = make([]uint8, s.grid.Width()*s.grid.Height())
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.Width(), H: s.grid.Height()} }

// Cells exposes the current grid values as 0/1 bytes.
func (s *Sim) Cells() []uint8 { return s.display }

// Grid returns the current snapshot.
func (s *Sim) Grid() Grid { return s.grid }

// Reset lays down the configured pattern; random boards use the seed.
func (s *Sim) Reset(seed int64) {
	w, h := s.cfg.Width, s.cfg.Height
	switch s.cfg.Pattern {
	case PatternGlider:
		s.grid = New(w, h)
		for _, p := range [][2]int{{2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 1}} {
			_ = s.grid.TurnOn(p[0], p[1])
		}
	case PatternBlinker:
		s.grid = New(w, h)
		for dx := -1; dx <= 1; dx++ {
			_ = s.grid.TurnOn(w/2+dx, h/2)
		}
	case PatternBlock:
		s.grid = New(w, h)
		for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			_ = s.grid.TurnOn(w/2+p[0], h/2+p[1])
		}
	default:
		s.grid = Random(w, h, core.NewRNG(seed).Source())
	}
	s.steps = 0
	s.refresh()
}

// Step advances the grid by one generation.
func (s *Sim) Step() {
	s.grid = s.grid.GlobalTransition()
	s.steps++
	s.refresh()
}

// Stimulate toggles the cell under (x, y).
func (s *Sim) Stimulate(x, y int) error {
	if err := s.grid.Toggle(x, y); err != nil {
		return err
	}
	s.refresh()
	return nil
}

// String renders the current grid as text.
func (s *Sim) String() string { return s.grid.String() }

// Stats reports the step count, activity and population.
func (s *Sim) Stats() []core.Stat {
	return []core.Stat{
		{Label: "Step", Value: strconv.Itoa(s.steps)},
		{Label: "Activity", Value: strconv.Itoa(s.grid.Activity())},
		{Label: "Population", Value: strconv.Itoa(s.grid.Population())},
	}
}

// Parameters describes the active configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			core.IntParam("w", "Width", s.cfg.Width),
			core.IntParam("h", "Height", s.cfg.Height),
			core.StringParam("pattern", "Pattern", s.cfg.Pattern),
		},
	}}}
}

func (s *Sim) refresh() {
	for i, st := range s.grid.States() {
		s.display[i] = uint8(st)
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewSim(FromMap(cfg))
	})
}
