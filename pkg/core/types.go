package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation's display raster.
type Size struct {
	W int
	H int
}

// Sim is what drivers need from an automaton: a name, a raster size, a way
// to reseed, a single step and a byte-per-pixel view of the current state.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Stimulator is implemented by sims that accept an external poke at a
// raster coordinate between steps.
type Stimulator interface {
	Stimulate(x, y int) error
}

// SourceToggler is implemented by sims with a persistent stimulus, such as
// a light source, that can be switched on and off.
type SourceToggler interface {
	ToggleSource() bool
}

// PaletteProvider is implemented by sims whose Cells values index a palette
// rather than being plain on/off.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Stat is a single live readout, such as the current activity.
type Stat struct {
	Label string
	Value string
}

// StatsProvider is implemented by sims that expose live readouts.
type StatsProvider interface {
	Stats() []Stat
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
