package light

import (
	"image/color"
	"math"
	"strconv"

	"meta-ca/pkg/core"
)

var lightPalette = buildRamp(func(v uint8) color.RGBA {
	return color.RGBA{R: 0, G: v, B: v, A: 255}
})

func buildRamp(fn func(uint8) color.RGBA) []color.RGBA {
	p := make([]color.RGBA, 256)
	for i := range p {
		p[i] = fn(uint8(i))
	}
	return p
}

// Sim drives a light Grid with a source block that is re-placed before
// every step, so light keeps flowing from it.
type Sim struct {
	cfg     Config
	grid    Grid
	display []uint8
	srcX    int
	srcY    int
	lit     bool
	steps   int
}

// NewSim returns a dark Sim with the source in the middle.
func NewSim(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "light" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.Width(), H: s.grid.Height()} }

// Cells exposes intensities clamped to a byte.
func (s *Sim) Cells() []uint8 { return s.display }

// Palette maps intensity bytes to a cyan ramp.
func (s *Sim) Palette() []color.RGBA { return lightPalette }

// Grid returns the current snapshot.
func (s *Sim) Grid() Grid { return s.grid }

// Reset darkens the grid and recenters the source. The seed is unused; the
// light field is deterministic.
func (s *Sim) Reset(int64) {
	s.grid = New(s.cfg.Width, s.cfg.Height, s.cfg.Opacity, s.cfg.Diffusion)
	s.display = make([]uint8, s.cfg.Width*s.cfg.Height)
	s.srcX, s.srcY = s.cfg.Width/2, s.cfg.Height/2
	s.lit = true
	s.steps = 0
}

// Step places the source, if lit, and propagates light once.
func (s *Sim) Step() {
	if s.lit {
		_ = s.grid.Set(s.srcX, s.srcY, Source(s.cfg.SourceIntensity, s.cfg.SourceOpacity, s.cfg.SourceDiffusion))
	}
	s.grid = s.grid.GlobalTransition()
	s.steps++
	s.refresh()
}

// Stimulate moves the source to (x, y).
func (s *Sim) Stimulate(x, y int) error {
	if _, err := s.grid.At(x, y); err != nil {
		return err
	}
	s.srcX, s.srcY = x, y
	return nil
}

// ToggleSource switches the source on or off and reports the new state.
func (s *Sim) ToggleSource() bool {
	s.lit = !s.lit
	return s.lit
}

// String renders the current grid as text.
func (s *Sim) String() string { return s.grid.String() }

// Stats reports the step count, source position and total light.
func (s *Sim) Stats() []core.Stat {
	total := 0.0
	for _, v := range s.grid.Intensities() {
		total += v
	}
	return []core.Stat{
		{Label: "Step", Value: strconv.Itoa(s.steps)},
		{Label: "Source", Value: strconv.Itoa(s.srcX) + "," + strconv.Itoa(s.srcY)},
		{Label: "Total light", Value: strconv.FormatFloat(total, 'f', 1, 64)},
	}
}

// Parameters describes the active configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Medium",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.FloatParam("opacity", "Opacity", s.cfg.Opacity),
				core.FloatParam("diffusion", "Diffusion", s.cfg.Diffusion),
			},
		},
		{
			Name: "Source",
			Params: []core.Parameter{
				core.FloatParam("source_intensity", "Intensity", s.cfg.SourceIntensity),
				core.FloatParam("source_opacity", "Opacity", s.cfg.SourceOpacity),
				core.FloatParam("source_diffusion", "Diffusion", s.cfg.SourceDiffusion),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable coefficients.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "opacity", Label: "Opacity", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "diffusion", Label: "Diffusion", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1.0 / 7, HasMin: true, HasMax: true},
		{Key: "source_intensity", Label: "Source", Type: core.ParamTypeFloat, Step: 25, Min: 0, HasMin: true},
	}
}

// SetFloatParameter updates a coefficient; medium coefficients are applied
// to every block immediately.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	for _, ctrl := range s.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "opacity":
			s.cfg.Opacity = value
		case "diffusion":
			s.cfg.Diffusion = value
		case "source_intensity":
			s.cfg.SourceIntensity = value
			return true
		}
		s.grid = s.grid.WithCoefficients(s.cfg.Opacity, s.cfg.Diffusion)
		return true
	}
	return false
}

func (s *Sim) refresh() {
	for i, v := range s.grid.Intensities() {
		s.display[i] = uint8(math.Min(v, 255))
	}
}

func init() {
	core.Register("light", func(cfg map[string]string) core.Sim {
		return NewSim(FromMap(cfg))
	})
}
