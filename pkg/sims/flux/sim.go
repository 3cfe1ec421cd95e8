package flux

import (
	"image/color"
	"math"
	"strconv"

	"meta-ca/pkg/core"
)

var fluxPalette = func() []color.RGBA {
	p := make([]color.RGBA, 256)
	for i := range p {
		v := uint8(i)
		p[i] = color.RGBA{R: v, G: v, B: uint8(float32(v) * 0.8), A: 255}
	}
	return p
}()

// Sim drives a flux Grid with a persistent source cell.
type Sim struct {
	cfg     Config
	grid    Grid
	display []uint8
	srcX    int
	srcY    int
	lit     bool
	steps   int
}

// NewSim returns a dark Sim with the source in the top-left corner.
func NewSim(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "flux" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.Width(), H: s.grid.Height()} }

// Cells exposes ray norms clamped to a byte.
func (s *Sim) Cells() []uint8 { return s.display }

// Palette maps intensity bytes to a warm ramp.
func (s *Sim) Palette() []color.RGBA { return fluxPalette }

// Grid returns the current snapshot.
func (s *Sim) Grid() Grid { return s.grid }

// Reset darkens the grid. The seed is unused.
func (s *Sim) Reset(int64) {
	s.grid = New(s.cfg.Width, s.cfg.Height, s.cfg.Opacity, s.cfg.Diffusion)
	s.display = make([]uint8, s.cfg.Width*s.cfg.Height)
	s.srcX, s.srcY = 0, 0
	s.lit = true
	s.steps = 0
}

// Step places the source, if lit, and propagates light once.
func (s *Sim) Step() {
	if s.lit {
		_ = s.grid.Set(s.srcX, s.srcY, s.grid.Lit(s.cfg.Intensity))
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

// Stats reports the step count, source position and total flux.
func (s *Sim) Stats() []core.Stat {
	return []core.Stat{
		{Label: "Step", Value: strconv.Itoa(s.steps)},
		{Label: "Source", Value: strconv.Itoa(s.srcX) + "," + strconv.Itoa(s.srcY)},
		{Label: "Total flux", Value: strconv.FormatFloat(s.grid.Total(), 'g', 4, 64)},
	}
}

// Parameters describes the active configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Medium",
		Params: []core.Parameter{
			core.IntParam("w", "Width", s.cfg.Width),
			core.IntParam("h", "Height", s.cfg.Height),
			core.FloatParam("opacity", "Opacity", s.cfg.Opacity),
			core.FloatParam("diffusion", "Diffusion", s.cfg.Diffusion),
			core.FloatParam("intensity", "Source intensity", s.cfg.Intensity),
		},
	}}}
}

// ParameterControls lists the HUD-adjustable coefficients.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "opacity", Label: "Opacity", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "diffusion", Label: "Diffusion", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1.0 / 3, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a coefficient on every cell.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	for _, ctrl := range s.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		if key == "opacity" {
			s.cfg.Opacity = value
		} else {
			s.cfg.Diffusion = value
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
	core.Register("flux", func(cfg map[string]string) core.Sim {
		return NewSim(FromMap(cfg))
	})
}
