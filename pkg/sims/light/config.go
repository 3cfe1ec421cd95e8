package light

import "strconv"

// Config controls the light sim. Grid coefficients apply to every block; the
// source has its own.
type Config struct {
	Width     int
	Height    int
	Opacity   float64
	Diffusion float64

	SourceIntensity float64
	SourceOpacity   float64
	SourceDiffusion float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:           100,
		Height:          100,
		Opacity:         0.001,
		Diffusion:       0.1,
		SourceIntensity: 250,
		SourceOpacity:   0.1,
		SourceDiffusion: 0.01,
	}
}

// FromMap populates a Config from a string map. Coefficients outside [0, 1]
// are ignored.
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
	unit := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				*dst = parsed
			}
		}
	}
	unit("opacity", &c.Opacity)
	unit("diffusion", &c.Diffusion)
	unit("source_opacity", &c.SourceOpacity)
	unit("source_diffusion", &c.SourceDiffusion)
	if v, ok := cfg["source_intensity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.SourceIntensity = parsed
		}
	}
	return c
}
