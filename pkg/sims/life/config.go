package life

import "strconv"

// Patterns that Reset knows how to lay down.
const (
	PatternRandom  = "random"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternBlock   = "block"
)

// Config controls the life sim.
type Config struct {
	Width   int
	Height  int
	Pattern string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Pattern: PatternRandom}
}

// FromMap populates a Config from a string map. Unparseable values are
// ignored.
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
	if v, ok := cfg["pattern"]; ok {
		switch v {
		case PatternRandom, PatternGlider, PatternBlinker, PatternBlock:
			c.Pattern = v
		}
	}
	return c
}
