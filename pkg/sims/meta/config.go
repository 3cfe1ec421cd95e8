package meta

import "strconv"

// Config controls the meta sim's outer and inner dimensions.
type Config struct {
	Width     int
	Height    int
	SubWidth  int
	SubHeight int
}

// DefaultConfig returns an 8x4 outer grid of 16x16 sub-grids.
func DefaultConfig() Config {
	return Config{Width: 8, Height: 4, SubWidth: 16, SubHeight: 16}
}

// FromMap populates a Config from a string map. "sub" sets both inner
// dimensions at once; "sub_w" and "sub_h" override it.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positive := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	positive("w", &c.Width)
	positive("h", &c.Height)
	positive("sub", &c.SubWidth)
	positive("sub", &c.SubHeight)
	positive("sub_w", &c.SubWidth)
	positive("sub_h", &c.SubHeight)
	return c
}
