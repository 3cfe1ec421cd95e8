package core

// ByteGrid is a row-major raster of byte-sized display values. Composite
// views (a meta-grid's tiles, intensity maps) are assembled into one before
// being handed to a renderer.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a raster with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Set writes v at (x, y) and reports whether the coordinate was on the raster.
func (g *ByteGrid) Set(x, y int, v uint8) bool {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return false
	}
	g.data[g.Index(x, y)] = v
	return true
}

// Blit copies a w*h row-major tile into the raster with its top-left corner
// at (x0, y0). Pixels falling outside the raster are skipped.
func (g *ByteGrid) Blit(x0, y0, w, h int, tile []uint8) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if i >= len(tile) {
				return
			}
			g.Set(x0+x, y0+y, tile[i])
		}
	}
}

// Clear fills the raster with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
