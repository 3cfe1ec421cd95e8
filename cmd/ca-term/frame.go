package main

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"meta-ca/pkg/core"
)

// ramp maps palette indices to glyphs for sims without a text form.
const ramp = " .:-=+*#%@"

// textFrame renders one frame of sim. Sims with their own text form use
// it; the rest are drawn through ramp.
func textFrame(sim core.Sim) string {
	if s, ok := sim.(fmt.Stringer); ok {
		return s.String()
	}
	size := sim.Size()
	cells := sim.Cells()
	levels := 2
	if p, ok := sim.(core.PaletteProvider); ok && len(p.Palette()) > 0 {
		levels = len(p.Palette())
	}
	var b strings.Builder
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			b.WriteByte(glyph(cells[y*size.W+x], levels))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(v uint8, levels int) byte {
	if levels <= 2 {
		if v == 0 {
			return '.'
		}
		return 'O'
	}
	idx := int(v) * (len(ramp) - 1) / (levels - 1)
	return ramp[min(idx, len(ramp)-1)]
}

// dump steps sim n times and writes each frame to w separated by blank
// lines. The initial state is frame zero.
func dump(w io.Writer, sim core.Sim, n int) error {
	for i := 0; i <= n; i++ {
		if i > 0 {
			sim.Step()
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", strings.TrimRight(textFrame(sim), "\n")); err != nil {
			return err
		}
	}
	return nil
}

// styler converts cell values into terminal styles.
type styler struct {
	palette []tcell.Color
}

func newStyler(sim core.Sim) styler {
	var pal []color.RGBA
	if p, ok := sim.(core.PaletteProvider); ok {
		pal = p.Palette()
	}
	if len(pal) == 0 {
		pal = []color.RGBA{{A: 255}, {R: 235, G: 235, B: 235, A: 255}}
	}
	s := styler{palette: make([]tcell.Color, len(pal))}
	for i, c := range pal {
		s.palette[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return s
}

func (s styler) style(v uint8) tcell.Style {
	return tcell.StyleDefault.Background(s.palette[min(int(v), len(s.palette)-1)])
}
