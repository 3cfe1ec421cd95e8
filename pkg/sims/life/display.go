package life

import (
	"fmt"
	"strings"

	"meta-ca/pkg/automaton"
)

const (
	glyphOn  = 'O'
	glyphOff = '·'
)

// String renders the state as a single glyph.
func (s State) String() string {
	if s == On {
		return string(glyphOn)
	}
	return string(glyphOff)
}

// String renders the grid one text row per grid row.
func (g Grid) String() string {
	var b strings.Builder
	g.WriteRow(&b, -1)
	return b.String()
}

// WriteRow appends row y to b, or every row separated by newlines when y is
// negative.
func (g Grid) WriteRow(b *strings.Builder, y int) {
	w, cells := g.Width(), g.States()
	if y >= 0 {
		if y < g.Height() {
			for _, s := range cells[y*w : (y+1)*w] {
				b.WriteRune(glyph(s))
			}
		}
		return
	}
	for row := 0; row < g.Height(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		g.WriteRow(b, row)
	}
}

func glyph(s State) rune {
	if s == On {
		return glyphOn
	}
	return glyphOff
}

// Parse builds a grid from text rows. 'O', 'o', '#' and '1' are On; '.',
// '·', ' ', '-' and '0' are Off. All rows must have the same length.
func Parse(rows ...string) (Grid, error) {
	var states []State
	w := -1
	for y, row := range rows {
		n := 0
		for _, r := range row {
			switch r {
			case 'O', 'o', '#', '1':
				states = append(states, On)
			case '.', glyphOff, ' ', '-', '0':
				states = append(states, Off)
			default:
				return Grid{}, fmt.Errorf("life: row %d: unexpected %q", y, r)
			}
			n++
		}
		if w >= 0 && n != w {
			return Grid{}, fmt.Errorf("life: row %d has %d cells, want %d: %w", y, n, w, automaton.ErrCellCount)
		}
		w = n
	}
	if w < 0 {
		w = 0
	}
	return FromStates(w, len(rows), states)
}
