package meta

import "strings"

// String renders the sub-grids as tiles framed by '|' and '-' rules.
func (g Grid) String() string {
	tw, th := g.tileSize()
	rule := strings.Repeat("-", g.Width()*(tw+1)+1)

	var b strings.Builder
	b.WriteString(rule)
	for oy := 0; oy < g.Height(); oy++ {
		for y := 0; y < th; y++ {
			b.WriteString("\n|")
			for ox := 0; ox < g.Width(); ox++ {
				sub := g.grid.Cells()[g.grid.Index(ox, oy)]
				start := b.Len()
				sub.WriteRow(&b, y)
				if pad := tw - runeCount(b.String()[start:]); pad > 0 {
					b.WriteString(strings.Repeat(" ", pad))
				}
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
		b.WriteString(rule)
	}
	return b.String()
}

// tileSize is the largest sub-grid extent; smaller tiles are padded.
func (g Grid) tileSize() (int, int) {
	w, h := 0, 0
	for _, c := range g.grid.Cells() {
		w = max(w, c.Width())
		h = max(h, c.Height())
	}
	return w, h
}

func runeCount(s string) int { return len([]rune(s)) }
