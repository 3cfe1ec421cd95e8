package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta-ca/pkg/sims/flux"
	"meta-ca/pkg/sims/life"
)

func TestGlyph(t *testing.T) {
	assert.Equal(t, byte('.'), glyph(0, 2))
	assert.Equal(t, byte('O'), glyph(1, 2))
	assert.Equal(t, byte(' '), glyph(0, 256))
	assert.Equal(t, byte('@'), glyph(255, 256))
}

func TestDumpUsesGridText(t *testing.T) {
	sim := life.NewSim(life.Config{Width: 5, Height: 5, Pattern: life.PatternBlinker})
	sim.Reset(0)

	var buf bytes.Buffer
	require.NoError(t, dump(&buf, sim, 1))

	frames := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	require.Len(t, frames, 2)
	assert.Equal(t, strings.TrimRight(sim.Grid().String(), "\n"), frames[1])
	assert.NotEqual(t, frames[0], frames[1])
}

func TestTextFrameRamp(t *testing.T) {
	sim := flux.NewSim(flux.Config{Width: 3, Height: 2, Opacity: 1, Intensity: 1000})
	frame := textFrame(sim)
	assert.Equal(t, "   \n   \n", frame, "dark before the first step")

	sim.Step()
	assert.Equal(t, byte('@'), textFrame(sim)[1], "lit cell right of the source")
}

func TestStyler(t *testing.T) {
	s := newStyler(life.NewSim(life.DefaultConfig()))
	_, bg, _ := s.style(1).Decompose()
	assert.Equal(t, tcell.NewRGBColor(235, 235, 235), bg)
	_, bg, _ = s.style(9).Decompose()
	assert.Equal(t, tcell.NewRGBColor(235, 235, 235), bg, "values past the palette use its last entry")
}
