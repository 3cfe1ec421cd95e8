package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta-ca/pkg/automaton"
	"meta-ca/pkg/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "16", "opacity": "0.2", "diffusion": "1.5", "source_intensity": "-1"})
	assert.Equal(t, 16, c.Width)
	assert.Equal(t, 0.2, c.Opacity)
	assert.Equal(t, DefaultConfig().Diffusion, c.Diffusion)
	assert.Equal(t, DefaultConfig().SourceIntensity, c.SourceIntensity)
}

func TestSimSourceSpreads(t *testing.T) {
	s := NewSim(Config{Width: 9, Height: 9, Opacity: 0.01, Diffusion: 0.02, SourceIntensity: 100, SourceOpacity: 0.01, SourceDiffusion: 0.01})
	s.Step()
	s.Step()

	cells := s.Cells()
	center := 4*9 + 4
	assert.NotZero(t, cells[center-1])
	assert.NotZero(t, cells[center+9])
	assert.Zero(t, cells[0], "corner is still dark after two steps")

	require.NoError(t, s.Stimulate(0, 0))
	assert.ErrorIs(t, s.Stimulate(9, 0), automaton.ErrOutOfBounds)
	assert.Equal(t, core.Stat{Label: "Source", Value: "0,0"}, s.Stats()[1])
}

func TestSimToggleSource(t *testing.T) {
	s := NewSim(Config{Width: 5, Height: 5, SourceIntensity: 50})
	assert.False(t, s.ToggleSource())
	for i := 0; i < 3; i++ {
		s.Step()
	}
	for _, v := range s.Cells() {
		assert.Zero(t, v)
	}
	assert.True(t, s.ToggleSource())
}

func TestSimSetFloatParameter(t *testing.T) {
	s := NewSim(DefaultConfig())
	require.True(t, s.SetFloatParameter("diffusion", 0.5))
	b, err := s.Grid().At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/7, b.Diffusion, 1e-12, "clamped to the energy-conserving maximum")

	require.True(t, s.SetFloatParameter("opacity", 0.3))
	b, _ = s.Grid().At(3, 3)
	assert.Equal(t, 0.3, b.Opacity)

	assert.False(t, s.SetFloatParameter("unknown", 1))
}
