package flux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta-ca/pkg/automaton"
	"meta-ca/pkg/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "32", "h": "x", "diffusion": "0.1", "opacity": "2", "intensity": "500"})
	assert.Equal(t, 32, c.Width)
	assert.Equal(t, DefaultConfig().Height, c.Height)
	assert.Equal(t, 0.1, c.Diffusion)
	assert.Equal(t, DefaultConfig().Opacity, c.Opacity)
	assert.Equal(t, 500.0, c.Intensity)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestSimSourceSpreads(t *testing.T) {
	s := NewSim(Config{Width: 6, Height: 6, Opacity: 1, Diffusion: 0.1, Intensity: 100})
	s.Step()
	s.Step()

	cells := s.Cells()
	assert.NotZero(t, cells[1])
	assert.NotZero(t, cells[6])
	assert.Zero(t, cells[5*6+5], "far corner is still dark")

	require.NoError(t, s.Stimulate(3, 3))
	assert.ErrorIs(t, s.Stimulate(0, 6), automaton.ErrOutOfBounds)
	assert.Equal(t, core.Stat{Label: "Source", Value: "3,3"}, s.Stats()[1])
}

func TestSimToggleSource(t *testing.T) {
	s := NewSim(Config{Width: 4, Height: 4, Opacity: 1, Intensity: 50})
	assert.False(t, s.ToggleSource())
	s.Step()
	s.Step()
	assert.Zero(t, s.Grid().Total())
	assert.True(t, s.ToggleSource())
}

func TestSimSetFloatParameter(t *testing.T) {
	s := NewSim(DefaultConfig())
	require.True(t, s.SetFloatParameter("diffusion", 0.9))
	c, err := s.Grid().At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, c.Diffusion, 1e-12)

	require.True(t, s.SetFloatParameter("opacity", -1))
	c, _ = s.Grid().At(0, 0)
	assert.Zero(t, c.Opacity)
	assert.False(t, s.SetFloatParameter("intensity", 1))
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["flux"]
	require.True(t, ok)
	sim := factory(map[string]string{"w": "10", "h": "7"})
	assert.Equal(t, "flux", sim.Name())
	assert.Equal(t, core.Size{W: 10, H: 7}, sim.Size())
}
