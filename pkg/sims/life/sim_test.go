package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta-ca/pkg/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "10", "h": "-3", "pattern": "glider"})
	assert.Equal(t, 10, c.Width)
	assert.Equal(t, DefaultConfig().Height, c.Height)
	assert.Equal(t, PatternGlider, c.Pattern)

	c = FromMap(map[string]string{"pattern": "spaceship", "w": "abc"})
	assert.Equal(t, DefaultConfig(), c)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestSimResetDeterministic(t *testing.T) {
	s := NewSim(Config{Width: 16, Height: 12, Pattern: PatternRandom})
	s.Reset(3)
	first := append([]uint8(nil), s.Cells()...)
	s.Step()
	s.Reset(3)
	require.Equal(t, first, s.Cells())

	s.Reset(4)
	assert.NotEqual(t, first, s.Cells())
}

func TestSimGliderTravels(t *testing.T) {
	s := NewSim(Config{Width: 8, Height: 8, Pattern: PatternGlider})
	s.Reset(0)
	require.Equal(t, 5, s.Grid().Population())
	for i := 0; i < 4; i++ {
		s.Step()
	}
	want, err := Parse(
		"........",
		"...O....",
		".O.O....",
		"..OO....",
		"........",
		"........",
		"........",
		"........",
	)
	require.NoError(t, err)
	require.True(t, s.Grid().Equal(want), "got:\n%s", s.Grid())

	stats := s.Stats()
	require.Len(t, stats, 3)
	assert.Equal(t, core.Stat{Label: "Step", Value: "4"}, stats[0])
}

func TestSimStimulate(t *testing.T) {
	s := NewSim(Config{Width: 4, Height: 4, Pattern: PatternBlock})
	s.Reset(0)
	require.NoError(t, s.Stimulate(0, 0))
	assert.Equal(t, uint8(1), s.Cells()[0])
	assert.Error(t, s.Stimulate(4, 0))
}

func TestRegistered(t *testing.T) {
	f, ok := core.Sims()["life"]
	require.True(t, ok)
	sim := f(map[string]string{"w": "5", "h": "6"})
	assert.Equal(t, core.Size{W: 5, H: 6}, sim.Size())
}
