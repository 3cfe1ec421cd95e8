package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta-ca/pkg/automaton"
	"meta-ca/pkg/core"
	"meta-ca/pkg/sims/life"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "3", "sub": "5", "sub_h": "7"})
	assert.Equal(t, Config{Width: 3, Height: 4, SubWidth: 5, SubHeight: 7}, c)
	assert.Equal(t, DefaultConfig(), FromMap(map[string]string{"h": "0"}))
}

func TestSimRasterLayout(t *testing.T) {
	s := NewSim(Config{Width: 2, Height: 1, SubWidth: 3, SubHeight: 2})
	require.Equal(t, core.Size{W: 9, H: 4}, s.Size())

	cells := s.Cells()
	for x := 0; x < 9; x++ {
		assert.Equal(t, pixelRule, cells[x], "top rule x=%d", x)
		assert.Equal(t, pixelRule, cells[3*9+x], "bottom rule x=%d", x)
	}
	for _, x := range []int{0, 4, 8} {
		assert.Equal(t, pixelRule, cells[9+x], "vertical rule x=%d", x)
	}

	require.NoError(t, s.Stimulate(6, 2))
	sub, err := s.Grid().At(1, 0)
	require.NoError(t, err)
	st, err := sub.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, life.On, st)
	assert.Equal(t, pixelOn, s.Cells()[2*9+6])

	assert.ErrorIs(t, s.Stimulate(4, 1), automaton.ErrOutOfBounds)
	assert.ErrorIs(t, s.Stimulate(12, 1), automaton.ErrOutOfBounds)
	assert.Len(t, s.Palette(), 4)
}

func TestSimStepMarksLeaders(t *testing.T) {
	s := NewSim(Config{Width: 1, Height: 1, SubWidth: 5, SubHeight: 5})
	for _, p := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		require.NoError(t, s.Stimulate(1+p[0], 1+p[1]))
	}
	s.Step()

	// A lone tile always passes the gate, so its live cells use the leader color.
	for _, x := range []int{2, 3, 4} {
		assert.Equal(t, pixelLeader, s.Cells()[3*7+x])
	}
	stats := s.Stats()
	assert.Equal(t, core.Stat{Label: "Activity", Value: "4"}, stats[1])
}

func TestSimResetDeterministic(t *testing.T) {
	s := NewSim(Config{Width: 3, Height: 2, SubWidth: 4, SubHeight: 4})
	s.Reset(9)
	first := append([]uint8(nil), s.Cells()...)
	s.Step()
	s.Reset(9)
	assert.Equal(t, first, s.Cells())
}

func TestSimActivityMask(t *testing.T) {
	s := NewSim(Config{Width: 2, Height: 1, SubWidth: 3, SubHeight: 3})
	for _, m := range s.ActivityMask() {
		require.Zero(t, m)
	}
	for y := 1; y <= 3; y++ {
		require.NoError(t, s.Stimulate(2, y))
	}
	s.Step()

	mask := s.ActivityMask()
	require.Len(t, mask, 9*5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 9; x++ {
			want := float32(0)
			if x >= 1 && x <= 3 && y >= 1 && y <= 3 {
				want = 1
			}
			assert.Equal(t, want, mask[y*9+x], "pixel (%d,%d)", x, y)
		}
	}
}
