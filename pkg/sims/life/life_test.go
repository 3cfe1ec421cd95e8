package life

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta-ca/pkg/automaton"
	"meta-ca/pkg/core"
)

func mustParse(t *testing.T, rows ...string) Grid {
	t.Helper()
	g, err := Parse(rows...)
	require.NoError(t, err)
	return g
}

func TestBlinkerOscillation(t *testing.T) {
	start := mustParse(t,
		".....",
		"..O..",
		"..O..",
		"..O..",
		".....",
	)

	g := start.GlobalTransition()
	want := mustParse(t,
		".....",
		".....",
		".OOO.",
		".....",
		".....",
	)
	if !g.Equal(want) {
		t.Fatalf("after first step:\n%s\nwant:\n%s", g, want)
	}
	if g.Activity() != 4 {
		t.Fatalf("activity = %d, want 4", g.Activity())
	}

	g = g.GlobalTransition()
	if !g.Equal(start) {
		t.Fatalf("after second step:\n%s\nwant:\n%s", g, start)
	}
}

func TestIsolatedCellDies(t *testing.T) {
	g := mustParse(t,
		"...",
		".O.",
		"...",
	).GlobalTransition()
	assert.Equal(t, 0, g.Population())
	assert.Equal(t, 1, g.Activity())
}

func TestBlockIsStill(t *testing.T) {
	start := mustParse(t,
		"....",
		".OO.",
		".OO.",
		"....",
	)
	g := start.GlobalTransition()
	assert.True(t, g.Equal(start))
	assert.Equal(t, 0, g.Activity())
}

func TestBlockInCornerIsStill(t *testing.T) {
	start := mustParse(t,
		"OO.",
		"OO.",
		"...",
	)
	assert.True(t, start.GlobalTransition().Equal(start))
}

func TestSingleCellGrid(t *testing.T) {
	g := New(1, 1)
	require.NoError(t, g.TurnOn(0, 0))
	next := g.GlobalTransition()
	s, err := next.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Off, s)
	assert.Equal(t, 1, next.Activity())
}

func TestLocalTransitionRule(t *testing.T) {
	on, off := On, Off
	cases := []struct {
		name      string
		self      State
		neighbors []*State
		want      State
	}{
		{"none", On, nil, Off},
		{"one", On, []*State{&on}, Off},
		{"two keeps on", On, []*State{&on, &on, &off}, On},
		{"two keeps off", Off, []*State{&on, &on}, Off},
		{"three births", Off, []*State{&on, &on, &on, &off}, On},
		{"four kills", On, []*State{&on, &on, &on, &on}, Off},
		{"short list", Off, []*State{&on, &on, &off, &off, &on, &off, &off}, On},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.self.LocalTransition(tc.neighbors))
		})
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(24, 16, core.NewRNG(5).Source())
	b := Random(24, 16, core.NewRNG(5).Source())
	require.True(t, a.Equal(b))

	for i := 0; i < 10; i++ {
		a, b = a.GlobalTransition(), b.GlobalTransition()
		require.True(t, a.Equal(b), "step %d", i)
		require.Equal(t, a.Activity(), b.Activity())
	}
}

func TestActivityBounds(t *testing.T) {
	g := Random(20, 20, core.NewRNG(11).Source())
	for i := 0; i < 30; i++ {
		next := g.GlobalTransition()
		require.Equal(t, g.Width(), next.Width())
		require.Equal(t, g.Height(), next.Height())
		require.GreaterOrEqual(t, next.Activity(), 0)
		require.LessOrEqual(t, next.Activity(), g.Width()*g.Height())
		require.Equal(t, next.Activity() == 0, next.Equal(g))
		g = next
	}
}

func TestLeadsAndGating(t *testing.T) {
	quiet := mustParse(t, "...", ".O.", "...")
	busy := mustParse(t, "...", ".O.", "...").GlobalTransition()
	require.Equal(t, 1, busy.Activity())

	assert.True(t, quiet.Leads(nil), "empty neighborhood leads")
	assert.False(t, quiet.Leads([]*Grid{&busy}))
	assert.True(t, busy.Leads([]*Grid{&quiet, &busy}))

	held := quiet.LocalTransition([]*Grid{&busy})
	assert.True(t, held.Equal(quiet))
	assert.Equal(t, quiet.Activity(), held.Activity())

	stepped := quiet.LocalTransition(nil)
	assert.Equal(t, 0, stepped.Population())
}

func TestLocalTransitionDoesNotAlias(t *testing.T) {
	quiet := New(2, 2)
	busy := mustParse(t, "O.", "..").GlobalTransition()

	held := quiet.LocalTransition([]*Grid{&busy})
	require.NoError(t, held.TurnOn(0, 0))

	s, err := quiet.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Off, s)
}

func TestCopiesAreSeparateSnapshots(t *testing.T) {
	g := mustParse(t, "...", ".O.", "...")
	h := g
	require.NoError(t, h.TurnOn(0, 0))
	require.NoError(t, h.Toggle(1, 1))
	require.NoError(t, h.Set(2, 2, On))

	assert.True(t, g.Equal(mustParse(t, "...", ".O.", "...")), "original changed:\n%s", g)
	assert.True(t, h.Equal(mustParse(t, "O..", "...", "..O")), "copy:\n%s", h)
}

func TestStimulusBounds(t *testing.T) {
	g := New(3, 2)
	assert.ErrorIs(t, g.TurnOn(3, 0), automaton.ErrOutOfBounds)
	assert.ErrorIs(t, g.Toggle(0, -1), automaton.ErrOutOfBounds)
	assert.ErrorIs(t, g.Set(0, 2, On), automaton.ErrOutOfBounds)

	require.NoError(t, g.Toggle(1, 1))
	require.NoError(t, g.Toggle(2, 1))
	require.NoError(t, g.Toggle(2, 1))
	assert.Equal(t, "···\n·O·", g.String())
}

func TestFromStatesAndParseErrors(t *testing.T) {
	_, err := FromStates(2, 2, []State{On})
	assert.True(t, errors.Is(err, automaton.ErrCellCount))

	_, err = Parse("..", "...")
	assert.ErrorIs(t, err, automaton.ErrCellCount)

	_, err = Parse("x")
	assert.Error(t, err)

	g, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 0, g.Width())
}
