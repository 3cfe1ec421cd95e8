package automaton

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta-ca/internal/parallel"
)

// count becomes the number of neighbors it was handed.
type count int

func (c count) LocalTransition(neighbors []*count) count { return count(len(neighbors)) }

// marker becomes the sum of its neighbors' values.
type marker int

func (m marker) LocalTransition(neighbors []*marker) marker {
	var sum marker
	for _, n := range neighbors {
		sum += *n
	}
	return sum
}

func TestDropEdgeNeighborCounts(t *testing.T) {
	g := New[count](4, 3, Moore).GlobalTransition()

	want := []count{
		3, 5, 5, 3,
		5, 8, 8, 5,
		3, 5, 5, 3,
	}
	if diff := cmp.Diff(want, g.Cells()); diff != "" {
		t.Fatalf("neighbor counts mismatch (-want +got):\n%s", diff)
	}
}

func TestBorderEdgeAlwaysFull(t *testing.T) {
	for _, hood := range []Neighborhood{Radial, VonNeumann} {
		g := New[count](3, 2, hood).GlobalTransition()
		for i, c := range g.Cells() {
			require.Equal(t, count(hood.Size()), c, "cell %d", i)
		}
	}
}

func TestBorderCellIsSubstituted(t *testing.T) {
	g := New[marker](1, 1, VonNeumann).WithBorder(7)
	next := g.GlobalTransition()
	got, err := next.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, marker(28), got)
}

func TestRowsDoNotWrap(t *testing.T) {
	g := New[marker](3, 2, Moore)
	require.NoError(t, g.Set(2, 0, 1))

	next := g.GlobalTransition()
	got, err := next.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, marker(0), got, "left edge of row 1 must not see the right edge of row 0")
}

func TestRadialSlotsFaceEachOther(t *testing.T) {
	for s, o := range Radial.Offsets {
		opp := Radial.Offsets[(s+4)%8]
		require.Equal(t, Offset{-o.DX, -o.DY}, opp, "slot %d", s)
	}
}

func TestTransitionLeavesReceiverUntouched(t *testing.T) {
	g := New[marker](3, 3, Moore)
	require.NoError(t, g.Set(1, 1, 1))
	before := append([]marker(nil), g.Cells()...)

	next := g.GlobalTransition()

	require.Equal(t, before, g.Cells())
	require.Equal(t, g.Width(), next.Width())
	require.Equal(t, g.Height(), next.Height())
	require.Equal(t, marker(0), next.Cells()[4])
	require.Equal(t, marker(1), next.Cells()[0])
}

func TestParallelMatchesSequential(t *testing.T) {
	defer parallel.SetWorkers(parallel.Workers())

	g := Generate(37, 29, Moore, func(x, y int) marker { return marker((x*7 + y*13) % 5) })

	parallel.SetWorkers(1)
	seq := g.GlobalTransition().GlobalTransition()
	parallel.SetWorkers(8)
	par := g.GlobalTransition().GlobalTransition()

	if diff := cmp.Diff(seq.Cells(), par.Cells()); diff != "" {
		t.Fatalf("parallel result differs (-seq +par):\n%s", diff)
	}
}

func TestFromCellsRejectsBadCount(t *testing.T) {
	_, err := FromCells(3, 3, make([]marker, 8), Moore)
	require.True(t, errors.Is(err, ErrCellCount))

	_, err = FromCells[marker](-1, 0, nil, Moore)
	require.ErrorIs(t, err, ErrCellCount)

	g, err := FromCells(2, 2, []marker{1, 2, 3, 4}, Moore)
	require.NoError(t, err)
	require.Equal(t, 4, g.Len())
}

func TestFromCellsCopiesInput(t *testing.T) {
	src := []marker{1, 2}
	g, err := FromCells(2, 1, src, Moore)
	require.NoError(t, err)
	src[0] = 9
	require.Equal(t, marker(1), g.Cells()[0])
}

func TestBoundsChecks(t *testing.T) {
	g := New[marker](2, 2, Moore)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		require.ErrorIs(t, g.Set(p[0], p[1], 1), ErrOutOfBounds)
		_, err := g.At(p[0], p[1])
		require.ErrorIs(t, err, ErrOutOfBounds)
		_, err = g.Neighbors(p[0], p[1])
		require.ErrorIs(t, err, ErrOutOfBounds)
	}
	require.ErrorIs(t, g.SetIndex(4, 1), ErrOutOfBounds)
	_, err := g.AtIndex(-1)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestCloneIsIndependent(t *testing.T) {
	g := New[marker](2, 1, Moore)
	c := g.Clone()
	require.NoError(t, c.Set(0, 0, 5))
	require.Equal(t, marker(0), g.Cells()[0])
}

func TestSetLeavesCopiesUntouched(t *testing.T) {
	g := New[marker](2, 2, Moore)
	snap := g
	require.NoError(t, g.Set(1, 1, 7))
	require.NoError(t, g.SetIndex(0, 3))

	assert.Equal(t, []marker{3, 0, 0, 7}, g.Cells())
	assert.Equal(t, []marker{0, 0, 0, 0}, snap.Cells())
}

func TestEmptyGrid(t *testing.T) {
	g := New[marker](0, 0, Moore)
	next := g.GlobalTransition()
	require.Equal(t, 0, next.Len())

	neg := New[marker](-3, 2, Moore)
	require.Equal(t, 0, neg.Width())
	require.Equal(t, 0, neg.Len())
}
