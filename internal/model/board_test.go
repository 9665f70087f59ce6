package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/menace/internal/geom"
)

func squarePiece(label string, size float64) Piece {
	return NewPiece(label, geom.Polygon{
		{X: 0, Y: 0}, {X: size, Y: 0}, {X: size, Y: size}, {X: 0, Y: size},
	})
}

func TestNewBoard_Validation(t *testing.T) {
	_, err := NewBoard(0, 100)
	assert.Error(t, err)
	_, err = NewBoard(100, -5)
	assert.Error(t, err)

	b, err := NewBoard(100, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Depth())
}

func TestProbePlacement_Boundary(t *testing.T) {
	b, err := NewBoard(100, 100)
	require.NoError(t, err)
	p := squarePiece("sq", 40)

	assert.True(t, b.ProbePlacement(p, Pose{X: 0, Y: 0}))
	assert.True(t, b.ProbePlacement(p, Pose{X: 60, Y: 60}), "touching the far edges is allowed")
	assert.False(t, b.ProbePlacement(p, Pose{X: 70, Y: 0}), "sticks out on the right")
	assert.False(t, b.ProbePlacement(p, Pose{X: -1, Y: 0}))
	assert.Equal(t, 0, b.Depth(), "probe never mutates")
}

func TestProbePlacement_Overlap(t *testing.T) {
	b, err := NewBoard(100, 100)
	require.NoError(t, err)
	p := squarePiece("sq", 40)

	require.True(t, b.Place(p, Pose{X: 0, Y: 0}))
	assert.False(t, b.ProbePlacement(squarePiece("other", 40), Pose{X: 20, Y: 20}))
	assert.True(t, b.ProbePlacement(squarePiece("other", 40), Pose{X: 40, Y: 0}),
		"abutting the placed piece is allowed")
}

func TestPlace_InvalidDoesNotMutate(t *testing.T) {
	b, err := NewBoard(50, 50)
	require.NoError(t, err)
	p := squarePiece("sq", 40)

	require.True(t, b.Place(p, Pose{X: 0, Y: 0}))
	assert.False(t, b.Place(squarePiece("other", 40), Pose{X: 5, Y: 5}))
	assert.Equal(t, 1, b.Depth())
}

func TestCommitPlacement_Unconditional(t *testing.T) {
	b, err := NewBoard(50, 50)
	require.NoError(t, err)
	p := squarePiece("sq", 40)

	b.CommitPlacement(p, Pose{X: 0, Y: 0})
	b.CommitPlacement(p, Pose{X: 5, Y: 5}) // overlapping, committed anyway
	assert.Equal(t, 2, b.Depth())

	// The caller retracts the invalid entry.
	b.Clear(0)
	assert.Equal(t, 1, b.Depth())
}

func TestClear_Truncation(t *testing.T) {
	b, err := NewBoard(200, 200)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.True(t, b.Place(squarePiece("sq", 40), Pose{X: float64(i) * 45, Y: 0}))
	}

	b.Clear(5)
	assert.Equal(t, 4, b.Depth(), "clearing beyond length is a no-op")
	b.Clear(2)
	assert.Equal(t, 3, b.Depth())
	b.Clear(2)
	assert.Equal(t, 3, b.Depth(), "clearing to current length is a no-op")
	b.Clear(-1)
	assert.Equal(t, 0, b.Depth())
}

func TestClear_ReplacementIsDeterministic(t *testing.T) {
	b, err := NewBoard(200, 200)
	require.NoError(t, err)
	p := squarePiece("sq", 40)
	pose := Pose{X: 30, Y: 20, Theta: 0.3}

	require.True(t, b.Place(p, pose))
	first := b.Placements[0].Polygon.Clone()

	b.Clear(-1)
	require.True(t, b.Place(p, pose))
	assert.Equal(t, first, b.Placements[0].Polygon,
		"re-placing the same piece and pose reproduces the identical polygon")
}

func TestBoard_NonOverlapInvariant(t *testing.T) {
	b, err := NewBoard(100, 100)
	require.NoError(t, err)
	for _, pose := range []Pose{
		{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 0, Y: 50}, {X: 50, Y: 50},
	} {
		require.True(t, b.Place(squarePiece("sq", 50), pose))
	}

	for i := range b.Placements {
		for j := i + 1; j < len(b.Placements); j++ {
			assert.False(t, geom.Overlaps(b.Placements[i].Polygon, b.Placements[j].Polygon))
		}
	}
	assert.InDelta(t, 100.0, b.Efficiency(), 1e-9)
}

func TestUsedArea(t *testing.T) {
	b, err := NewBoard(100, 100)
	require.NoError(t, err)
	require.True(t, b.Place(squarePiece("sq", 40), Pose{}))
	assert.InDelta(t, 1600.0, b.UsedArea(), 1e-9)
	assert.InDelta(t, 16.0, b.Efficiency(), 1e-9)
}
