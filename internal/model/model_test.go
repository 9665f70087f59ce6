package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/menace/internal/geom"
)

func TestPieceAt_PivotsAboutLocalOrigin(t *testing.T) {
	p := NewPiece("sq", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})

	got := p.At(Pose{X: 3, Y: 4, Theta: math.Pi / 2})
	assert.InDelta(t, 3, got[0].X, 1e-12)
	assert.InDelta(t, 4, got[0].Y, 1e-12)
	assert.InDelta(t, 3, got[1].X, 1e-12)
	assert.InDelta(t, 5, got[1].Y, 1e-12)
	assert.InDelta(t, 2, got[2].X, 1e-12)
	assert.InDelta(t, 5, got[2].Y, 1e-12)

	// The vertex at the piece's local origin lands on (X, Y) no matter
	// the angle: the piece pivots in place, it does not orbit the
	// board corner.
	for _, theta := range []float64{0, 0.3, math.Pi / 2, math.Pi, 5.1} {
		got := p.At(Pose{X: 3, Y: 4, Theta: theta})
		assert.InDelta(t, 3, got[0].X, 1e-12)
		assert.InDelta(t, 4, got[0].Y, 1e-12)
	}
}

func TestPieceAt_AlwaysFromReference(t *testing.T) {
	p := NewPiece("sq", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})

	a := p.At(Pose{X: 3, Y: 4, Theta: 0.7})
	p.At(Pose{X: 100, Y: 100, Theta: 2.0})
	b := p.At(Pose{X: 3, Y: 4, Theta: 0.7})
	assert.Equal(t, a, b, "transforms never compose with previous results")
}

func TestPieceValidate(t *testing.T) {
	assert.Error(t, NewPiece("two", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}).Validate())
	assert.Error(t, NewPiece("flat", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}).Validate(),
		"collinear vertices have zero area")
	assert.NoError(t, NewPiece("tri", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}).Validate())
}

func TestResolutionValidate(t *testing.T) {
	assert.NoError(t, DefaultResolution().Validate())
	assert.Error(t, Resolution{NX: 0, NY: 10, NTheta: 20}.Validate())
	assert.Error(t, Resolution{NX: 10, NY: 10, NTheta: 0}.Validate())
}

func TestPuzzleValidate(t *testing.T) {
	p := Puzzle{
		Name: "bad", Width: -1, Height: 10,
		Pieces:     []Piece{NewPiece("tri", geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})},
		Resolution: DefaultResolution(),
	}
	assert.Error(t, p.Validate())

	p.Width = 10
	assert.NoError(t, p.Validate())

	p.Pieces = nil
	assert.Error(t, p.Validate())
}

func TestBuiltinPuzzles(t *testing.T) {
	require.NotEmpty(t, BuiltinPuzzles)
	for _, p := range BuiltinPuzzles {
		assert.NoError(t, p.Validate(), p.Name)
	}

	menace, ok := GetPuzzle("martins-menace")
	require.True(t, ok)
	assert.Len(t, menace.Pieces, 4)
	assert.InDelta(t, 147.32, menace.Width, 1e-9)
	assert.InDelta(t, 96.52, menace.Height, 1e-9)

	// Every piece is a whole number of grid squares.
	for _, piece := range menace.Pieces {
		units := piece.Reference.Area() / (Unit * Unit)
		assert.InDelta(t, math.Round(units), units, 1e-9, piece.Label)
		assert.Greater(t, units, 4.0, piece.Label)
	}

	_, ok = GetPuzzle("no-such-puzzle")
	assert.False(t, ok)

	assert.Contains(t, PuzzleNames(), "quarters")
}

func TestSolutionSnapshot(t *testing.T) {
	b, err := NewBoard(100, 100)
	require.NoError(t, err)
	require.True(t, b.Place(squarePiece("sq", 50), Pose{X: 0, Y: 0}))

	sol := NewSolution("quarters", b)
	require.Len(t, sol.Placed, 1)
	assert.NotEmpty(t, sol.ID)
	assert.InDelta(t, 0.25, sol.Coverage(), 1e-9)

	// Mutating the board afterwards must not affect the snapshot.
	b.Clear(-1)
	assert.Len(t, sol.Placed, 1)
}

func TestSolutionJSONRoundTrip(t *testing.T) {
	b, err := NewBoard(100, 100)
	require.NoError(t, err)
	require.True(t, b.Place(squarePiece("sq", 50), Pose{X: 25, Y: 0, Theta: 0}))
	sol := NewSolution("quarters", b)

	data, err := json.Marshal(sol)
	require.NoError(t, err)

	var got Solution
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sol.Puzzle, got.Puzzle)
	require.Len(t, got.Placed, 1)
	assert.Equal(t, sol.Placed[0].Pose, got.Placed[0].Pose)
	assert.Equal(t, sol.Placed[0].Polygon, got.Placed[0].Polygon)
}

func TestPoseDegString(t *testing.T) {
	s := Pose{X: 1, Y: 2, Theta: math.Pi}.DegString()
	assert.Contains(t, s, "180.0")
}
