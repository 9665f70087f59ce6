// Package model holds the data types shared across the solver: pieces,
// poses, the board placement stack, puzzle definitions and solutions.
package model

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/piwi3910/menace/internal/geom"
)

// Pose is a rigid transform applied to a piece's reference polygon:
// translate by (X, Y), then rotate by Theta radians about the piece's
// local origin, so the piece pivots in place at (X, Y) rather than
// swinging around the board corner.
type Pose struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

// DegString formats a pose with the angle in degrees for reporting.
func (p Pose) DegString() string {
	return fmt.Sprintf("(%.2f, %.2f, %.1f deg)", p.X, p.Y, p.Theta*180/math.Pi)
}

// Piece is a named rigid shape. Reference is immutable; the transformed
// polygon is always recomputed fresh from it so repeated transforms never
// accumulate drift.
type Piece struct {
	ID        string       `json:"id"`
	Label     string       `json:"label"`
	Reference geom.Polygon `json:"reference"`
}

// NewPiece creates a piece from its reference polygon.
func NewPiece(label string, reference geom.Polygon) Piece {
	return Piece{
		ID:        uuid.New().String()[:8],
		Label:     label,
		Reference: reference.Clone(),
	}
}

// At returns the reference polygon under the given pose. Rotating the
// reference about its own origin first and translating second is the
// same transform as translating first and rotating about (X, Y).
func (p Piece) At(pose Pose) geom.Polygon {
	return p.Reference.Rotate(pose.Theta).Translate(pose.X, pose.Y)
}

// Validate checks that the piece can participate in a solve.
func (p Piece) Validate() error {
	if len(p.Reference) < 3 {
		return fmt.Errorf("piece %q: polygon needs at least 3 vertices, got %d", p.Label, len(p.Reference))
	}
	if p.Reference.Area() <= 0 {
		return fmt.Errorf("piece %q: polygon has zero area", p.Label)
	}
	return nil
}

// Resolution controls the discretization of the continuous placement
// space: NX x-offsets in [0, W], NY y-offsets in [0, H] and NTheta angles
// in [0, 2*pi).
type Resolution struct {
	NX     int `json:"nx"`
	NY     int `json:"ny"`
	NTheta int `json:"ntheta"`

	// FullFirstPiece disables the quadrant restriction for the first
	// piece. The restriction is a heuristic justified by the rectangular
	// board's symmetry; disable it to verify a specific instance.
	FullFirstPiece bool `json:"full_first_piece,omitempty"`
}

// DefaultResolution returns the grid the built-in dissection puzzle is
// solved on.
func DefaultResolution() Resolution {
	return Resolution{NX: 10, NY: 10, NTheta: 20}
}

// Validate checks the resolution counts.
func (r Resolution) Validate() error {
	if r.NX < 1 || r.NY < 1 || r.NTheta < 1 {
		return fmt.Errorf("resolution counts must be at least 1, got nx=%d ny=%d ntheta=%d", r.NX, r.NY, r.NTheta)
	}
	return nil
}

// Puzzle ties a board, its piece set and a search resolution together for
// solving and save/load.
type Puzzle struct {
	Name       string     `json:"name"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Pieces     []Piece    `json:"pieces"`
	Resolution Resolution `json:"resolution"`
}

// Validate fails fast on configurations the search cannot run on.
func (p Puzzle) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %.2f x %.2f", p.Width, p.Height)
	}
	if len(p.Pieces) == 0 {
		return fmt.Errorf("puzzle %q has no pieces", p.Name)
	}
	for _, piece := range p.Pieces {
		if err := piece.Validate(); err != nil {
			return err
		}
	}
	return p.Resolution.Validate()
}

// Solution records a solved board for rendering and persistence.
type Solution struct {
	ID       string      `json:"id"`
	Puzzle   string      `json:"puzzle"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Placed   []Placement `json:"placed"`
	SolvedAt time.Time   `json:"solved_at"`
}

// NewSolution snapshots a solved board. The placement slice is copied so
// the solution stays valid after the board is reused.
func NewSolution(puzzleName string, board *Board) Solution {
	placed := make([]Placement, len(board.Placements))
	copy(placed, board.Placements)
	return Solution{
		ID:       uuid.New().String()[:8],
		Puzzle:   puzzleName,
		Width:    board.Width,
		Height:   board.Height,
		Placed:   placed,
		SolvedAt: time.Now().UTC(),
	}
}

// CoveredArea returns the total area of the placed pieces.
func (s Solution) CoveredArea() float64 {
	var total float64
	for _, pl := range s.Placed {
		total += pl.Polygon.Area()
	}
	return total
}

// Coverage returns the fraction of the board area covered by pieces.
func (s Solution) Coverage() float64 {
	boardArea := s.Width * s.Height
	if boardArea == 0 {
		return 0
	}
	return s.CoveredArea() / boardArea
}
