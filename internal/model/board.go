package model

import (
	"fmt"

	"github.com/piwi3910/menace/internal/geom"
)

// Placement is one piece placed on the board at a pose, with the
// transformed polygon cached for overlap checks and rendering.
type Placement struct {
	Piece   Piece        `json:"piece"`
	Pose    Pose         `json:"pose"`
	Polygon geom.Polygon `json:"polygon"`
}

// Board is the fixed rectangular region plus the ordered sequence of
// placed pieces. The sequence doubles as the search's backtracking stack:
// insertion order is placement order is search depth, and Clear truncates
// back to a prefix. A Board must not be shared between concurrent solves.
type Board struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Placements []Placement `json:"placements"`
}

// NewBoard creates an empty board. Dimensions must be positive.
func NewBoard(width, height float64) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("board dimensions must be positive, got %.2f x %.2f", width, height)
	}
	return &Board{Width: width, Height: height}, nil
}

// ProbePlacement reports whether the piece at the given pose would be a
// valid placement: fully inside the board boundary and not overlapping
// any piece already placed. The board is not modified.
func (b *Board) ProbePlacement(piece Piece, pose Pose) bool {
	poly := piece.At(pose)
	if !geom.InRect(poly, b.Width, b.Height) {
		return false
	}
	for _, other := range b.Placements {
		if geom.Overlaps(poly, other.Polygon) {
			return false
		}
	}
	return true
}

// CommitPlacement appends the piece at the given pose unconditionally.
// Callers that have not probed first are responsible for retracting an
// invalid placement with Clear before relying on the board again.
func (b *Board) CommitPlacement(piece Piece, pose Pose) {
	b.Placements = append(b.Placements, Placement{
		Piece:   piece,
		Pose:    pose,
		Polygon: piece.At(pose),
	})
}

// Place probes and, if valid, commits. Returns whether the piece was
// placed.
func (b *Board) Place(piece Piece, pose Pose) bool {
	if !b.ProbePlacement(piece, pose) {
		return false
	}
	b.CommitPlacement(piece, pose)
	return true
}

// Clear truncates the placement sequence so that exactly the entries at
// index 0..depth remain. Clear(-1) empties the board. A no-op if the
// sequence is already that short.
func (b *Board) Clear(depth int) {
	keep := depth + 1
	if keep < 0 {
		keep = 0
	}
	if keep < len(b.Placements) {
		b.Placements = b.Placements[:keep]
	}
}

// Depth returns the number of placed pieces.
func (b *Board) Depth() int {
	return len(b.Placements)
}

// UsedArea returns the total area of the placed pieces.
func (b *Board) UsedArea() float64 {
	var total float64
	for _, p := range b.Placements {
		total += p.Polygon.Area()
	}
	return total
}

// Efficiency returns the board coverage percentage.
func (b *Board) Efficiency() float64 {
	area := b.Width * b.Height
	if area == 0 {
		return 0
	}
	return b.UsedArea() / area * 100.0
}
