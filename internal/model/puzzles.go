package model

import "github.com/piwi3910/menace/internal/geom"

// Unit is the edge length of the dissection grid the Martin's Menace
// pieces are built on: 0.75 inch in millimeters.
const Unit = 19.05

// menacePolygon builds a polygon from vertex coordinates expressed in
// multiples of Unit.
func menacePolygon(coords ...float64) geom.Polygon {
	poly := make(geom.Polygon, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		poly = append(poly, geom.Point2D{X: coords[i] * Unit, Y: coords[i+1] * Unit})
	}
	return poly
}

// BuiltinPuzzles are the puzzle definitions shipped with the solver.
var BuiltinPuzzles = []Puzzle{
	{
		// The classic four-piece packing puzzle: a 5.8 x 3.8 inch tray
		// and four awkward hexomino-style pieces.
		Name:   "martins-menace",
		Width:  147.32,
		Height: 96.52,
		Pieces: []Piece{
			NewPiece("red", menacePolygon(
				0, 0, 1, 0, 1, 1, 4, 1, 4, 2,
				3, 2, 3, 3, 2, 3, 2, 2, 0, 2,
			)),
			NewPiece("blue", menacePolygon(
				0, 0, 4, 0, 4, 1, 3, 1, 3, 2,
				2, 2, 2, 1, 0, 1,
			)),
			NewPiece("green", menacePolygon(
				0, 0, 3, 0, 3, 1, 2, 1, 2, 3,
				1, 3, 1, 1, 0, 1,
			)),
			NewPiece("yellow", menacePolygon(
				0, 0, 2, 0, 2, 2, 3, 2, 3, 3,
				1, 3, 1, 1, 0, 1,
			)),
		},
		Resolution: Resolution{NX: 10, NY: 10, NTheta: 20},
	},
	{
		// Four squares tiling a square tray. Solvable in well under a
		// second; useful as a smoke test and a demo.
		Name:   "quarters",
		Width:  100,
		Height: 100,
		Pieces: []Piece{
			NewPiece("a", geom.Polygon{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 0, Y: 50}}),
			NewPiece("b", geom.Polygon{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 0, Y: 50}}),
			NewPiece("c", geom.Polygon{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 0, Y: 50}}),
			NewPiece("d", geom.Polygon{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 0, Y: 50}}),
		},
		Resolution: Resolution{NX: 5, NY: 5, NTheta: 4},
	},
	{
		// A single triangle on a roomy board; the search succeeds on its
		// very first candidate pose.
		Name:   "triangle",
		Width:  100,
		Height: 100,
		Pieces: []Piece{
			NewPiece("tri", geom.Polygon{{X: 0, Y: 0}, {X: 12, Y: 12}, {X: 12, Y: 0}}),
		},
		Resolution: Resolution{NX: 10, NY: 10, NTheta: 8},
	},
}

// GetPuzzle returns a built-in puzzle by name.
func GetPuzzle(name string) (Puzzle, bool) {
	for _, p := range BuiltinPuzzles {
		if p.Name == name {
			return p, true
		}
	}
	return Puzzle{}, false
}

// PuzzleNames returns the names of all built-in puzzles.
func PuzzleNames() []string {
	names := make([]string, 0, len(BuiltinPuzzles))
	for _, p := range BuiltinPuzzles {
		names = append(names, p.Name)
	}
	return names
}
