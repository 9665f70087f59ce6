package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/piwi3910/menace/internal/model"
)

// PoseGrid produces the full discretized pose set for a board: the
// Cartesian product of NX evenly spaced x-offsets in [0, width], NY
// y-offsets in [0, height] and NTheta angles in [0, 2*pi). Enumeration
// order is x-major, then y, then theta; the search's lexicographic
// candidate order follows from it.
func PoseGrid(width, height float64, res model.Resolution) []model.Pose {
	xs := span(0, width, res.NX)
	ys := span(0, height, res.NY)
	thetas := angles(res.NTheta)
	return crossProduct(xs, ys, thetas)
}

// QuadrantPoseGrid produces the symmetry-reduced pose set used for the
// first piece: only the first half of the x and y offsets, all angles.
// If a solution exists at all, the rectangular board's symmetry group
// lets the first piece's translation be fixed to one quadrant; this is a
// documented heuristic, not a proven reduction.
func QuadrantPoseGrid(width, height float64, res model.Resolution) []model.Pose {
	xs := span(0, width, res.NX)
	ys := span(0, height, res.NY)
	return crossProduct(xs[:res.NX/2], ys[:res.NY/2], angles(res.NTheta))
}

func crossProduct(xs, ys, thetas []float64) []model.Pose {
	poses := make([]model.Pose, 0, len(xs)*len(ys)*len(thetas))
	for _, x := range xs {
		for _, y := range ys {
			for _, theta := range thetas {
				poses = append(poses, model.Pose{X: x, Y: y, Theta: theta})
			}
		}
	}
	return poses
}

// span returns n evenly spaced values over [lo, hi], endpoints included.
func span(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// angles returns n evenly spaced angles over the half-open [0, 2*pi).
func angles(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	return out
}
