// Package engine implements the pose search: discretization of the
// placement space, per-piece boundary pre-filtering and the ordered
// backtracking search over the pieces.
package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/piwi3910/menace/internal/geom"
	"github.com/piwi3910/menace/internal/model"
)

// Progress is called once per candidate pose with the current search
// depth, the candidate's index and the candidate count at that depth.
// Purely observational. When the solver runs with multiple workers the
// callback may be invoked concurrently.
type Progress func(depth, index, total int)

// Solver runs the backtracking pose search.
type Solver struct {
	// Workers sets how many depth-0 subtrees are searched concurrently.
	// Values below 2 keep the search strictly single-threaded.
	Workers int

	// Progress, when non-nil, receives candidate-level progress events.
	Progress Progress
}

// New returns a single-threaded solver.
func New() *Solver {
	return &Solver{Workers: 1}
}

// Stats describes the work a solve performed.
type Stats struct {
	// Candidates holds, per piece, the number of poses that survived the
	// boundary pre-filter.
	Candidates []int
	PosesTried int64
	Duration   time.Duration
}

// Result is the outcome of a solve. Board is nil unless Found is true:
// a failed solve never yields a partial board.
type Result struct {
	Found bool
	Board *model.Board
	Stats Stats
}

// Solve searches for a placement of every puzzle piece inside the board
// with no overlaps, returning the first one found in lexicographic
// candidate order. Exhausting the candidate space is not an error; it is
// reported as Found == false. The context is polled between candidate
// poses, never inside a geometry check.
func (s *Solver) Solve(ctx context.Context, puzzle model.Puzzle) (Result, error) {
	if err := puzzle.Validate(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	res := puzzle.Resolution
	full := PoseGrid(puzzle.Width, puzzle.Height, res)

	// Boundary containment only depends on the pose, so it is filtered
	// once up front. Overlap depends on what else is placed and stays in
	// the search loop.
	candidates := make([][]model.Pose, len(puzzle.Pieces))
	stats := Stats{Candidates: make([]int, len(puzzle.Pieces))}
	for i, piece := range puzzle.Pieces {
		grid := full
		if i == 0 && !res.FullFirstPiece {
			grid = QuadrantPoseGrid(puzzle.Width, puzzle.Height, res)
		}
		candidates[i] = filterContained(piece, grid, puzzle.Width, puzzle.Height)
		stats.Candidates[i] = len(candidates[i])
	}

	var found bool
	var board *model.Board
	var err error
	if s.Workers > 1 {
		found, board, err = s.searchParallel(ctx, puzzle, candidates, &stats.PosesTried)
	} else {
		board, err = model.NewBoard(puzzle.Width, puzzle.Height)
		if err == nil {
			found, err = s.search(ctx, board, puzzle.Pieces, candidates, 0, &stats.PosesTried)
		}
	}
	stats.Duration = time.Since(start)
	if err != nil {
		return Result{Stats: stats}, err
	}
	if !found {
		return Result{Stats: stats}, nil
	}
	return Result{Found: true, Board: board, Stats: stats}, nil
}

// search runs the depth-first enumeration from the given depth. The
// board's placement stack mirrors the recursion: entries 0..depth-1 are
// the committed prefix, and each candidate loop truncates back to that
// prefix before trying the next pose.
func (s *Solver) search(ctx context.Context, board *model.Board, pieces []model.Piece, candidates [][]model.Pose, depth int, tried *int64) (bool, error) {
	if depth == len(pieces) {
		return true, nil
	}

	total := len(candidates[depth])
	for i, pose := range candidates[depth] {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if s.Progress != nil {
			s.Progress(depth, i, total)
		}
		atomic.AddInt64(tried, 1)

		board.Clear(depth - 1)
		if !board.ProbePlacement(pieces[depth], pose) {
			continue
		}
		board.CommitPlacement(pieces[depth], pose)

		ok, err := s.search(ctx, board, pieces, candidates, depth+1, tried)
		if ok || err != nil {
			return ok, err
		}
	}

	board.Clear(depth - 1)
	return false, nil
}

// filterContained keeps the poses whose transformed polygon lies inside
// the board boundary.
func filterContained(piece model.Piece, grid []model.Pose, width, height float64) []model.Pose {
	var kept []model.Pose
	for _, pose := range grid {
		if geom.InRect(piece.At(pose), width, height) {
			kept = append(kept, pose)
		}
	}
	return kept
}
