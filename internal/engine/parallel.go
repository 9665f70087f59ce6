package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/piwi3910/menace/internal/model"
)

// searchParallel partitions the depth-0 candidates across workers. Each
// depth-0 candidate roots an independent subtree, so each worker owns a
// private board and runs the ordinary search below its candidate; the
// first worker to find a solution cancels the rest. The solution found
// this way is valid but not necessarily the lexicographically first one.
func (s *Solver) searchParallel(parent context.Context, puzzle model.Puzzle, candidates [][]model.Pose, tried *int64) (bool, *model.Board, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	jobs := make(chan int)
	solved := make(chan *model.Board, 1)

	var wg sync.WaitGroup
	for w := 0; w < s.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			board, err := model.NewBoard(puzzle.Width, puzzle.Height)
			if err != nil {
				// Solve validated the puzzle already; unreachable.
				return
			}
			depth0 := candidates[0]
			for idx := range jobs {
				if ctx.Err() != nil {
					return
				}
				pose := depth0[idx]
				if s.Progress != nil {
					s.Progress(0, idx, len(depth0))
				}
				atomic.AddInt64(tried, 1)

				board.Clear(-1)
				if !board.ProbePlacement(puzzle.Pieces[0], pose) {
					continue
				}
				board.CommitPlacement(puzzle.Pieces[0], pose)

				ok, err := s.search(ctx, board, puzzle.Pieces, candidates, 1, tried)
				if err != nil {
					// Cancelled, either by the caller or by a sibling
					// that already won.
					return
				}
				if ok {
					select {
					case solved <- board:
					default:
					}
					cancel()
					return
				}
			}
		}()
	}

feed:
	for idx := range candidates[0] {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	select {
	case board := <-solved:
		return true, board, nil
	default:
	}
	if err := parent.Err(); err != nil {
		return false, nil, err
	}
	return false, nil, nil
}
