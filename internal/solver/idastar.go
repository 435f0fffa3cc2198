// Package solver implements the IDA* search (spec component C7): a
// depth-bounded DFS guided by an admissible heuristic, with a work-stealing
// parallel first-ply expansion. Grounded on the original implementation's
// iterative_deepening_Astar.rs (both its sequential recursion shape and its
// parallel root fan-out).
package solver

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/pdb"
)

// Stats reports search cost, accumulated across every goroutine at every
// depth iteration (spec §4.8's "concurrency cost accounting").
type Stats struct {
	CubesExpanded   int64
	HeuristicCalls  int64
	DepthIterations int
}

// Solve returns a shortest move sequence from start to the solved cube
// under the supplied heuristic. The heuristic must be admissible (an exact
// PDB-backed Korf composer satisfies this); an inadmissible heuristic would
// make the result merely plausible, not provably optimal.
func Solve(start cube.Cube, h pdb.Heuristic) ([]cube.MoveDescription, Stats) {
	var stats Stats
	if start.IsSolved() {
		return nil, stats
	}

	moves := cube.AllMovesWithSlices()
	limit := h.OptimisticDistanceToSolved(start)
	if limit == 0 {
		limit = 1
	}

	for {
		stats.DepthIterations++
		var done atomic.Bool
		var mu sync.Mutex
		var solution []cube.MoveDescription
		nextLimit := int64(math.MaxInt64)

		var wg sync.WaitGroup
		for _, m := range moves {
			wg.Add(1)
			go func(m cube.Move) {
				defer wg.Done()
				w := &worker{h: h, moves: moves[:], limit: limit, done: &done, nextLimit: math.MaxInt}
				child := start.Apply(m)
				path := []cube.MoveDescription{m.MoveDescription}
				if w.dfs(child, 1, path) {
					done.Store(true)
					mu.Lock()
					if solution == nil {
						solution = append([]cube.MoveDescription(nil), w.solution...)
					}
					mu.Unlock()
				}
				atomic.AddInt64(&stats.CubesExpanded, w.expanded)
				atomic.AddInt64(&stats.HeuristicCalls, w.heuristicCalls)
				for {
					cur := atomic.LoadInt64(&nextLimit)
					if int64(w.nextLimit) >= cur {
						break
					}
					if atomic.CompareAndSwapInt64(&nextLimit, cur, int64(w.nextLimit)) {
						break
					}
				}
			}(m)
		}
		wg.Wait()

		if solution != nil {
			return solution, stats
		}
		limit = int(nextLimit)
	}
}

// worker carries one first-ply branch's path buffer, local counters and
// next_limit through the recursive search so no locking is needed except
// at the point a solution or a cancellation is published.
type worker struct {
	h               pdb.Heuristic
	moves           []cube.Move
	limit           int
	done            *atomic.Bool
	nextLimit       int
	expanded        int64
	heuristicCalls  int64
	solution        []cube.MoveDescription
}

// dfs returns true if it found a solution at exactly the current limit,
// in which case w.solution holds the accumulated path.
func (w *worker) dfs(c cube.Cube, g int, path []cube.MoveDescription) bool {
	if w.done.Load() {
		return false
	}
	w.expanded++
	w.heuristicCalls++
	h := w.h.OptimisticDistanceToSolved(c)
	f := g + h

	if f > w.limit {
		if f < w.nextLimit {
			w.nextLimit = f
		}
		return false
	}
	if f == w.limit && c.IsSolved() {
		w.solution = path
		return true
	}
	for _, m := range w.moves {
		child := c.Apply(m)
		childPath := append(append([]cube.MoveDescription(nil), path...), m.MoveDescription)
		if w.dfs(child, g+1, childPath) {
			return true
		}
		if w.done.Load() {
			return false
		}
	}
	return false
}
