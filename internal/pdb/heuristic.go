package pdb

import (
	"sync/atomic"

	"github.com/ehrlich-b/cube/internal/cube"
)

// Heuristic is the single capability the solver needs: an admissible lower
// bound on the number of twists to solve a cube. Modeled as an interface
// rather than a type hierarchy, per spec §9's design note.
type Heuristic interface {
	OptimisticDistanceToSolved(c cube.Cube) int
}

// TableHeuristic answers OptimisticDistanceToSolved with a single lookup
// into a completed PDB table.
type TableHeuristic struct {
	Encoder Encoder
	Table   []OptionU8
}

func (h *TableHeuristic) OptimisticDistanceToSolved(c cube.Cube) int {
	idx := h.Encoder.Encode(c)
	return int(h.Table[idx].Unwrap())
}

// Korf composes the three pattern databases by taking their maximum (spec
// §4.7). Each table bounds the moves needed to fix only the cubies its
// encoder observes; the true optimum is at least each of those bounds, so
// the max remains admissible. Summing would not: all three subsets share
// the same twist sequence, so their costs are not additive.
type Korf struct {
	Corners      *TableHeuristic
	LowerMiddles *TableHeuristic
	UpperMiddles *TableHeuristic
}

func (k *Korf) OptimisticDistanceToSolved(c cube.Cube) int {
	h := k.Corners.OptimisticDistanceToSolved(c)
	if v := k.LowerMiddles.OptimisticDistanceToSolved(c); v > h {
		h = v
	}
	if v := k.UpperMiddles.OptimisticDistanceToSolved(c); v > h {
		h = v
	}
	return h
}

// Counting wraps any Heuristic and records how many times it has been
// invoked, matching the original implementation's heuristic-call counter
// (see SPEC_FULL.md §4). Wired into the solve CLI's --stats flag, where the
// solver's first-ply goroutines call it concurrently, so Calls is updated
// atomically.
type Counting struct {
	Inner Heuristic
	Calls int64
}

func (c *Counting) OptimisticDistanceToSolved(cb cube.Cube) int {
	atomic.AddInt64(&c.Calls, 1)
	return c.Inner.OptimisticDistanceToSolved(cb)
}
