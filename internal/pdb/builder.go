package pdb

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ehrlich-b/cube/internal/cube"
)

// Encoder is the bijection between a cube sub-state and a dense integer
// index that a PDB table is built over (spec §3's "sub-state encoders").
type Encoder interface {
	ImageSize() int
	Encode(c cube.Cube) int
	Decode(idx int) cube.Cube
	// Moves returns the move set searched while building this encoder's
	// table. The corner encoder restricts this to the eighteen outer-face
	// moves (slice turns cannot affect a corner cubie); the edge (middle)
	// encoders use the full twenty-seven-move set, since M/E/S each cycle
	// four edge cubies and the spec's metric is HTM-with-slices.
	Moves() []cube.Move
}

// maxBuildDepth is a safety backstop, not a spec requirement: if a build
// runs this deep without reaching completeness, the encoder's image-size
// assumption (see DESIGN.md's resolution of spec §9's open question) is
// wrong, and continuing would silently hand back an incomplete table.
const maxBuildDepth = 24

// IterationStat is one target-depth iteration of a build: how many
// previously-unseen sub-states were discovered at that depth. pdbstore
// archives a slice of these alongside each build's summary row.
type IterationStat struct {
	Depth    int
	NewCubes int64
}

// Build runs the parallel iterative-deepening fill of spec §4.6 and returns
// the finished distance table. table[enc.Encode(c)] is the minimum number
// of twists from c (projected through enc) to a solved orientation.
//
// table[] and depthCubes[] are read and written from many goroutines at
// once with plain, non-atomic accesses. Per spec §5 this is a deliberately
// tolerated benign race: every goroutine that reaches a given index at a
// given depth writes the same value, so a torn or duplicated write never
// corrupts the table, it only wastes a redundant subtree traversal.
func Build(enc Encoder, log *logrus.Entry) []OptionU8 {
	table, _, _ := BuildWithHistory(enc, log)
	return table
}

// BuildWithHistory runs the same fill as Build but also returns the
// per-iteration new-cube counts and total wall-clock duration, for callers
// that archive a build's shape (internal/cli's generate command, via
// internal/pdbstore).
func BuildWithHistory(enc Encoder, log *logrus.Entry) ([]OptionU8, []IterationStat, time.Duration) {
	size := enc.ImageSize()
	table := make([]OptionU8, size)
	for i := range table {
		table[i] = NoneU8
	}
	depthCubes := make([]int8, size)
	for i := range depthCubes {
		depthCubes[i] = -1
	}

	roots := cube.AllSolvedOrientations()
	moves := enc.Moves()
	start := time.Now()
	var history []IterationStat

	for d := 0; ; d++ {
		if d > maxBuildDepth {
			panic("pdb: build exceeded maximum depth without completing; encoder image size assumption is wrong")
		}

		var newCount int64
		var wg sync.WaitGroup
		for _, root := range roots {
			wg.Add(1)
			go func(root cube.Cube) {
				defer wg.Done()
				local := dfsWorker{enc: enc, moves: moves, table: table, depthCubes: depthCubes, limit: d}
				local.run(root, 0)
				atomic.AddInt64(&newCount, local.newCubes)
			}(root)
		}
		wg.Wait()
		history = append(history, IterationStat{Depth: d, NewCubes: newCount})

		complete := newCount == 0
		if complete {
			for _, v := range table {
				if v.IsNone() {
					complete = false
					break
				}
			}
		}

		if log != nil {
			log.WithFields(logrus.Fields{
				"depth":    d,
				"new":      newCount,
				"size":     size,
				"elapsed":  time.Since(start),
				"complete": complete,
			}).Info("pdb iteration complete")
		}

		if complete {
			break
		}
	}
	return table, history, time.Since(start)
}

// dfsWorker carries one goroutine's root-local state through the
// depth-limited recursion so the recursion itself needs no locking beyond
// the shared table/depthCubes slices.
type dfsWorker struct {
	enc        Encoder
	moves      []cube.Move
	table      []OptionU8
	depthCubes []int8
	limit      int
	newCubes   int64
}

func (w *dfsWorker) run(c cube.Cube, depth int) {
	idx := w.enc.Encode(c)
	remaining := int8(w.limit - depth)

	if w.depthCubes[idx] >= remaining {
		return
	}
	w.depthCubes[idx] = remaining

	if depth == w.limit {
		if SetU8(w.table, idx, byte(w.limit)) {
			w.newCubes++
		}
		return
	}

	for _, m := range w.moves {
		w.run(c.Apply(m), depth+1)
	}
}
