package cube

import "sync"

// Move is a MoveDescription plus its precomputed 54-entry index permutation
// (spec C2). Compiled once per process and shared read-only thereafter.
type Move struct {
	MoveDescription
	Perm [54]int
}

// compile builds the permutation for a single MoveDescription by rotating
// every square that lies in the affected slice (the three-coordinate view
// collapses here to an axis + depth test) and leaving every other square
// fixed.
func compile(d MoveDescription) Move {
	var perm [54]int
	for i := range perm {
		perm[i] = i
	}

	ax, depth := d.Kind.axisDepth()
	quarterTurns := int(d.Amplitude)

	ring := sliceRing(ax, depth)
	shift := (quarterTurns * 3) % 12
	for j, sq := range ring {
		perm[sq.index()] = ring[(j+shift)%12].index()
	}

	if f, ok := outerFace(ax, depth); ok {
		fr := faceRing(f)
		fshift := (quarterTurns * 2) % 8
		for j, sq := range fr {
			perm[sq.index()] = fr[(j+fshift)%8].index()
		}
	}

	return Move{MoveDescription: d, Perm: perm}
}

var (
	compiledOnce sync.Once
	compiledAll  map[MoveDescription]Move
	compiledOps  [18]Move // the 18-move outer-face set: six outer kinds x three amplitudes
	compiledFull [27]Move // all nine kinds (outer + slice) x three amplitudes
)

func ensureCompiled() {
	compiledOnce.Do(func() {
		compiledAll = make(map[MoveDescription]Move, 27)
		for _, k := range allKinds {
			for _, a := range allAmplitudes {
				d := MoveDescription{Kind: k, Amplitude: a}
				compiledAll[d] = compile(d)
			}
		}
		i := 0
		for _, k := range outerKinds {
			for _, a := range allAmplitudes {
				compiledOps[i] = compiledAll[MoveDescription{Kind: k, Amplitude: a}]
				i++
			}
		}
		j := 0
		for _, k := range allKinds {
			for _, a := range allAmplitudes {
				compiledFull[j] = compiledAll[MoveDescription{Kind: k, Amplitude: a}]
				j++
			}
		}
	})
}

// Compile returns the precomputed Move for a description. All 27
// descriptions are compiled, including the three center-slice kinds, so
// notation parsing and the twist/show CLI commands can apply M/E/S turns,
// and the edge PDBs and the solver can search them (see AllMovesWithSlices
// and DESIGN.md).
func Compile(d MoveDescription) Move {
	ensureCompiled()
	return compiledAll[d]
}

// AllMoves returns the eighteen-move outer-face set (six outer-face kinds by
// three amplitudes), in a fixed iteration order: MoveKind order, then
// Amplitude order. Slice turns (M/E/S) cannot move a corner cubie, so the
// corner PDB builds over this set alone: admissibility only requires every
// move that can improve on a corner distance to be considered, and slices
// never do.
func AllMoves() [18]Move {
	ensureCompiled()
	return compiledOps
}

// AllMovesWithSlices returns the full twenty-seven-move set (all nine move
// kinds, including the three center-slice kinds M/E/S, by three amplitudes).
// The metric this repository solves under is HTM-with-slices (spec §1), so
// the edge pattern databases and the IDA* solver both search this set: each
// of M/E/S cycles four edge cubies (e.g. M cycles UF/UB/DF/DB), so omitting
// them from the edge tables or the solver would silently switch to a
// face-turn-only metric and return non-optimal solutions under the metric
// the spec guarantees.
func AllMovesWithSlices() [27]Move {
	ensureCompiled()
	return compiledFull
}
