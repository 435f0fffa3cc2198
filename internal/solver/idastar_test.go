package solver

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/cube"
)

// cornerCountHeuristic is a cheap admissible stand-in for the Korf PDB
// heuristic, used only in these tests so they don't need to build a full
// 88-million-entry table. A single twist moves at most four corner
// cubies, so the number of corners sitting on the wrong color set divided
// by four (rounded up) never overestimates the moves remaining.
type cornerCountHeuristic struct{}

func (cornerCountHeuristic) OptimisticDistanceToSolved(c cube.Cube) int {
	// Count corner positions whose three stickers are not the same
	// (unordered) color set as on the solved cube.
	type triple = [3]cube.Color
	corners := [8][3]struct {
		f        cube.Face
		row, col int
	}{
		{{cube.Left, 2, 0}, {cube.Up, 0, 2}, {cube.Back, 2, 0}},
		{{cube.Right, 2, 2}, {cube.Up, 0, 0}, {cube.Back, 2, 2}},
		{{cube.Left, 0, 0}, {cube.Down, 2, 2}, {cube.Back, 0, 0}},
		{{cube.Right, 0, 2}, {cube.Down, 2, 0}, {cube.Back, 0, 2}},
		{{cube.Left, 2, 2}, {cube.Up, 2, 2}, {cube.Front, 2, 2}},
		{{cube.Right, 2, 0}, {cube.Up, 2, 0}, {cube.Front, 2, 0}},
		{{cube.Left, 0, 2}, {cube.Down, 0, 2}, {cube.Front, 0, 2}},
		{{cube.Right, 0, 0}, {cube.Down, 0, 0}, {cube.Front, 0, 0}},
	}
	solved := cube.NewSolvedCube()
	misplaced := 0
	for _, corner := range corners {
		var want, got triple
		for i, sq := range corner {
			want[i] = solved.Get(sq.f, sq.row, sq.col)
			got[i] = c.Get(sq.f, sq.row, sq.col)
		}
		if !sameSet(want, got) {
			misplaced++
		}
	}
	return (misplaced + 3) / 4
}

func sameSet(a, b [3]cube.Color) bool {
	used := [3]bool{}
	for _, x := range a {
		found := false
		for i, y := range b {
			if !used[i] && x == y {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func apply(c cube.Cube, notation string) cube.Cube {
	moves, err := cube.CompileSequence(notation)
	if err != nil {
		panic(err)
	}
	return c.ApplyAll(moves)
}

func TestSolveIdentity(t *testing.T) {
	path, stats := Solve(cube.NewSolvedCube(), cornerCountHeuristic{})
	if len(path) != 0 {
		t.Fatalf("expected empty path for solved cube, got %v", path)
	}
	if stats.CubesExpanded != 0 {
		t.Fatalf("expected zero cubes expanded for solved cube, got %d", stats.CubesExpanded)
	}
}

func TestSolveSingleMoveInverse(t *testing.T) {
	scrambled := apply(cube.NewSolvedCube(), "R1")
	path, _ := Solve(scrambled, cornerCountHeuristic{})
	result := scrambled.ApplyAll(mustCompile(path))
	if !result.IsSolved() {
		t.Fatalf("path %v does not solve R1 scramble", path)
	}
	if len(path) != 1 {
		t.Fatalf("expected a length-1 solution, got %v", path)
	}
}

func TestSolveHalfTurnSelfInverse(t *testing.T) {
	scrambled := apply(cube.NewSolvedCube(), "U2")
	path, _ := Solve(scrambled, cornerCountHeuristic{})
	result := scrambled.ApplyAll(mustCompile(path))
	if !result.IsSolved() {
		t.Fatalf("path %v does not solve U2 scramble", path)
	}
	if len(path) != 1 {
		t.Fatalf("expected a length-1 solution, got %v", path)
	}
}

func TestSolveThreeMoveScramble(t *testing.T) {
	scrambled := apply(cube.NewSolvedCube(), "R1 U1 F1")
	path, _ := Solve(scrambled, cornerCountHeuristic{})
	if len(path) > 3 {
		t.Fatalf("expected an optimal solution of length <= 3, got %d: %v", len(path), path)
	}
	result := scrambled.ApplyAll(mustCompile(path))
	if !result.IsSolved() {
		t.Fatalf("path %v does not solve R1 U1 F1 scramble", path)
	}
}

func TestSolveSune(t *testing.T) {
	// spec §8 scenario 5: R1 U1 R3 U1 R1 U2 R3 (the Sune algorithm) solved
	// by a length-7 path.
	scrambled := apply(cube.NewSolvedCube(), "R1 U1 R3 U1 R1 U2 R3")
	path, _ := Solve(scrambled, cornerCountHeuristic{})
	result := scrambled.ApplyAll(mustCompile(path))
	if !result.IsSolved() {
		t.Fatalf("path %v does not solve the Sune scramble", path)
	}
	if len(path) != 7 {
		t.Fatalf("expected a length-7 solution, got %d: %v", len(path), path)
	}
}

func mustCompile(descs []cube.MoveDescription) []cube.Move {
	moves := make([]cube.Move, len(descs))
	for i, d := range descs {
		moves[i] = cube.Compile(d)
	}
	return moves
}
