package pdb

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/cube"
)

// toyEncoder is a small stand-in sub-state encoder used only to exercise
// Build's mechanics (parallel fan-out, depth memoization, termination).
// Its image is the color of a single fixed square, which is far too coarse
// to be a real heuristic but is a legitimate total function of the cube
// for the purpose of this test.
type toyEncoder struct{}

func (toyEncoder) ImageSize() int           { return cube.NumColors }
func (toyEncoder) Encode(c cube.Cube) int   { return int(c.Squares[0]) }
func (toyEncoder) Decode(idx int) cube.Cube { return cube.NewSolvedCube() }
func (toyEncoder) Moves() []cube.Move {
	moves := cube.AllMoves()
	return moves[:]
}

func TestBuildTerminatesAndFillsToyTable(t *testing.T) {
	table := Build(toyEncoder{}, nil)
	if len(table) != cube.NumColors {
		t.Fatalf("table length = %d, want %d", len(table), cube.NumColors)
	}
	for i, v := range table {
		if v.IsNone() {
			t.Fatalf("entry %d never filled", i)
		}
	}
	// The color already occupying square 0 on a solved cube must be
	// reachable at distance zero.
	solvedColor := int(cube.NewSolvedCube().Squares[0])
	if table[solvedColor].Unwrap() != 0 {
		t.Fatalf("table[%d] = %d, want 0", solvedColor, table[solvedColor].Unwrap())
	}
}

func TestSetU8RejectsSentinelValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when storing the sentinel value")
		}
	}()
	table := []OptionU8{NoneU8}
	SetU8(table, 0, 0xFF)
}

func TestSetU8WinsOnlyOnce(t *testing.T) {
	table := []OptionU8{NoneU8}
	if !SetU8(table, 0, 5) {
		t.Fatal("first SetU8 should succeed")
	}
	if SetU8(table, 0, 7) {
		t.Fatal("second SetU8 should not overwrite an already-set entry")
	}
	if table[0].Unwrap() != 5 {
		t.Fatalf("table[0] = %d, want 5", table[0].Unwrap())
	}
}
