package pdb

import (
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/lehmer"
)

type edgeSquare struct {
	f        cube.Face
	row, col int
}

type edgePos struct {
	a, b edgeSquare
}

// edgePositions lists the twelve edge positions, each as the pair of
// (face,row,col) squares that belong to it. Row/col formulas follow the
// same face adjacency the move compiler's rings use (rings.go), restricted
// to the middle row or column shared by two faces instead of a corner.
var edgePositions = [12]edgePos{
	{edgeSquare{cube.Up, 1, 2}, edgeSquare{cube.Left, 2, 1}},   // Up-Left
	{edgeSquare{cube.Up, 1, 0}, edgeSquare{cube.Right, 2, 1}},  // Up-Right
	{edgeSquare{cube.Down, 1, 2}, edgeSquare{cube.Left, 0, 1}}, // Down-Left
	{edgeSquare{cube.Down, 1, 0}, edgeSquare{cube.Right, 0, 1}}, // Down-Right
	{edgeSquare{cube.Up, 2, 1}, edgeSquare{cube.Front, 2, 1}},   // Up-Front
	{edgeSquare{cube.Up, 0, 1}, edgeSquare{cube.Back, 2, 1}},    // Up-Back
	{edgeSquare{cube.Down, 0, 1}, edgeSquare{cube.Front, 0, 1}}, // Down-Front
	{edgeSquare{cube.Down, 2, 1}, edgeSquare{cube.Back, 0, 1}},  // Down-Back
	{edgeSquare{cube.Front, 1, 2}, edgeSquare{cube.Left, 1, 2}}, // Front-Left
	{edgeSquare{cube.Front, 1, 0}, edgeSquare{cube.Right, 1, 0}}, // Front-Right
	{edgeSquare{cube.Back, 1, 0}, edgeSquare{cube.Left, 1, 0}},   // Back-Left
	{edgeSquare{cube.Back, 1, 2}, edgeSquare{cube.Right, 1, 2}},  // Back-Right
}

type edgeIdentity struct {
	ID          int
	Orientation int
}

const (
	middleOrientBase = 64 // 2^6
	nbMiddlesKept     = 6
	nbMiddles         = 12
)

var middlePermutationSpace = lehmer.NbPartialPermutations(nbMiddlesKept, nbMiddles) // 12P6
const middleImageSize = 665280 * middleOrientBase                                   // 12P6 * 2^6

// MiddleEncoder maps a cube to an integer in [0, (12!/6!)*2^6) by tracking
// six of the twelve edge cubies (spec §4.5). Splitting the full 12-edge
// problem into two six-edge halves keeps each table small enough for a byte
// array on ordinary hardware.
type MiddleEncoder struct {
	canonical  [12][2]cube.Color
	pairToInfo map[[2]cube.Color]edgeIdentity
	retained   [6]int // cubie ids kept by this half, in ascending order
}

func newMiddleEncoder(lower bool) *MiddleEncoder {
	e := &MiddleEncoder{pairToInfo: make(map[[2]cube.Color]edgeIdentity, 24)}
	solved := cube.NewSolvedCube()
	for id, pos := range edgePositions {
		pair := [2]cube.Color{solved.Get(pos.a.f, pos.a.row, pos.a.col), solved.Get(pos.b.f, pos.b.row, pos.b.col)}
		e.canonical[id] = pair
		e.pairToInfo[pair] = edgeIdentity{ID: id, Orientation: 0}
		e.pairToInfo[[2]cube.Color{pair[1], pair[0]}] = edgeIdentity{ID: id, Orientation: 1}
	}
	if lower {
		for i := 0; i < 6; i++ {
			e.retained[i] = i
		}
	} else {
		for i := 0; i < 6; i++ {
			e.retained[i] = i + 6
		}
	}
	return e
}

// NewLowerMiddleEncoder tracks edge cubies 0-5 of edgePositions.
func NewLowerMiddleEncoder() *MiddleEncoder { return newMiddleEncoder(true) }

// NewUpperMiddleEncoder tracks edge cubies 6-11 of edgePositions.
func NewUpperMiddleEncoder() *MiddleEncoder { return newMiddleEncoder(false) }

func (e *MiddleEncoder) rankOf(cubieID int) (int, bool) {
	for rank, id := range e.retained {
		if id == cubieID {
			return rank, true
		}
	}
	return 0, false
}

func (e *MiddleEncoder) ImageSize() int { return middleImageSize }

// Moves returns the full twenty-seven-move set. The spec's metric is
// HTM-with-slices, and each of M/E/S cycles four edge cubies, so an edge
// PDB built over the eighteen outer moves alone would store distances under
// the wrong metric.
func (e *MiddleEncoder) Moves() []cube.Move {
	moves := cube.AllMovesWithSlices()
	return moves[:]
}

func (e *MiddleEncoder) Encode(c cube.Cube) int {
	var permutation [6]int
	var orientationBits int
	for pos := 0; pos < nbMiddles; pos++ {
		sq := edgePositions[pos]
		pair := [2]cube.Color{c.Get(sq.a.f, sq.a.row, sq.a.col), c.Get(sq.b.f, sq.b.row, sq.b.col)}
		info, ok := e.pairToInfo[pair]
		if !ok {
			continue // pair doesn't identify any tracked edge cubie (e.g. a position left Invalid by a partial decode)
		}
		if rank, ok := e.rankOf(info.ID); ok {
			permutation[rank] = pos
			orientationBits |= info.Orientation << uint(rank)
		}
	}
	permIdx := lehmer.PartialEncode(permutation[:], nbMiddles)
	return permIdx*middleOrientBase + orientationBits
}

func (e *MiddleEncoder) Decode(idx int) cube.Cube {
	permIdx := idx / middleOrientBase
	orientationBits := idx % middleOrientBase

	permutation := lehmer.PartialDecode(permIdx, nbMiddlesKept, nbMiddles)

	var c cube.Cube
	for i := range c.Squares {
		c.Squares[i] = cube.Invalid
	}
	for rank := 0; rank < 6; rank++ {
		pos := permutation[rank]
		cubieID := e.retained[rank]
		orientation := (orientationBits >> uint(rank)) & 1
		pair := e.canonical[cubieID]
		if orientation == 1 {
			pair[0], pair[1] = pair[1], pair[0]
		}
		sq := edgePositions[pos]
		c.Squares[9*int(sq.a.f)+3*sq.a.row+sq.a.col] = pair[0]
		c.Squares[9*int(sq.b.f)+3*sq.b.row+sq.b.col] = pair[1]
	}
	return c
}
