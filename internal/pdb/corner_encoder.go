package pdb

import (
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/lehmer"
)

// cornerPos names one of the eight corner positions by the three faces that
// meet there.
type cornerPos struct {
	LR, FB, UD cube.Face
}

var cornerPositions = [8]cornerPos{
	{cube.Left, cube.Front, cube.Down},
	{cube.Right, cube.Front, cube.Down},
	{cube.Left, cube.Back, cube.Down},
	{cube.Right, cube.Back, cube.Down},
	{cube.Left, cube.Front, cube.Up},
	{cube.Right, cube.Front, cube.Up},
	{cube.Left, cube.Back, cube.Up},
	{cube.Right, cube.Back, cube.Up},
}

// squares returns the three (face,row,col) locations of this position's
// stickers, in the fixed visit order left-right face, down-up face,
// front-back face. The row/col formulas follow the same face adjacency the
// move compiler's rings use (see rings.go), so a sticker read here and a
// sticker moved by cube.Apply always refer to the same physical square.
func (p cornerPos) squares() (lr, ud, fb struct {
	f        cube.Face
	row, col int
}) {
	lr.f = p.LR
	if p.UD == cube.Up {
		lr.row = 2
	} else {
		lr.row = 0
	}
	if p.LR == cube.Right {
		if p.FB == cube.Front {
			lr.col = 0
		} else {
			lr.col = 2
		}
	} else {
		if p.FB == cube.Front {
			lr.col = 2
		} else {
			lr.col = 0
		}
	}

	ud.f = p.UD
	if p.UD == cube.Up {
		if p.FB == cube.Front {
			ud.row = 2
		} else {
			ud.row = 0
		}
	} else {
		if p.FB == cube.Front {
			ud.row = 0
		} else {
			ud.row = 2
		}
	}
	if p.LR == cube.Left {
		ud.col = 2
	} else {
		ud.col = 0
	}

	fb.f = p.FB
	if p.UD == cube.Up {
		fb.row = 2
	} else {
		fb.row = 0
	}
	if p.FB == cube.Front {
		if p.LR == cube.Right {
			fb.col = 0
		} else {
			fb.col = 2
		}
	} else {
		if p.LR == cube.Left {
			fb.col = 0
		} else {
			fb.col = 2
		}
	}
	return
}

func rotateLeft3(t [3]cube.Color, o int) [3]cube.Color {
	for k := 0; k < o; k++ {
		t = [3]cube.Color{t[1], t[2], t[0]}
	}
	return t
}

type cornerIdentity struct {
	ID          int
	Orientation int
}

// CornerEncoder maps a cube to an integer in [0, 8!*3^7) by reading the
// permutation and orientation of the eight corner cubies (spec §4.4). Only
// seven orientation digits are independent; the eighth is recovered from
// the sum-of-orientations-mod-3 constraint, which is what takes the image
// from the original implementation's 8!*3^8 down to 8!*3^7.
type CornerEncoder struct {
	canonical    [8][3]cube.Color
	tripleToInfo map[[3]cube.Color]cornerIdentity
}

const (
	cornerOrientBase = 2187 // 3^7
	cornerImageSize  = 40320 * cornerOrientBase
)

// NewCornerEncoder builds the lookup tables from the solved cube: each
// corner position's canonical (solved) color triple identifies its cubie.
func NewCornerEncoder() *CornerEncoder {
	e := &CornerEncoder{tripleToInfo: make(map[[3]cube.Color]cornerIdentity, 24)}
	solved := cube.NewSolvedCube()
	for id, pos := range cornerPositions {
		lr, ud, fb := pos.squares()
		triple := [3]cube.Color{
			solved.Get(lr.f, lr.row, lr.col),
			solved.Get(ud.f, ud.row, ud.col),
			solved.Get(fb.f, fb.row, fb.col),
		}
		e.canonical[id] = triple
		for o := 0; o < 3; o++ {
			e.tripleToInfo[rotateLeft3(triple, o)] = cornerIdentity{ID: id, Orientation: o}
		}
	}
	return e
}

func (e *CornerEncoder) ImageSize() int { return cornerImageSize }

// Moves returns the eighteen-move outer-face set. Center-slice kinds never
// move a corner cubie, so excluding them costs nothing: the corner PDB
// stays admissible while each build step branches 18 ways instead of 27.
// The table size is the encoder's image size either way.
func (e *CornerEncoder) Moves() []cube.Move {
	moves := cube.AllMoves()
	return moves[:]
}

func (e *CornerEncoder) Encode(c cube.Cube) int {
	var p [8]int
	var o [8]int
	for i, pos := range cornerPositions {
		lr, ud, fb := pos.squares()
		triple := [3]cube.Color{
			c.Get(lr.f, lr.row, lr.col),
			c.Get(ud.f, ud.row, ud.col),
			c.Get(fb.f, fb.row, fb.col),
		}
		info := e.tripleToInfo[triple]
		p[i] = info.ID
		o[i] = info.Orientation
	}
	permIdx := lehmer.Encode(p[:])
	orientationInt := 0
	for i := 0; i < 7; i++ {
		orientationInt = orientationInt*3 + o[i]
	}
	return permIdx*cornerOrientBase + orientationInt
}

func (e *CornerEncoder) Decode(idx int) cube.Cube {
	permIdx := idx / cornerOrientBase
	orientationInt := idx % cornerOrientBase

	p := lehmer.Decode(permIdx, 8)
	var o [8]int
	rem := orientationInt
	sum := 0
	for i := 6; i >= 0; i-- {
		o[i] = rem % 3
		rem /= 3
		sum += o[i]
	}
	o[7] = (3 - sum%3) % 3

	var c cube.Cube
	for i := range c.Squares {
		c.Squares[i] = cube.Invalid
	}
	for i, pos := range cornerPositions {
		lr, ud, fb := pos.squares()
		triple := rotateLeft3(e.canonical[p[i]], o[i])
		c.Squares[9*int(lr.f)+3*lr.row+lr.col] = triple[0]
		c.Squares[9*int(ud.f)+3*ud.row+ud.col] = triple[1]
		c.Squares[9*int(fb.f)+3*fb.row+fb.col] = triple[2]
	}
	return c
}
