// Package cube implements the 3x3x3 cube state model, move compiler and
// whole-cube orientation enumeration (spec components C1-C3).
package cube

// Cube is an immutable 54-square flat array of colors. Applying a move
// produces a new value; the receiver is never mutated.
type Cube struct {
	Squares [54]Color
}

// NewSolvedCube returns the cube with every face's nine squares set to that
// face's canonical color.
func NewSolvedCube() Cube {
	var c Cube
	for f := 0; f < 6; f++ {
		for i := 0; i < 9; i++ {
			c.Squares[9*f+i] = Color(f)
		}
	}
	return c
}

// Get returns the color at the given face, row and column.
func (c Cube) Get(f Face, row, col int) Color {
	return c.Squares[9*int(f)+3*row+col]
}

// IsSolved reports whether every face's nine squares share its center's
// color.
func (c Cube) IsSolved() bool {
	for f := 0; f < 6; f++ {
		center := c.Squares[9*f+4]
		for i := 0; i < 9; i++ {
			if c.Squares[9*f+i] != center {
				return false
			}
		}
	}
	return true
}

// Equal reports whether two cubes have identical squares.
func (c Cube) Equal(o Cube) bool {
	return c.Squares == o.Squares
}

// Apply returns the cube obtained by applying the compiled move m: the
// square that was at position i moves to position m.Perm[i].
func (c Cube) Apply(m Move) Cube {
	var out Cube
	for i, color := range c.Squares {
		out.Squares[m.Perm[i]] = color
	}
	return out
}

// ApplyAll applies a sequence of moves in order.
func (c Cube) ApplyAll(moves []Move) Cube {
	cur := c
	for _, m := range moves {
		cur = cur.Apply(m)
	}
	return cur
}
