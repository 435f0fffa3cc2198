package cfen

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/cube"
)

// ToCube converts a parsed State into a Cube.
func (s *State) ToCube() (cube.Cube, error) {
	var c cube.Cube
	for i, f := range faceOrder {
		for sq, color := range s.Faces[i] {
			if color == cube.Invalid {
				return cube.Cube{}, fmt.Errorf("cfen: cannot build a cube from a wildcard pattern (face %s)", f)
			}
			row, col := sq/3, sq%3
			c.Squares[9*int(f)+3*row+col] = color
		}
	}
	return c, nil
}

// FromCube renders a Cube's current state as a State, with the Up and
// Front orientation fields read off that cube's own centers.
func FromCube(c cube.Cube) *State {
	var s State
	s.Up = c.Get(cube.Up, 1, 1)
	s.Front = c.Get(cube.Front, 1, 1)
	for i, f := range faceOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				s.Faces[i][3*row+col] = c.Get(f, row, col)
			}
		}
	}
	return &s
}

// Generate renders a Cube directly to CFEN text.
func Generate(c cube.Cube) string {
	return FromCube(c).String()
}

// Matches reports whether c agrees with every non-wildcard sticker in the
// pattern. A pattern sticker of cube.Invalid ('?' in text) matches any
// color.
func (s *State) Matches(c cube.Cube) bool {
	for i, f := range faceOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				want := s.Faces[i][3*row+col]
				if want == cube.Invalid {
					continue
				}
				if c.Get(f, row, col) != want {
					return false
				}
			}
		}
	}
	return true
}
