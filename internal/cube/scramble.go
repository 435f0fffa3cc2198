package cube

import "math/rand"

// Scramble returns the solved cube after n uniformly random moves drawn
// from the eighteen-move operative set, along with the descriptions applied
// (in application order) so a caller can print or invert the scramble.
func Scramble(n int) (Cube, []MoveDescription) {
	moves := AllMoves()
	c := NewSolvedCube()
	descs := make([]MoveDescription, n)
	for i := 0; i < n; i++ {
		m := moves[rand.Intn(len(moves))]
		c = c.Apply(m)
		descs[i] = m.MoveDescription
	}
	return c, descs
}
