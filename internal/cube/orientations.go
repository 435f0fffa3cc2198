package cube

// Whole-cube rotation (spec C1's rotate(axis) and C3's orientation
// enumeration) is just the composition of the three same-amplitude moves
// along an axis: turning every layer together moves the cube as a rigid
// body instead of twisting one slice against the rest.

func composePerm(outer, inner [54]int) [54]int {
	var out [54]int
	for i := range out {
		out[i] = outer[inner[i]]
	}
	return out
}

func kindsForAxis(ax axis) [3]MoveKind {
	switch ax {
	case axisFrontBack:
		return [3]MoveKind{KindFront, KindSide, KindBack}
	case axisLeftRight:
		return [3]MoveKind{KindLeft, KindMiddle, KindRight}
	case axisDownUp:
		return [3]MoveKind{KindDown, KindEquator, KindUp}
	default:
		panic("cube: invalid axis")
	}
}

// rotateWholeCube returns the 54-entry permutation that rotates the entire
// cube a given amplitude around ax.
func rotateWholeCube(ax axis, a Amplitude) [54]int {
	kinds := kindsForAxis(ax)
	perm := Compile(MoveDescription{Kind: kinds[0], Amplitude: a}).Perm
	for _, k := range kinds[1:] {
		next := Compile(MoveDescription{Kind: k, Amplitude: a}).Perm
		perm = composePerm(next, perm)
	}
	return perm
}

// rotate applies a whole-cube rotation around the given axis.
func (c Cube) rotate(ax axis, a Amplitude) Cube {
	perm := rotateWholeCube(ax, a)
	var out Cube
	for i, color := range c.Squares {
		out.Squares[perm[i]] = color
	}
	return out
}

// AllSolvedOrientations enumerates the 24 whole-cube orientations of the
// solved cube by breadth-first expansion over the nine whole-cube rotation
// generators (three axes by three amplitudes), de-duplicating by full-state
// equality. Every PDB build seeds its search from these so that a PDB is
// invariant under reorientation of the whole cube.
func AllSolvedOrientations() []Cube {
	start := NewSolvedCube()
	seen := map[Cube]bool{start: true}
	frontier := []Cube{start}
	result := []Cube{start}

	axes := [3]axis{axisFrontBack, axisLeftRight, axisDownUp}

	for len(frontier) > 0 && len(result) < 24 {
		var next []Cube
		for _, c := range frontier {
			for _, ax := range axes {
				for _, a := range allAmplitudes {
					n := c.rotate(ax, a)
					if !seen[n] {
						seen[n] = true
						result = append(result, n)
						next = append(next, n)
					}
				}
			}
		}
		frontier = next
	}
	return result
}
