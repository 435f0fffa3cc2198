package cube

import "strings"

// String renders the cube as the cross net of spec §6: Up on top, Left,
// Front, Right, Back across the middle row, Down at the bottom. Each square
// is a single color letter; terminal coloring is layered on top of this by
// internal/cli (a surface concern, out of this package's scope).
func (c Cube) String() string {
	var b strings.Builder
	blank := "      "

	writeFaceRow := func(f Face, row int) string {
		var sb strings.Builder
		for col := 0; col < 3; col++ {
			sb.WriteString(c.Get(f, row, col).String())
			sb.WriteByte(' ')
		}
		return sb.String()
	}

	for row := 0; row < 3; row++ {
		b.WriteString(blank)
		b.WriteString(writeFaceRow(Up, row))
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, f := range []Face{Left, Front, Right, Back} {
			b.WriteString(writeFaceRow(f, row))
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString(blank)
		b.WriteString(writeFaceRow(Down, row))
		b.WriteByte('\n')
	}
	return b.String()
}
