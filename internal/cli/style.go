package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ehrlich-b/cube/internal/cube"
)

// colorStyles maps a sticker color to the lipgloss style that paints its
// two-character block, per spec §6's "each square is a two-character
// colored block" display rule.
var colorStyles = map[cube.Color]lipgloss.Style{
	cube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	cube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("0")),
	cube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("0")),
	cube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("15")),
	cube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	cube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
}

var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// renderSticker prints one square, either as a styled colored block or as a
// bare letter depending on useColor.
func renderSticker(c cube.Color, useColor bool) string {
	if !useColor {
		return c.String() + " "
	}
	style, ok := colorStyles[c]
	if !ok {
		return dimStyle.Render(c.String() + " ")
	}
	return style.Render(" " + c.String())
}

// renderCube renders the cross net display of a Cube, reusing its own
// face-row layout but swapping in styled stickers when useColor is set.
func renderCube(c cube.Cube, useColor bool) string {
	var b strings.Builder
	blank := strings.Repeat(" ", 6)

	row := func(f cube.Face, r int) string {
		var sb strings.Builder
		for col := 0; col < 3; col++ {
			sb.WriteString(renderSticker(c.Get(f, r, col), useColor))
		}
		return sb.String()
	}

	for r := 0; r < 3; r++ {
		b.WriteString(blank)
		b.WriteString(row(cube.Up, r))
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		for _, f := range []cube.Face{cube.Left, cube.Front, cube.Right, cube.Back} {
			b.WriteString(row(f, r))
		}
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		b.WriteString(blank)
		b.WriteString(row(cube.Down, r))
		b.WriteByte('\n')
	}
	return b.String()
}
