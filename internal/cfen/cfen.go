// Package cfen implements a human-editable, run-length-encoded textual
// serialization of a Cube: a compact alternative to the binary PDB format
// for scripting `solve --start <cfen>` and `show` invocations. Grounded on
// the teacher's own internal/cfen package, trimmed from its generalized
// NxN/wildcard model down to the fixed 54-square, six-color cube, with the
// wildcard character kept for `verify`'s pattern-match mode.
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ehrlich-b/cube/internal/cube"
)

// faceOrder is the order faces appear in a CFEN string: U/R/F/D/L/B,
// matching the teacher's face ordering convention.
var faceOrder = [6]cube.Face{cube.Up, cube.Right, cube.Front, cube.Down, cube.Left, cube.Back}

// State is a parsed CFEN string: an orientation hint (the Up and Front
// center colors, informational only — this cube model has no separate
// physical-rotation frame to remap) plus nine stickers per face in
// faceOrder. A sticker may be cube.Invalid, which CFEN prints as '?' and
// treats as a wildcard in Matches.
type State struct {
	Up, Front cube.Color
	Faces     [6][9]cube.Color
}

// String renders a State back into CFEN text.
func (s *State) String() string {
	var sb strings.Builder
	sb.WriteString(colorChar(s.Up))
	sb.WriteString(colorChar(s.Front))
	sb.WriteByte('|')
	for i, f := range s.Faces {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(compactString(f[:]))
	}
	return sb.String()
}

// compactString run-length encodes a run of stickers, e.g. nine identical
// squares become "W9" rather than "WWWWWWWWW".
func compactString(stickers []cube.Color) string {
	var sb strings.Builder
	i := 0
	for i < len(stickers) {
		j := i + 1
		for j < len(stickers) && stickers[j] == stickers[i] {
			j++
		}
		sb.WriteString(colorChar(stickers[i]))
		if run := j - i; run > 1 {
			sb.WriteString(strconv.Itoa(run))
		}
		i = j
	}
	return sb.String()
}

var colorChars = map[cube.Color]string{
	cube.Orange: "O", cube.Green: "G", cube.Red: "R",
	cube.Blue: "B", cube.White: "W", cube.Yellow: "Y",
	cube.Invalid: "?",
}

func colorChar(c cube.Color) string {
	s, ok := colorChars[c]
	if !ok {
		panic("cfen: unencodable color")
	}
	return s
}

var colorsByChar = map[byte]cube.Color{
	'O': cube.Orange, 'G': cube.Green, 'R': cube.Red,
	'B': cube.Blue, 'W': cube.White, 'Y': cube.Yellow,
	'?': cube.Invalid,
}

var faceToken = regexp.MustCompile(`([OGRBWY?])(\d*)`)

// Parse reads a CFEN string into a State.
func Parse(s string) (*State, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 2 {
		return nil, fmt.Errorf("cfen: expected 'orientation|faces', got %q", s)
	}
	if len(parts[0]) != 2 {
		return nil, fmt.Errorf("cfen: orientation must be exactly 2 characters, got %q", parts[0])
	}
	up, ok := colorsByChar[parts[0][0]]
	if !ok || up == cube.Invalid {
		return nil, fmt.Errorf("cfen: invalid up color %q", parts[0][0])
	}
	front, ok := colorsByChar[parts[0][1]]
	if !ok || front == cube.Invalid {
		return nil, fmt.Errorf("cfen: invalid front color %q", parts[0][1])
	}

	faceStrs := strings.Split(parts[1], "/")
	if len(faceStrs) != 6 {
		return nil, fmt.Errorf("cfen: expected 6 faces separated by '/', got %d", len(faceStrs))
	}

	var state State
	state.Up, state.Front = up, front
	for i, fs := range faceStrs {
		stickers, err := parseFace(fs)
		if err != nil {
			return nil, fmt.Errorf("cfen: face %d (%s): %w", i, faceOrder[i], err)
		}
		if len(stickers) != 9 {
			return nil, fmt.Errorf("cfen: face %d (%s) has %d stickers, want 9", i, faceOrder[i], len(stickers))
		}
		copy(state.Faces[i][:], stickers)
	}
	return &state, nil
}

func parseFace(s string) ([]cube.Color, error) {
	matches := faceToken.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return nil, fmt.Errorf("no color tokens found in %q", s)
	}
	consumed := 0
	var stickers []cube.Color
	for _, m := range matches {
		if m[0] != consumed {
			return nil, fmt.Errorf("unparseable text before position %d in %q", m[0], s)
		}
		color := colorsByChar[s[m[2]]]
		count := 1
		if m[5] > m[4] {
			n, err := strconv.Atoi(s[m[4]:m[5]])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid repeat count in %q", s)
			}
			count = n
		}
		for i := 0; i < count; i++ {
			stickers = append(stickers, color)
		}
		consumed = m[1]
	}
	if consumed != len(s) {
		return nil, fmt.Errorf("trailing unparsed text in %q", s)
	}
	return stickers, nil
}
