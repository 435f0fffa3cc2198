package cube

import (
	"fmt"
	"strings"
)

var kindLetters = map[byte]MoveKind{
	'F': KindFront,
	'S': KindSide,
	'B': KindBack,
	'L': KindLeft,
	'M': KindMiddle,
	'R': KindRight,
	'D': KindDown,
	'E': KindEquator,
	'U': KindUp,
}

// ParseMove parses a single move in the notation of spec §6: one of
// F/B/R/L/U/D/M/E/S followed by 1, 2 or 3 for quarter/half/three-quarter
// clockwise. As a convenience for interactive use it also accepts the
// suffix-less ("R"), apostrophe ("R'") and bare "2" forms common to
// everyday cube notation.
func ParseMove(s string) (MoveDescription, error) {
	if len(s) == 0 {
		return MoveDescription{}, fmt.Errorf("cube: empty move")
	}
	kind, ok := kindLetters[s[0]]
	if !ok {
		return MoveDescription{}, fmt.Errorf("cube: unknown move letter %q", s[0:1])
	}
	suffix := s[1:]
	var amp Amplitude
	switch suffix {
	case "", "1":
		amp = Quarter
	case "2":
		amp = Half
	case "3", "'":
		amp = ThreeQuarter
	default:
		return MoveDescription{}, fmt.Errorf("cube: unknown amplitude suffix %q in move %q", suffix, s)
	}
	return MoveDescription{Kind: kind, Amplitude: amp}, nil
}

// ParseSequence parses a whitespace-separated sequence of moves.
func ParseSequence(s string) ([]MoveDescription, error) {
	fields := strings.Fields(s)
	out := make([]MoveDescription, 0, len(fields))
	for _, f := range fields {
		d, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// CompileSequence parses and compiles a sequence of moves in one step.
func CompileSequence(s string) ([]Move, error) {
	descs, err := ParseSequence(s)
	if err != nil {
		return nil, err
	}
	moves := make([]Move, len(descs))
	for i, d := range descs {
		moves[i] = Compile(d)
	}
	return moves, nil
}

// FormatSequence renders a sequence of move descriptions in canonical
// notation, space separated.
func FormatSequence(descs []MoveDescription) string {
	parts := make([]string, len(descs))
	for i, d := range descs {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}
