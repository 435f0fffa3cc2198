package cube

// Face identifies one of the six faces of the cube. The order matches the
// canonical Color order: a solved cube's center on Face f carries Color(f).
type Face int

const (
	Left Face = iota
	Front
	Right
	Back
	Up
	Down
)

func (f Face) String() string {
	switch f {
	case Left:
		return "L"
	case Front:
		return "F"
	case Right:
		return "R"
	case Back:
		return "B"
	case Up:
		return "U"
	case Down:
		return "D"
	default:
		panic("cube: invalid face")
	}
}

// MoveKind is one of the nine slices: three per rotation axis. Side, Middle
// and Equator are the central slices that carry no face of their own.
type MoveKind int

const (
	KindFront MoveKind = iota
	KindSide
	KindBack
	KindLeft
	KindMiddle
	KindRight
	KindDown
	KindEquator
	KindUp
)

var allKinds = [9]MoveKind{KindFront, KindSide, KindBack, KindLeft, KindMiddle, KindRight, KindDown, KindEquator, KindUp}

// outerKinds are the six outer-face kinds. AllMoves, the 18-move set used by
// the corner PDB build and by Scramble, is these six kinds times three
// amplitudes; the edge PDBs and the IDA* solver search all nine kinds,
// center slices (Side/Middle/Equator) included (see AllMovesWithSlices and
// DESIGN.md).
var outerKinds = [6]MoveKind{KindFront, KindBack, KindLeft, KindRight, KindDown, KindUp}

func (k MoveKind) String() string {
	switch k {
	case KindFront:
		return "F"
	case KindSide:
		return "S"
	case KindBack:
		return "B"
	case KindLeft:
		return "L"
	case KindMiddle:
		return "M"
	case KindRight:
		return "R"
	case KindDown:
		return "D"
	case KindEquator:
		return "E"
	case KindUp:
		return "U"
	default:
		panic("cube: invalid move kind")
	}
}

// axis identifies which rotation axis a MoveKind turns around, and depth is
// that kind's layer index (0, 1 or 2) along the axis.
type axis int

const (
	axisFrontBack axis = iota
	axisLeftRight
	axisDownUp
)

func (k MoveKind) axisDepth() (axis, int) {
	switch k {
	case KindFront:
		return axisFrontBack, 0
	case KindSide:
		return axisFrontBack, 1
	case KindBack:
		return axisFrontBack, 2
	case KindLeft:
		return axisLeftRight, 0
	case KindMiddle:
		return axisLeftRight, 1
	case KindRight:
		return axisLeftRight, 2
	case KindDown:
		return axisDownUp, 0
	case KindEquator:
		return axisDownUp, 1
	case KindUp:
		return axisDownUp, 2
	default:
		panic("cube: invalid move kind")
	}
}

// Amplitude is the number of 90-degree clockwise quarter turns a move
// applies: 1 (quarter), 2 (half), 3 (three-quarter, i.e. one counter-clockwise
// quarter turn).
type Amplitude int

const (
	Quarter      Amplitude = 1
	Half         Amplitude = 2
	ThreeQuarter Amplitude = 3
)

var allAmplitudes = [3]Amplitude{Quarter, Half, ThreeQuarter}

func (a Amplitude) String() string {
	switch a {
	case Quarter:
		return "1"
	case Half:
		return "2"
	case ThreeQuarter:
		return "3"
	default:
		panic("cube: invalid amplitude")
	}
}

// Inverse returns the amplitude that undoes a turn of this amplitude.
func (a Amplitude) Inverse() Amplitude {
	return Amplitude((4 - int(a)) % 4)
}

// MoveDescription names a move without its compiled permutation.
type MoveDescription struct {
	Kind      MoveKind
	Amplitude Amplitude
}

func (d MoveDescription) String() string {
	return d.Kind.String() + d.Amplitude.String()
}

// Inverse returns the description that undoes this move.
func (d MoveDescription) Inverse() MoveDescription {
	return MoveDescription{Kind: d.Kind, Amplitude: d.Amplitude.Inverse()}
}
