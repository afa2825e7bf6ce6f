// Package keypad defines core types, moves and sentinel errors
// for the keypad layouts.
package keypad

import (
	"errors"
)

// Sentinel errors for keypad operations.
var (
	// ErrEmptyGrid indicates the layout rows are empty.
	ErrEmptyGrid = errors.New("keypad: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("keypad: all rows must have the same length")
	// ErrGapCount indicates the layout does not have exactly one gap cell.
	ErrGapCount = errors.New("keypad: layout must have exactly one gap")
	// ErrDuplicateButton indicates a label occurs more than once.
	ErrDuplicateButton = errors.New("keypad: duplicate button label")
	// ErrUnknownButton indicates a label is not part of the layout.
	ErrUnknownButton = errors.New("keypad: unknown button")
	// ErrOffPad indicates a simulated arm left the grid.
	ErrOffPad = errors.New("keypad: arm moved off the pad")
	// ErrGapVisited indicates a simulated arm moved over the gap.
	ErrGapVisited = errors.New("keypad: arm moved over the gap")
)

const (
	// Gap marks the missing cell in the rows passed to New.
	Gap rune = ' '
	// Activate is the button every arm rests on and the press that
	// makes the next arm inward push its current button.
	Activate rune = 'A'
)

// Kind identifies which of the two fixed layouts a Layout is.
type Kind int

const (
	// KindNumeric is the door keypad with digits and A.
	KindNumeric Kind = iota
	// KindDirectional is the arrow keypad operated by robots and the human.
	KindDirectional
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindDirectional:
		return "directional"
	default:
		return "unknown"
	}
}

// Position is a cell coordinate; Row grows downward, Col grows rightward.
type Position struct {
	Row, Col int
}

// Distance returns the Manhattan distance between a and b.
func Distance(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Move is a unit step of a robot arm along one axis.
type Move int

const (
	// Up decreases Row by one.
	Up Move = iota
	// Down increases Row by one.
	Down
	// Left decreases Col by one.
	Left
	// Right increases Col by one.
	Right
)

// moveDelta and moveLabel are indexed by Move.
var (
	moveDelta = [...]Position{Up: {-1, 0}, Down: {1, 0}, Left: {0, -1}, Right: {0, 1}}
	moveLabel = [...]rune{Up: '^', Down: 'v', Left: '<', Right: '>'}
)

// Step returns the cell adjacent to p in direction m.
func (m Move) Step(p Position) Position {
	d := moveDelta[m]
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Label returns the directional-pad button that commands m.
func (m Move) Label() rune {
	return moveLabel[m]
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return string(moveLabel[m])
}

// MoveFor returns the Move commanded by the arrow label r.
func MoveFor(r rune) (Move, bool) {
	switch r {
	case '^':
		return Up, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	case '>':
		return Right, true
	}
	return 0, false
}

// Layout is one keypad: a rectangular grid of button labels with a single
// gap. It is immutable once built and safe for concurrent use.
// cells[row][col] holds the label, or Gap for the missing cell.
type Layout struct {
	kind          Kind
	width, height int
	cells         [][]rune
	buttons       map[rune]Position
	gap           Position
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
