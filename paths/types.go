package paths

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Sentinel errors for path enumeration.
var (
	// ErrNoPath indicates no gap-free shortest path joins two buttons.
	ErrNoPath = errors.New("paths: no gap-free shortest path between buttons")

	// ErrUnknownStrategy indicates an unsupported Strategy value or name.
	ErrUnknownStrategy = errors.New("paths: unknown strategy")
)

// Strategy selects which shortest-path interleavings are produced.
type Strategy int

const (
	// LShape yields at most two paths: all vertical moves then all
	// horizontal, and the reverse.
	LShape Strategy = iota

	// Exhaustive yields every gap-free monotone interleaving.
	Exhaustive
)

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case LShape:
		return "lshape"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "lshape" or "exhaustive" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lshape", "l-shape", "":
		return LShape, nil
	case "exhaustive", "all":
		return Exhaustive, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Path is an ordered sequence of moves between two buttons. The press that
// ends the transition is implicit; Presses makes it explicit.
type Path []keypad.Move

// Len returns the number of moves.
func (p Path) Len() int { return len(p) }

// String renders the moves as arrow labels, e.g. "^^>".
func (p Path) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, m := range p {
		b.WriteRune(m.Label())
	}
	return b.String()
}

// Presses returns the directional-pad labels the next arm outward must
// push to realise p: one arrow per move followed by keypad.Activate.
func (p Path) Presses() []rune {
	out := make([]rune, 0, len(p)+1)
	for _, m := range p {
		out = append(out, m.Label())
	}
	return append(out, keypad.Activate)
}

// Turns counts direction changes along p.
func (p Path) Turns() int {
	n := 0
	for i := 1; i < len(p); i++ {
		if p[i] != p[i-1] {
			n++
		}
	}
	return n
}

// Walk returns every cell visited after leaving start, ending on the
// destination. An empty path visits nothing.
func (p Path) Walk(start keypad.Position) []keypad.Position {
	out := make([]keypad.Position, 0, len(p))
	pos := start
	for _, m := range p {
		pos = m.Step(pos)
		out = append(out, pos)
	}
	return out
}
