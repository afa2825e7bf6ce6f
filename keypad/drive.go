package keypad

import (
	"fmt"
	"strings"
)

// Drive simulates a robot arm that starts on Activate and is operated
// through a directional pad by the given presses. Arrow presses move the
// arm one cell; an Activate press pushes the button under the arm.
// Returns the labels pushed, in order.
//
// Errors:
//   - ErrUnknownButton if a press is not an arrow or Activate.
//   - ErrOffPad if a move leaves the grid.
//   - ErrGapVisited if a move lands on the gap.
//
// Complexity: O(len(presses)).
func (l *Layout) Drive(presses string) (string, error) {
	pos, err := l.CoordinateOf(Activate)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	for i, r := range presses {
		if r == Activate {
			out.WriteRune(l.cells[pos.Row][pos.Col])
			continue
		}
		m, ok := MoveFor(r)
		if !ok {
			return "", fmt.Errorf("%w: press %q at offset %d", ErrUnknownButton, r, i)
		}
		pos = m.Step(pos)
		if !l.InBounds(pos) {
			return "", fmt.Errorf("%w: %s pad, offset %d", ErrOffPad, l.kind, i)
		}
		if l.IsForbidden(pos) {
			return "", fmt.Errorf("%w: %s pad, offset %d", ErrGapVisited, l.kind, i)
		}
	}

	return out.String(), nil
}
