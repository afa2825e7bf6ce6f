// Package keypad models the fixed keypads of a robot-operated door lock
// as small grids of labeled buttons.
//
// What:
//
//   - Layout wraps a rectangular grid of button labels with exactly one gap,
//     a cell that holds no button and that a robot arm must never cross.
//   - NumericPad returns the 4×3 door pad (digits 0–9 plus A, gap bottom-left).
//   - DirectionalPad returns the 2×3 arrow pad (^ v < > plus A, gap top-left).
//   - Move is one of the four unit steps an arm can take; its label is the
//     arrow button that commands it.
//   - Drive simulates an arm resting on A and operated by a sequence of
//     directional presses, returning the buttons it presses in turn.
//
// Why:
//
//   - Every pad in a chain of robots is one of these two layouts; the path
//     enumerator and the layered cost evaluator both read coordinates and
//     the gap from here.
//   - Drive lets callers verify a press sequence end to end.
//
// Complexity:
//
//   - New:          O(W×H), Memory: O(W×H).
//   - CoordinateOf: O(1).
//   - Drive:        O(len(presses)).
//
// Errors:
//
//   - ErrEmptyGrid:       layout has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrGapCount:        layout does not have exactly one gap.
//   - ErrDuplicateButton: a label appears more than once.
//   - ErrUnknownButton:   label is not part of the layout.
//   - ErrOffPad:          Drive moved the arm outside the grid.
//   - ErrGapVisited:      Drive moved the arm over the gap.
package keypad
