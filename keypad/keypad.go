// Package keypad provides the two fixed keypad layouts and the queries
// the path enumerator and cost evaluator need:
//
//   - label → coordinate lookup (CoordinateOf)
//   - the single forbidden cell (IsForbidden, Forbidden)
//   - bounds and reverse lookup (InBounds, LabelAt)
package keypad

import (
	"fmt"
	"sort"
)

var (
	numericRows     = []string{"789", "456", "123", " 0A"}
	directionalRows = []string{" ^A", "<v>"}

	numericPad     = mustNew(KindNumeric, numericRows)
	directionalPad = mustNew(KindDirectional, directionalRows)
)

// NumericPad returns the shared door keypad:
//
//	7 8 9
//	4 5 6
//	1 2 3
//	  0 A
func NumericPad() *Layout { return numericPad }

// DirectionalPad returns the shared arrow keypad:
//
//	  ^ A
//	< v >
func DirectionalPad() *Layout { return directionalPad }

// ForKind returns the fixed layout of the given kind.
func ForKind(k Kind) (*Layout, error) {
	switch k {
	case KindNumeric:
		return numericPad, nil
	case KindDirectional:
		return directionalPad, nil
	}
	return nil, fmt.Errorf("keypad: unknown layout kind %d", int(k))
}

// New constructs a Layout from non-empty, equal-length rows of labels.
// Gap (a space) marks the one missing cell.
// Returns ErrEmptyGrid if rows is empty or the first row is empty,
// ErrNonRectangular if any row length differs, ErrGapCount unless exactly
// one Gap is present, and ErrDuplicateButton if a label repeats.
// Complexity: O(W×H) time and memory.
func New(kind Kind, rows []string) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len([]rune(rows[0]))
	cells := make([][]rune, h)
	for y, row := range rows {
		cells[y] = []rune(row)
		if len(cells[y]) != w {
			return nil, ErrNonRectangular
		}
	}

	l := &Layout{
		kind:    kind,
		width:   w,
		height:  h,
		cells:   cells,
		buttons: make(map[rune]Position, w*h-1),
	}
	gaps := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			label := cells[y][x]
			p := Position{Row: y, Col: x}
			if label == Gap {
				gaps++
				l.gap = p
				continue
			}
			if _, dup := l.buttons[label]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateButton, label)
			}
			l.buttons[label] = p
		}
	}
	if gaps != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrGapCount, gaps)
	}

	return l, nil
}

func mustNew(kind Kind, rows []string) *Layout {
	l, err := New(kind, rows)
	if err != nil {
		panic(err)
	}
	return l
}

// Kind reports which fixed layout l is.
func (l *Layout) Kind() Kind { return l.kind }

// Width returns the number of columns.
func (l *Layout) Width() int { return l.width }

// Height returns the number of rows.
func (l *Layout) Height() int { return l.height }

// CoordinateOf returns the cell holding label.
// Returns ErrUnknownButton if the label is not on this layout.
// Complexity: O(1).
func (l *Layout) CoordinateOf(label rune) (Position, error) {
	p, ok := l.buttons[label]
	if !ok {
		return Position{}, fmt.Errorf("%w: %q on %s pad", ErrUnknownButton, label, l.kind)
	}
	return p, nil
}

// Has reports whether label is a button of l.
func (l *Layout) Has(label rune) bool {
	_, ok := l.buttons[label]
	return ok
}

// IsForbidden reports whether p is the gap cell.
func (l *Layout) IsForbidden(p Position) bool {
	return p == l.gap
}

// Forbidden returns the gap cell.
func (l *Layout) Forbidden() Position { return l.gap }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (l *Layout) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < l.height && p.Col >= 0 && p.Col < l.width
}

// LabelAt returns the button at p; ok is false outside the grid or on the gap.
func (l *Layout) LabelAt(p Position) (label rune, ok bool) {
	if !l.InBounds(p) || l.IsForbidden(p) {
		return 0, false
	}
	return l.cells[p.Row][p.Col], true
}

// Labels returns all button labels in row-major order.
func (l *Layout) Labels() []rune {
	out := make([]rune, 0, len(l.buttons))
	for label := range l.buttons {
		out = append(out, label)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := l.buttons[out[i]], l.buttons[out[j]]
		if pi.Row != pj.Row {
			return pi.Row < pj.Row
		}
		return pi.Col < pj.Col
	})
	return out
}

// String renders the grid one row per line, gap as a space.
func (l *Layout) String() string {
	b := make([]rune, 0, (l.width+1)*l.height)
	for y, row := range l.cells {
		if y > 0 {
			b = append(b, '\n')
		}
		b = append(b, row...)
	}
	return string(b)
}
