package paths

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Shortest returns the L-shaped shortest paths from button from to
// button to on l. It is Enumerate with LShape.
func Shortest(l *keypad.Layout, from, to rune) ([]Path, error) {
	return Enumerate(l, from, to, LShape)
}

// Enumerate returns the gap-free shortest paths from button from to
// button to on l under strategy s.
//
// Behavior:
//  1. Resolve both labels (keypad.ErrUnknownButton on failure).
//  2. from == to → a single empty path.
//  3. Build candidates per strategy, dropping any that visit the gap.
//  4. No candidate left → ErrNoPath.
//
// Complexity: see package documentation.
func Enumerate(l *keypad.Layout, from, to rune, s Strategy) ([]Path, error) {
	src, err := l.CoordinateOf(from)
	if err != nil {
		return nil, err
	}
	dst, err := l.CoordinateOf(to)
	if err != nil {
		return nil, err
	}
	if src == dst {
		return []Path{{}}, nil
	}

	var out []Path
	switch s {
	case LShape:
		out = lShapes(l, src, dst)
	case Exhaustive:
		out = interleavings(l, src, dst)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q→%q on %s pad", ErrNoPath, from, to, l.Kind())
	}

	return out, nil
}

// axes returns the vertical and horizontal move directions and their counts.
func axes(src, dst keypad.Position) (vm keypad.Move, nv int, hm keypad.Move, nh int) {
	vm, nv = keypad.Down, dst.Row-src.Row
	if nv < 0 {
		vm, nv = keypad.Up, -nv
	}
	hm, nh = keypad.Right, dst.Col-src.Col
	if nh < 0 {
		hm, nh = keypad.Left, -nh
	}
	return vm, nv, hm, nh
}

// lShapes builds vertical-first then horizontal-first, keeping only
// gap-free candidates. A zero delta collapses both into one straight path.
func lShapes(l *keypad.Layout, src, dst keypad.Position) []Path {
	vm, nv, hm, nh := axes(src, dst)

	verticalFirst := make(Path, 0, nv+nh)
	verticalFirst = appendRepeat(verticalFirst, vm, nv)
	verticalFirst = appendRepeat(verticalFirst, hm, nh)

	out := make([]Path, 0, 2)
	if valid(l, src, verticalFirst) {
		out = append(out, verticalFirst)
	}
	if nv == 0 || nh == 0 {
		return out
	}

	horizontalFirst := make(Path, 0, nv+nh)
	horizontalFirst = appendRepeat(horizontalFirst, hm, nh)
	horizontalFirst = appendRepeat(horizontalFirst, vm, nv)
	if valid(l, src, horizontalFirst) {
		out = append(out, horizontalFirst)
	}

	return out
}

// interleavings enumerates every monotone path by depth-first search,
// pruning a branch as soon as it steps onto the gap.
func interleavings(l *keypad.Layout, src, dst keypad.Position) []Path {
	vm, nv, hm, nh := axes(src, dst)
	var out []Path
	cur := make(Path, 0, nv+nh)

	var walk func(pos keypad.Position, v, h int)
	walk = func(pos keypad.Position, v, h int) {
		if v == 0 && h == 0 {
			out = append(out, append(Path(nil), cur...))
			return
		}
		if v > 0 {
			if next := vm.Step(pos); open(l, next) {
				cur = append(cur, vm)
				walk(next, v-1, h)
				cur = cur[:len(cur)-1]
			}
		}
		if h > 0 {
			if next := hm.Step(pos); open(l, next) {
				cur = append(cur, hm)
				walk(next, v, h-1)
				cur = cur[:len(cur)-1]
			}
		}
	}
	walk(src, nv, nh)

	return out
}

// valid reports whether every cell of p, walked from src, is a button.
func valid(l *keypad.Layout, src keypad.Position, p Path) bool {
	for _, pos := range p.Walk(src) {
		if !open(l, pos) {
			return false
		}
	}
	return true
}

func open(l *keypad.Layout, p keypad.Position) bool {
	return l.InBounds(p) && !l.IsForbidden(p)
}

func appendRepeat(p Path, m keypad.Move, n int) Path {
	for i := 0; i < n; i++ {
		p = append(p, m)
	}
	return p
}
