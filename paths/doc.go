// Package paths enumerates the minimum-length move sequences between two
// buttons of a keypad layout that never cross the layout's gap.
//
// A shortest path from button X to button Y consists of exactly |Δrow|
// vertical moves and |Δcol| horizontal moves in some interleaving. Every
// interleaving has the same length; only those whose intermediate cells
// avoid the gap are valid.
//
// Strategies:
//
//   - LShape (default): the two interleavings that finish one axis before
//     starting the other (vertical-then-horizontal, horizontal-then-vertical),
//     or the single straight path when one delta is zero. At most two
//     candidates per pair. An L-shape never has more direction changes than
//     any other interleaving, and direction changes are what the layered cost
//     evaluator pays for, so restricting to L-shapes keeps the optimum.
//   - Exhaustive: every monotone interleaving that avoids the gap, produced by
//     depth-first search trying a vertical step before a horizontal one.
//     Bounded by C(|Δrow|+|Δcol|, |Δrow|) ≤ C(5,2) = 10 on the door pad.
//
// Guarantees:
//
//   - Every returned path has length keypad.Distance(from, to).
//   - No returned path visits the gap or leaves the grid.
//   - from == to yields exactly one empty path.
//   - Output order is deterministic.
//
// Complexity:
//
//   - LShape:     O(|Δrow|+|Δcol|) time and memory.
//   - Exhaustive: O(C(n, k)·n) for n = |Δrow|+|Δcol|, k = |Δrow|.
//
// Errors:
//
//   - keypad.ErrUnknownButton: from or to is not on the layout.
//   - ErrNoPath: every candidate crosses the gap (never happens for the two
//     fixed layouts; kept as an invariant check).
//   - ErrUnknownStrategy: unrecognised Strategy value.
package paths
