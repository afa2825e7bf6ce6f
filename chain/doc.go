// Package chain prices a door code typed through a chain of robots.
//
// A human presses a directional keypad. That moves a robot arm over a
// second directional keypad, whose presses move another arm, and so on,
// until the last arm presses the numeric door keypad. MinPresses returns
// the fewest human presses that make the door arm type a code.
//
// Recurrence:
//
//	cost(x→y, pad, 0) = Distance(x, y) + 1
//	cost(x→y, pad, L) = min over shortest gap-free paths P from x to y of
//	                    Σ cost(a→b, directional, L-1)
//	                    for consecutive (a, b) in A · P · A
//
// where "A · P · A" is the directional pad's resting A followed by the
// arrows of P and the final A press. At level 0 no indirection remains so
// every shortest path costs the same.
//
//	MinPresses(code, D) = Σ cost(a→b, numeric, D) for consecutive (a, b) in A · code
//
// Memoization:
//
//   - Results are keyed by Transition{From, To, Kind, Levels} in a Cache.
//   - A key is written once (Store keeps the first value); values depend only
//     on the key, so a Cache may be reused across queries or discarded.
//   - Distinct keys are bounded by 5²·D + 11² regardless of code length.
//
// Complexity:
//
//   - Memoized:   O(25·D·k + n), k ≤ 2 candidate paths per pair (≤ 10 for
//     Exhaustive), n = len(code).
//   - WithoutMemo: O(n·(2k)^D); use only to cross-check small depths.
//
// Options:
//
//   - WithStrategy(paths.LShape | paths.Exhaustive): candidate paths per level.
//   - WithCache(c): use c instead of a fresh Cache.
//   - WithoutMemo(): bypass the cache entirely.
//   - WithLogger(l): zerolog logger, zerolog.Nop() by default.
//   - WithOnTransition(fn): called once for every transition actually priced.
//   - WithMaxExpand(n): cap on the sequence length Expand will build.
//
// Errors:
//
//   - ErrInvalidCode:      code contains a label absent from the numeric pad.
//   - ErrNegativeDepth:    levels < 0.
//   - ErrOverflow:         the press count does not fit in uint64.
//   - ErrExpansionTooLong: Expand would exceed the configured cap.
//   - ErrOptionViolation:  an invalid Option was supplied.
//   - paths.ErrNoPath and keypad.ErrUnknownButton propagate from lower layers.
package chain
