// Package keypadchain prices door codes typed through a chain of robots.
//
// 🚪 What is it?
//
//	A door keypad is operated by a robot arm. That arm is driven from a
//	directional keypad by another robot, and so on, until a human presses
//	the outermost directional keypad. Every arm starts over A, may never
//	hover over a keypad's gap, and only ever moves one cell per press.
//	keypadchain answers: what is the fewest number of human presses that
//	makes the door receive a code?
//
// ✨ How?
//
//   - keypad/ — fixed layouts, coordinates, gap checks and a press simulator
//   - paths/  — shortest gap-free routes between two buttons (L-shape or exhaustive)
//   - chain/  — memoized layered cost evaluator, expansion and replay
//   - batch/  — concurrent pricing of many codes with complexity reports
//
// The cost of moving between two buttons at chain level L depends only on
// the two buttons, the keypad kind and L, so each (from, to, kind, L)
// transition is priced once and reused. Depth 25 costs a few hundred
// cached entries rather than a sequence of 10^11 presses.
//
// Quick example:
//
//	n, _ := chain.MinPresses("029A", 2) // 68
//
//	go install github.com/katalvlaran/keypadchain/cmd/keypadchain@latest
package keypadchain
