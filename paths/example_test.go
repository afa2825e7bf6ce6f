// File: paths/example_test.go
package paths_test

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/paths"
)

// ExampleShortest lists the L-shaped paths between two door-pad buttons.
// From A the vertical-first path to 1 is fine, but the horizontal-first
// one would sweep across the gap in the bottom-left corner, so only one
// candidate survives. From 2 to 9 both L-shapes are valid.
func ExampleShortest() {
	pad := keypad.NumericPad()
	for _, pair := range [][2]rune{{'A', '1'}, {'2', '9'}} {
		ps, _ := paths.Shortest(pad, pair[0], pair[1])
		fmt.Printf("%c→%c:", pair[0], pair[1])
		for _, p := range ps {
			fmt.Printf(" %s", string(p.Presses()))
		}
		fmt.Println()
	}
	// Output:
	// A→1: ^<<A
	// 2→9: ^^>A >^^A
}
