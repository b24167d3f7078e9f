//go:build debug

package utf8

import "fmt"

// assertCursor panics if cur lies outside [0, end].
// Only enabled with -tags debug.
func assertCursor(method string, cur, end int) {
	if cur < 0 || cur > end {
		panic(fmt.Sprintf("%s: cursor %d outside [0, %d]", method, cur, end))
	}
}

// assertAtStart panics if cur is not at the start of the range.
// Only enabled with -tags debug.
func assertAtStart(method string, cur int) {
	if cur != 0 {
		panic(fmt.Sprintf("%s: cursor %d not at start", method, cur))
	}
}
