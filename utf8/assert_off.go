//go:build !debug

package utf8

// assertCursor is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertCursor(string, int, int) {}

// assertAtStart is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertAtStart(string, int) {}
