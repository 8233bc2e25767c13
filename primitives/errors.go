package primitives

import "fmt"

// errLen reports a short-read/short-write style error the way the
// reference codec taxonomy expects: malformed input, no side effects.
func errLen(what string, want, got int) error {
	return fmt.Errorf("%s: want %d bytes, got %d", what, want, got)
}
