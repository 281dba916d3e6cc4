package corejp

import "fmt"

// UnsupportedInputError reports that an operation needs a capability the
// configured Input implementation doesn't provide — currently only
// Matches, which needs read access to the raw document bytes to
// materialize a matched node's text.
type UnsupportedInputError struct {
	Op string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("corejp: %s: input does not support byte-range reads", e.Op)
}
