// File: errors.go — sentinel errors for the ordering package.

package ordering

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a malformed External permutation: wrong
// length, a repeated vertex, or a vertex not live in the target graph.
var ErrInvalidArgument = errors.New("ordering: invalid argument")

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
