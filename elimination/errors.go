// File: errors.go — sentinel errors for the elimination package.

package elimination

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a malformed Config (a nil Ordering
// strategy) or an ordering strategy that reported an error. Compute does
// not itself check the returned permutation against the input graph.
var ErrInvalidArgument = errors.New("elimination: invalid argument")

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
