// File: errors.go — sentinel errors for the format package.

package format

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates malformed input: unparsable text, or an
// edge with zero vertices.
var ErrInvalidArgument = errors.New("format: invalid argument")

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
