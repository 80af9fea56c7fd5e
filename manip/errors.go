// File: errors.go — sentinel errors for the manip package.

package manip

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a labelling function referenced an
// undefined prior label, or an operation received a malformed parameter
// (e.g. a non-positive k for a Limit* operation).
var ErrInvalidArgument = errors.New("manip: invalid argument")

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
