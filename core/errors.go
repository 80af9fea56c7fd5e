// File: errors.go
// Role: sentinel errors for the core package.
//
// Error policy (matches the rest of the module):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context via %w (see wrapf below).

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a precondition violation detectable at call
// time: an unknown vertex id, an empty hyperedge element list, a malformed
// permutation, and the like.
var ErrInvalidArgument = errors.New("core: invalid argument")

// ErrOutOfRange indicates a positional query with an index at or beyond the
// size of the underlying collection.
var ErrOutOfRange = errors.New("core: index out of range")

// ErrNotFound indicates a lookup by id or content that matched nothing live.
var ErrNotFound = errors.New("core: not found")

// wrapf prefixes an inner error with method context, preserving the
// sentinel for errors.Is via %w.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
