// File: errors.go — sentinel errors for the tree package.

package tree

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a precondition violation detectable at call
// time: removing a non-leaf, an empty bag where one is required, and the
// like.
var ErrInvalidArgument = errors.New("tree: invalid argument")

// ErrNotFound indicates a reference to a node id that does not exist in
// the tree.
var ErrNotFound = errors.New("tree: not found")

// ErrAlreadyRooted indicates AddRoot was called on a tree that already
// has a root.
var ErrAlreadyRooted = errors.New("tree: already rooted")

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
