// File: errors.go — sentinel errors for the builder package.
//
// Only sentinel variables are exposed; callers branch with errors.Is.
// Sentinels are never wrapped with formatted strings at definition site;
// implementations attach context via builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n (or an equivalent size parameter) is
// smaller than the minimum the requested topology requires.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability value outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor requires a non-nil
// RNG and none was configured.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph received a nil Constructor or a
// constructor reported an unrecoverable failure.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner error message with method context, producing
// "<Method>: <message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", method, fmt.Sprintf(format, args...))
}

// wrapf prefixes sentinel with method context, preserving it for errors.Is
// via %w.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
