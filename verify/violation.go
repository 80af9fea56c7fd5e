// File: violation.go — Violation: a single failed decomposition invariant.

package verify

import (
	"fmt"

	"github.com/katalvlaran/htdecomp/core"
	"github.com/katalvlaran/htdecomp/tree"
)

// Invariant names one of the four decomposition invariants (or the
// hypertree special case) a Violation reports against.
type Invariant string

const (
	VertexCoverage      Invariant = "vertex-coverage"
	EdgeCoverage        Invariant = "edge-coverage"
	RunningIntersection Invariant = "running-intersection"
	HypertreeCoverage   Invariant = "hypertree-coverage"
)

// Violation describes one failure of a decomposition invariant, with
// enough detail (which vertex, edge, or node) to explain why.
type Violation struct {
	Invariant Invariant
	Node      tree.NodeID   // zero (tree.NoNode) if not node-specific
	Vertex    core.VertexID // zero (core.UNKNOWN) if not vertex-specific
	Edge      core.EdgeID   // zero (core.UnknownEdge) if not edge-specific
	Message   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Invariant, v.Message)
}
