// File: config.go — Config for BucketEliminationAlgorithm.Compute.

package elimination

import (
	"github.com/katalvlaran/htdecomp/manip"
	"github.com/katalvlaran/htdecomp/metrics"
	"github.com/katalvlaran/htdecomp/ordering"
)

// Config parameterises a single Compute call.
type Config struct {
	// Ordering chooses the elimination order. Required.
	Ordering ordering.Strategy

	// ComputeHypertreeCoverage additionally computes, for every node, a
	// greedy set cover of its bag by the input hypergraph's hyperedges
	// (see Decomposition.Cover on the returned tree).
	ComputeHypertreeCoverage bool

	// Labeling, if non-empty, is applied to every node of the resulting
	// decomposition via manip.Label once construction is complete.
	Labeling []manip.LabelingFunction

	// Metrics receives NodeCreated for every tree node built. A nil
	// Metrics is treated as metrics.Noop().
	Metrics metrics.Recorder
}
