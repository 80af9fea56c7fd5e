// Package ordering computes vertex elimination orderings over a
// core.MultiHypergraph: pure functions from a graph to a permutation of
// its live vertices, consumed by elimination.BucketEliminationAlgorithm.
//
// All strategies operate on a scratch copy of the graph (core.Clone) and
// never mutate the caller's graph.
package ordering

import "github.com/katalvlaran/htdecomp/core"

// Strategy produces a vertex elimination ordering for g. Implementations
// must not mutate g.
type Strategy interface {
	Order(g *core.MultiHypergraph) ([]core.VertexID, error)
}
