// File: hypergraph.go
// Role: the MultiHypergraph struct, its constructors, and functional options.

package core

import "sync"

// GraphOption customizes a MultiHypergraph at construction time. As a rule,
// option constructors never panic and ignore nil/invalid inputs.
type GraphOption func(cfg *graphConfig)

// graphConfig holds the configurable parameters applied by NewMultiHypergraph
// before the first vertex or edge is added.
type graphConfig struct {
	simple       bool
	initialSize  int
}

func newGraphConfig(opts ...GraphOption) *graphConfig {
	cfg := &graphConfig{}
	var opt GraphOption
	for _, opt = range opts {
		opt(cfg)
	}
	return cfg
}

// WithSimple puts the graph into simple-hypergraph mode: AddEdge rejects an
// element sequence whose de-duplicated vertex set matches an existing live
// edge's de-duplicated vertex set.
func WithSimple() GraphOption {
	return func(cfg *graphConfig) {
		cfg.simple = true
	}
}

// WithInitialVertices pre-allocates n vertices (ids FIRST..FIRST+n-1) during
// construction. A negative n is a no-op.
func WithInitialVertices(n int) GraphOption {
	return func(cfg *graphConfig) {
		if n > 0 {
			cfg.initialSize = n
		}
	}
}

// MultiHypergraph is a mutable (multi-)hypergraph: a vertex set V, together
// with a sequence of hyperedges E, each an ordered, possibly-repeating
// sequence of elements drawn from V.
//
// Concurrency discipline: muVert guards nextVertexID, vertices and
// deletedVertices; muEdge guards nextEdgeID, edges and neighborhood. The two
// locks are never acquired together by any method in this package; methods
// that must observe both vertex and edge state take a consistent snapshot
// of one before reading the other (see IsConnected, Clone).
type MultiHypergraph struct {
	simple bool

	muVert         sync.RWMutex
	nextVertexID   VertexID
	vertices       map[VertexID]struct{}
	deletedVertex  map[VertexID]struct{}

	muEdge       sync.RWMutex
	nextEdgeID   EdgeID
	edges        map[EdgeID]Hyperedge
	edgeOrder    []EdgeID
	neighborhood map[VertexID]map[VertexID]struct{}
}

// NewMultiHypergraph returns an empty MultiHypergraph configured by opts.
func NewMultiHypergraph(opts ...GraphOption) *MultiHypergraph {
	cfg := newGraphConfig(opts...)

	g := &MultiHypergraph{
		simple:        cfg.simple,
		nextVertexID:  FIRST,
		vertices:      make(map[VertexID]struct{}),
		deletedVertex: make(map[VertexID]struct{}),
		nextEdgeID:    EdgeID(FIRST),
		edges:         make(map[EdgeID]Hyperedge),
		neighborhood:  make(map[VertexID]map[VertexID]struct{}),
	}

	for i := 0; i < cfg.initialSize; i++ {
		g.AddVertex()
	}

	return g
}

// VertexCount returns the number of live vertices.
func (g *MultiHypergraph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

// EdgeCount returns the number of live hyperedges.
func (g *MultiHypergraph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}
