// File: methods_query.go
// Role: connectivity queries built on a union-find over live edges.

package core

import "github.com/spakin/disjoint"

// IsConnected reports whether the graph is connected: non-empty, and every
// pair of live vertices is joined by some path of live hyperedges. An empty
// graph (no vertices) is, by convention, not connected.
//
// Locking: muVert (read), then muEdge (read).
func (g *MultiHypergraph) IsConnected() bool {
	comps := g.Components()
	return len(comps) == 1
}

// IsConnectedPair reports whether vertex1 and vertex2 belong to the same
// connected component. It returns false if either vertex is not live.
//
// Locking: muVert (read), then muEdge (read).
func (g *MultiHypergraph) IsConnectedPair(vertex1, vertex2 VertexID) bool {
	if !g.HasVertex(vertex1) || !g.HasVertex(vertex2) {
		return false
	}
	for _, comp := range g.Components() {
		if comp.Contains(vertex1) {
			return comp.Contains(vertex2)
		}
	}
	return false
}

// Components returns the connected components of the graph as a slice of
// vertex-id sets. An empty graph returns an empty slice.
//
// Locking: muVert (read), then muEdge (read).
func (g *MultiHypergraph) Components() []Ids {
	g.muVert.RLock()
	verts := make([]VertexID, 0, len(g.vertices))
	for v := range g.vertices {
		verts = append(verts, v)
	}
	g.muVert.RUnlock()

	if len(verts) == 0 {
		return nil
	}

	elems := make(map[VertexID]*disjoint.Element, len(verts))
	for _, v := range verts {
		elems[v] = disjoint.NewElement()
	}

	g.muEdge.RLock()
	for _, e := range g.edges {
		uniq := sortedUnique(e.Elements)
		for i := 1; i < len(uniq); i++ {
			a, okA := elems[uniq[0]]
			b, okB := elems[uniq[i]]
			if okA && okB {
				a.Union(b)
			}
		}
	}
	g.muEdge.RUnlock()

	groups := make(map[*disjoint.Element][]VertexID)
	for _, v := range verts {
		root := elems[v].Find()
		groups[root] = append(groups[root], v)
	}

	out := make([]Ids, 0, len(groups))
	for _, vs := range groups {
		out = append(out, newIds(vs))
	}
	return out
}
