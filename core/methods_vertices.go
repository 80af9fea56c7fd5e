// File: methods_vertices.go
// Role: vertex lifecycle and queries.

package core

// AddVertex allocates a fresh vertex id and adds it to the graph.
//
// Locking: muVert (write).
func (g *MultiHypergraph) AddVertex() VertexID {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	id := g.nextVertexID
	g.nextVertexID++
	g.vertices[id] = struct{}{}
	return id
}

// AddVertices allocates count fresh vertex ids and returns them in
// ascending order. A non-positive count returns an empty slice.
//
// Locking: muVert (write).
func (g *MultiHypergraph) AddVertices(count int) []VertexID {
	if count <= 0 {
		return nil
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	out := make([]VertexID, 0, count)
	for i := 0; i < count; i++ {
		id := g.nextVertexID
		g.nextVertexID++
		g.vertices[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// HasVertex reports whether vertex is currently live.
//
// Locking: muVert (read).
func (g *MultiHypergraph) HasVertex(vertex VertexID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[vertex]
	return ok
}

// Vertices returns the set of currently live vertex ids.
//
// Locking: muVert (read).
func (g *MultiHypergraph) Vertices() Ids {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]VertexID, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	return newIds(out)
}

// RemoveVertex deletes vertex from the graph. Any hyperedge that referenced
// vertex keeps its id and keeps referencing its remaining elements; vertex
// is simply stripped from each such edge's element sequence, which may
// leave the edge with an empty element list. Use RemoveEdge to delete the
// edge itself.
//
// RemoveVertex is a no-op if vertex is not live. It reports ErrInvalidArgument
// only when asked to remove UNKNOWN.
//
// Locking: muVert (write), then muEdge (write). The two are never held
// together.
func (g *MultiHypergraph) RemoveVertex(vertex VertexID) error {
	if vertex == UNKNOWN {
		return wrapf("MultiHypergraph.RemoveVertex", ErrInvalidArgument, "vertex %d is not a valid id", vertex)
	}

	g.muVert.Lock()
	_, existed := g.vertices[vertex]
	if existed {
		delete(g.vertices, vertex)
		g.deletedVertex[vertex] = struct{}{}
	}
	g.muVert.Unlock()

	if !existed {
		return nil
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	// Strip vertex from every edge's element sequence in place.
	for id, e := range g.edges {
		if !e.ContainsVertex(vertex) {
			continue
		}
		filtered := make([]VertexID, 0, len(e.Elements))
		for _, v := range e.Elements {
			if v != vertex {
				filtered = append(filtered, v)
			}
		}
		e.Elements = filtered
		g.edges[id] = e
	}

	// Only vertex's former neighbors need their neighborhood entry updated;
	// the mutual relationships among vertex's co-elements are untouched.
	neighbors := g.neighborhood[vertex]
	delete(g.neighborhood, vertex)
	for u := range neighbors {
		delete(g.neighborhood[u], vertex)
	}

	return nil
}

// IsolatedVertices returns the live vertices that appear in no live
// hyperedge.
//
// Locking: muVert (read), then muEdge (read).
func (g *MultiHypergraph) IsolatedVertices() Ids {
	g.muVert.RLock()
	all := make([]VertexID, 0, len(g.vertices))
	for v := range g.vertices {
		all = append(all, v)
	}
	g.muVert.RUnlock()

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	incident := make(map[VertexID]struct{}, len(all))
	for _, e := range g.edges {
		for _, v := range e.Elements {
			incident[v] = struct{}{}
		}
	}

	out := make([]VertexID, 0, len(all))
	for _, v := range all {
		if _, ok := incident[v]; !ok {
			out = append(out, v)
		}
	}
	return newIds(out)
}
