// File: ids.go
// Role: identifier types and the Ids read-only view.

package core

import "sort"

// VertexID identifies a vertex within a MultiHypergraph. Ids are allocated
// monotonically starting at FIRST and are never reused after RemoveVertex.
type VertexID uint64

// EdgeID identifies a hyperedge within a MultiHypergraph. Ids are allocated
// monotonically starting at FIRST and are never reused after RemoveEdge.
type EdgeID uint64

const (
	// UNKNOWN is returned by lookups that found nothing; it is never a
	// valid allocated id.
	UNKNOWN VertexID = 0

	// FIRST is the id assigned to the first vertex or edge added to a
	// fresh MultiHypergraph.
	FIRST VertexID = 1

	// UnknownEdge is never a real allocated edge id; it marks a
	// synthetic covering-edge entry (see tree.Decomposition.Cover).
	UnknownEdge EdgeID = 0
)

// Ids is an immutable, ascending-sorted view over a set of VertexID values.
// It is returned from query methods so callers cannot mutate internal
// state through the result.
type Ids struct {
	values []VertexID
}

// newIds copies src, sorts it ascending and deduplicates it, and wraps the
// result in an Ids view.
func newIds(src []VertexID) Ids {
	cp := make([]VertexID, len(src))
	copy(cp, src)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })

	out := cp[:0]
	var prev VertexID
	havePrev := false
	for _, v := range cp {
		if havePrev && v == prev {
			continue
		}
		out = append(out, v)
		prev = v
		havePrev = true
	}
	return Ids{values: out}
}

// Len returns the number of ids in the view.
func (ids Ids) Len() int { return len(ids.values) }

// At returns the id at position index in ascending order. It reports
// ErrOutOfRange if index is not within [0, Len()).
func (ids Ids) At(index int) (VertexID, error) {
	if index < 0 || index >= len(ids.values) {
		return UNKNOWN, wrapf("Ids.At", ErrOutOfRange, "index %d out of range [0,%d)", index, len(ids.values))
	}
	return ids.values[index], nil
}

// Contains reports whether id appears in the view.
func (ids Ids) Contains(id VertexID) bool {
	i := sort.Search(len(ids.values), func(i int) bool { return ids.values[i] >= id })
	return i < len(ids.values) && ids.values[i] == id
}

// Clone returns an independent slice copy of the view's contents in
// ascending order.
func (ids Ids) Clone() []VertexID {
	cp := make([]VertexID, len(ids.values))
	copy(cp, ids.values)
	return cp
}
