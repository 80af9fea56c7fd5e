// File: hyperedge.go
// Role: the immutable Hyperedge value type.

package core

import "sort"

// Hyperedge is an ordered, possibly-repeating sequence of vertex ids
// together with the id the owning MultiHypergraph assigned it. A Hyperedge
// value returned from a query is a snapshot; mutating its Elements slice
// does not affect the owning graph.
type Hyperedge struct {
	ID       EdgeID
	Elements []VertexID
}

// newHyperedge copies elements defensively so the stored edge is immune to
// later mutation of the caller's slice.
func newHyperedge(id EdgeID, elements []VertexID) Hyperedge {
	cp := make([]VertexID, len(elements))
	copy(cp, elements)
	return Hyperedge{ID: id, Elements: cp}
}

// Arity returns the number of elements in the hyperedge, counting
// repetitions.
func (h Hyperedge) Arity() int { return len(h.Elements) }

// Equal reports whether h and other contain the same vertex ids in the
// same order. The edge's own ID is not compared.
func (h Hyperedge) Equal(other Hyperedge) bool {
	if len(h.Elements) != len(other.Elements) {
		return false
	}
	for i, v := range h.Elements {
		if other.Elements[i] != v {
			return false
		}
	}
	return true
}

// EqualAsSet reports whether h and other span the same de-duplicated set
// of vertex ids, ignoring order and repetition count.
func (h Hyperedge) EqualAsSet(other Hyperedge) bool {
	a := sortedUnique(h.Elements)
	b := sortedUnique(other.Elements)
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if b[i] != v {
			return false
		}
	}
	return true
}

// ContainsVertex reports whether v occurs anywhere in the hyperedge's
// element sequence.
func (h Hyperedge) ContainsVertex(v VertexID) bool {
	for _, e := range h.Elements {
		if e == v {
			return true
		}
	}
	return false
}

// clone returns a deep copy of the hyperedge.
func (h Hyperedge) clone() Hyperedge {
	return newHyperedge(h.ID, h.Elements)
}

// SortedUniqueVertices returns an ascending, de-duplicated copy of in.
// Exported for callers outside core (e.g. tree.Decomposition bags) that
// need the same normalization core applies to hyperedge element sets.
func SortedUniqueVertices(in []VertexID) []VertexID {
	return sortedUnique(in)
}

func sortedUnique(in []VertexID) []VertexID {
	cp := make([]VertexID, len(in))
	copy(cp, in)
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
	return out
}
