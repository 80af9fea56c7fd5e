// File: setops.go — small helpers over sorted, de-duplicated vertex
// slices (the representation core.SortedUniqueVertices and
// tree.Decomposition.Bag both return).

package manip

import "github.com/katalvlaran/htdecomp/core"

// setDiff returns the elements of a not present in b. a and b must each
// be sorted and de-duplicated; the result is sorted.
func setDiff(a, b []core.VertexID) []core.VertexID {
	inB := make(map[core.VertexID]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}
	out := make([]core.VertexID, 0, len(a))
	for _, v := range a {
		if _, ok := inB[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// setUnion returns the sorted, de-duplicated union of a and b.
func setUnion(a, b []core.VertexID) []core.VertexID {
	return core.SortedUniqueVertices(append(append([]core.VertexID{}, a...), b...))
}

// setIntersect returns the sorted intersection of a and b.
func setIntersect(a, b []core.VertexID) []core.VertexID {
	inB := make(map[core.VertexID]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}
	out := make([]core.VertexID, 0, len(a))
	for _, v := range a {
		if _, ok := inB[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// setEqual reports whether a and b hold the same elements. Both must be
// sorted and de-duplicated.
func setEqual(a, b []core.VertexID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// chunk splits vs into groups of at most size k (the last group may be
// smaller). k must be >= 1.
func chunk(vs []core.VertexID, k int) [][]core.VertexID {
	if len(vs) == 0 {
		return nil
	}
	var out [][]core.VertexID
	for len(vs) > 0 {
		n := k
		if n > len(vs) {
			n = len(vs)
		}
		out = append(out, vs[:n])
		vs = vs[n:]
	}
	return out
}
