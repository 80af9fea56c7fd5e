// File: setops.go — small sorted-slice helpers local to this package
// (mirrors manip's, kept separate to avoid a manip -> elimination ->
// manip import cycle: elimination already depends on manip for
// LabelingFunction).

package elimination

import "github.com/katalvlaran/htdecomp/core"

func union(a, b []core.VertexID) []core.VertexID {
	return core.SortedUniqueVertices(append(append([]core.VertexID{}, a...), b...))
}

func without(a []core.VertexID, v core.VertexID) []core.VertexID {
	out := make([]core.VertexID, 0, len(a))
	for _, x := range a {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
