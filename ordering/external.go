// File: external.go — External ordering strategy: caller supplies a
// permutation; Order validates coverage before returning it.

package ordering

import "github.com/katalvlaran/htdecomp/core"

// ExternalStrategy wraps a caller-supplied elimination order.
type ExternalStrategy struct {
	perm []core.VertexID
}

// External returns a Strategy that validates perm is a permutation of
// the target graph's live vertices (same length, no repeats, every
// element live) and returns it unchanged. Order reports
// ErrInvalidArgument if validation fails.
func External(perm []core.VertexID) ExternalStrategy {
	cp := make([]core.VertexID, len(perm))
	copy(cp, perm)
	return ExternalStrategy{perm: cp}
}

// Order implements Strategy.
func (s ExternalStrategy) Order(g *core.MultiHypergraph) ([]core.VertexID, error) {
	live := g.Vertices()

	if len(s.perm) != live.Len() {
		return nil, wrapf("External.Order", ErrInvalidArgument, "permutation has %d entries, graph has %d live vertices", len(s.perm), live.Len())
	}

	seen := make(map[core.VertexID]struct{}, len(s.perm))
	for _, v := range s.perm {
		if !live.Contains(v) {
			return nil, wrapf("External.Order", ErrInvalidArgument, "vertex %d is not live", v)
		}
		if _, dup := seen[v]; dup {
			return nil, wrapf("External.Order", ErrInvalidArgument, "vertex %d repeated in permutation", v)
		}
		seen[v] = struct{}{}
	}

	out := make([]core.VertexID, len(s.perm))
	copy(out, s.perm)
	return out, nil
}
