// File: impl_random.go — RandomHyperedges(n, edgeCount) constructor.
//
// Contract:
//   - n >= 1, edgeCount >= 0 (else ErrTooFewVertices).
//   - Requires cfg.rng (newBuilderConfig always supplies a default, so
//     this only matters if a caller clears it).
//   - Adds n fresh vertices, then edgeCount hyperedges, each drawing
//     cfg.arity distinct vertices uniformly at random (see WithArity).
//   - Not guaranteed connected or simple; pair with WithSimple on the
//     graph if duplicate element sets must be rejected.

package builder

import "github.com/katalvlaran/htdecomp/core"

const methodRandomHyperedges = "RandomHyperedges"

// RandomHyperedges returns a Constructor that builds n vertices and
// edgeCount random hyperedges of arity cfg.arity (default 2, see
// WithArity).
func RandomHyperedges(n, edgeCount int) Constructor {
	return func(g *core.MultiHypergraph, cfg *builderConfig) error {
		if n < 1 {
			return wrapf(methodRandomHyperedges, ErrTooFewVertices, "n=%d < min=1", n)
		}
		if edgeCount < 0 {
			return wrapf(methodRandomHyperedges, ErrTooFewVertices, "edgeCount=%d < 0", edgeCount)
		}
		if cfg.rng == nil {
			return wrapf(methodRandomHyperedges, ErrNeedRandSource, "no rng configured")
		}

		arity := cfg.arity
		if arity > n {
			arity = n
		}

		verts := g.AddVertices(n)

		for e := 0; e < edgeCount; e++ {
			perm := cfg.rng.Perm(n)
			elements := make([]core.VertexID, arity)
			for i := 0; i < arity; i++ {
				elements[i] = verts[perm[i]]
			}
			if _, err := g.AddEdge(elements...); err != nil {
				return builderErrorf(methodRandomHyperedges, "AddEdge(%v): %s", elements, err)
			}
		}
		return nil
	}
}
