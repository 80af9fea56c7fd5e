// File: impl_path.go — Path(n) constructor.
//
// Contract:
//   - n >= 2, else ErrTooFewVertices.
//   - Adds n fresh vertices.
//   - Adds binary hyperedges (v[i-1], v[i]) for i=1..n-1, in order.

package builder

import "github.com/katalvlaran/htdecomp/core"

const methodPath = "Path"

// Path returns a Constructor that builds a simple path on n vertices.
func Path(n int) Constructor {
	return func(g *core.MultiHypergraph, cfg *builderConfig) error {
		if n < 2 {
			return wrapf(methodPath, ErrTooFewVertices, "n=%d below minimum 2", n)
		}

		verts := g.AddVertices(n)
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(verts[i-1], verts[i]); err != nil {
				return builderErrorf(methodPath, "AddEdge(%d,%d): %s", verts[i-1], verts[i], err)
			}
		}
		return nil
	}
}
