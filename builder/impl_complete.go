// File: impl_complete.go — Complete(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - Adds n fresh vertices.
//   - Emits a binary hyperedge for every unordered pair {i,j}, i<j, in
//     lexicographic order. Realizing K_n this way gives elimination
//     orderings and bucket elimination a predictable worst-case (treewidth
//     n-1) fixture.

package builder

import "github.com/katalvlaran/htdecomp/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n,
// represented as a hypergraph with one binary edge per vertex pair.
func Complete(n int) Constructor {
	return func(g *core.MultiHypergraph, cfg *builderConfig) error {
		if n < minCompleteNodes {
			return wrapf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes)
		}

		verts := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(verts[i], verts[j]); err != nil {
					return builderErrorf(methodComplete, "AddEdge(%d,%d): %s", verts[i], verts[j], err)
				}
			}
		}
		return nil
	}
}
