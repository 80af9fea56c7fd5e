// File: impl_star.go — Star(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Adds a hub vertex plus n-1 leaves.
//   - Emits binary hyperedges hub-leaf[i], in ascending leaf order.

package builder

import "github.com/katalvlaran/htdecomp/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star on n vertices: one hub
// and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.MultiHypergraph, cfg *builderConfig) error {
		if n < minStarNodes {
			return wrapf(methodStar, ErrTooFewVertices, "n=%d < min=%d", n, minStarNodes)
		}

		hub := g.AddVertex()
		leaves := g.AddVertices(n - 1)
		for _, leaf := range leaves {
			if _, err := g.AddEdge(hub, leaf); err != nil {
				return builderErrorf(methodStar, "AddEdge(%d,%d): %s", hub, leaf, err)
			}
		}
		return nil
	}
}
