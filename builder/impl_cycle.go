// File: impl_cycle.go — Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Adds n fresh vertices.
//   - Emits binary hyperedges i -> (i+1)%n for i=0..n-1, in order.

package builder

import "github.com/katalvlaran/htdecomp/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle.
func Cycle(n int) Constructor {
	return func(g *core.MultiHypergraph, cfg *builderConfig) error {
		if n < minCycleNodes {
			return wrapf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleNodes)
		}

		verts := g.AddVertices(n)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if _, err := g.AddEdge(verts[i], verts[j]); err != nil {
				return builderErrorf(methodCycle, "AddEdge(%d,%d): %s", verts[i], verts[j], err)
			}
		}
		return nil
	}
}
