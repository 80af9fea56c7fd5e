// File: min_degree.go — MinDegree ordering strategy.

package ordering

import "github.com/katalvlaran/htdecomp/core"

// MinDegreeStrategy repeatedly eliminates the vertex of lowest current
// degree, breaking ties by vertex id ascending.
type MinDegreeStrategy struct{}

// MinDegree returns a MinDegreeStrategy.
func MinDegree() MinDegreeStrategy { return MinDegreeStrategy{} }

// Order implements Strategy.
func (MinDegreeStrategy) Order(g *core.MultiHypergraph) ([]core.VertexID, error) {
	return playEliminationGame(g, func(scratch *core.MultiHypergraph, v core.VertexID) int {
		return scratch.NeighborCount(v)
	}), nil
}
