// File: min_fill.go — MinFill ordering strategy.

package ordering

import "github.com/katalvlaran/htdecomp/core"

// fillTieBreakBound bounds the degree component folded into MinFill's
// composite score; any real graph's degree stays far below it.
const fillTieBreakBound = 1 << 20

// MinFillStrategy repeatedly eliminates the vertex whose removal would
// add the fewest fill edges, breaking ties by current degree ascending
// and then by vertex id ascending.
type MinFillStrategy struct{}

// MinFill returns a MinFillStrategy.
func MinFill() MinFillStrategy { return MinFillStrategy{} }

// Order implements Strategy.
func (MinFillStrategy) Order(g *core.MultiHypergraph) ([]core.VertexID, error) {
	return playEliminationGame(g, func(scratch *core.MultiHypergraph, v core.VertexID) int {
		return fillCount(scratch, v)*fillTieBreakBound + scratch.NeighborCount(v)
	}), nil
}
