// File: elimination_game.go — shared machinery for MinFill and MinDegree:
// simulate the elimination game on a scratch copy of the graph, picking
// one vertex at a time by a caller-supplied rank function and adding a
// clique ("fill") over its remaining neighbourhood before discarding it.

package ordering

import (
	"sort"

	"github.com/katalvlaran/htdecomp/core"
)

// rankFn scores a candidate vertex in the current scratch graph; lower is
// chosen first. Ties are broken by ascending vertex id.
type rankFn func(scratch *core.MultiHypergraph, v core.VertexID) int

func playEliminationGame(g *core.MultiHypergraph, rank rankFn) []core.VertexID {
	scratch := g.Clone()

	remaining := scratch.Vertices().Clone()
	order := make([]core.VertexID, 0, len(remaining))

	for len(remaining) > 0 {
		sort.Slice(remaining, func(i, j int) bool { return remaining[i] < remaining[j] })

		best := remaining[0]
		bestScore := rank(scratch, best)
		for _, v := range remaining[1:] {
			score := rank(scratch, v)
			if score < bestScore {
				best, bestScore = v, score
			}
		}

		neighbors := scratch.Neighbors(best).Clone()
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				a, b := neighbors[i], neighbors[j]
				if !scratch.IsNeighbor(a, b) {
					_, _ = scratch.AddEdge(a, b)
				}
			}
		}

		_ = scratch.RemoveVertex(best)
		order = append(order, best)

		filtered := remaining[:0]
		for _, v := range remaining {
			if v != best {
				filtered = append(filtered, v)
			}
		}
		remaining = filtered
	}

	return order
}

// fillCount returns the number of neighbour pairs of v that are not yet
// adjacent in scratch: the number of fill edges eliminating v would add.
func fillCount(scratch *core.MultiHypergraph, v core.VertexID) int {
	neighbors := scratch.Neighbors(v).Clone()
	count := 0
	for i := 0; i < len(neighbors); i++ {
		for j := i + 1; j < len(neighbors); j++ {
			if !scratch.IsNeighbor(neighbors[i], neighbors[j]) {
				count++
			}
		}
	}
	return count
}
