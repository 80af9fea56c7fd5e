// File: coverage.go — hypertree coverage extension: for every node,
// greedily cover its bag with the input hypergraph's hyperedges, ties
// broken by ascending edge id, falling back to a synthetic singleton
// entry (ID == core.UnknownEdge) for any bag vertex no real hyperedge
// can cover.
package elimination

import (
	"sort"

	"github.com/katalvlaran/htdecomp/core"
	"github.com/katalvlaran/htdecomp/tree"
)

func computeCoverage(g *core.MultiHypergraph, d *tree.Decomposition, nodes []tree.NodeID) {
	edges := g.Hyperedges()
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })

	for _, id := range nodes {
		bag := d.Bag(id)
		d.SetCover(id, greedyCover(bag, edges))
	}
}

// greedyCover picks, from candidates, a minimal-ish set of hyperedges
// covering bag: at each step the candidate covering the most
// still-uncovered bag vertices wins, ties going to the smaller edge id
// (candidates arrive pre-sorted by id ascending, so a strict
// greater-than comparison preserves that tie-break). Any bag vertex no
// candidate can cover gets a synthetic singleton entry.
func greedyCover(bag []core.VertexID, candidates []core.Hyperedge) []core.Hyperedge {
	uncovered := make(map[core.VertexID]struct{}, len(bag))
	for _, v := range bag {
		uncovered[v] = struct{}{}
	}

	var cover []core.Hyperedge
	for len(uncovered) > 0 {
		bestIdx := -1
		bestGain := 0
		for i, e := range candidates {
			gain := 0
			for _, v := range e.Elements {
				if _, ok := uncovered[v]; ok {
					gain++
				}
			}
			if gain > bestGain {
				bestGain = gain
				bestIdx = i
			}
		}
		if bestIdx == -1 {
			break
		}
		chosen := candidates[bestIdx]
		cover = append(cover, chosen)
		for _, v := range chosen.Elements {
			delete(uncovered, v)
		}
	}

	if len(uncovered) > 0 {
		rest := make([]core.VertexID, 0, len(uncovered))
		for v := range uncovered {
			rest = append(rest, v)
		}
		sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
		for _, v := range rest {
			cover = append(cover, core.Hyperedge{ID: core.UnknownEdge, Elements: []core.VertexID{v}})
		}
	}

	sort.Slice(cover, func(i, j int) bool { return cover[i].ID < cover[j].ID })
	return cover
}
