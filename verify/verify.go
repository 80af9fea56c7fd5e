// Package verify checks a tree decomposition against the four
// decomposition invariants a correct bucket-elimination result (and
// every subsequent manipulation operation) must preserve: vertex
// coverage, edge coverage, running intersection, and — for hypertree
// decompositions — bag coverage by the node's covering-edge set.
//
// Verify runs in O((|V|+|E|)*|T|) and is meant for tests and the
// cmd/htdecomp verify subcommand, not for production hot paths (see
// spec §4.H).
package verify

import (
	"fmt"

	"github.com/katalvlaran/htdecomp/core"
	"github.com/katalvlaran/htdecomp/tree"
)

// Verify reports whether every decomposition invariant holds for d with
// respect to g, and every violation found (empty when the first return
// value is true).
func Verify(g *core.MultiHypergraph, d *tree.Decomposition) (bool, []Violation) {
	_, ok := d.Root()
	if !ok {
		return false, []Violation{{Message: "decomposition has no root"}}
	}

	nodes := d.Nodes()
	bags := make(map[tree.NodeID][]core.VertexID, len(nodes))
	for _, n := range nodes {
		bags[n] = d.Bag(n)
	}

	var violations []Violation
	violations = append(violations, checkVertexCoverage(g, bags)...)
	violations = append(violations, checkEdgeCoverage(g, bags)...)
	violations = append(violations, checkRunningIntersection(d, nodes, bags)...)
	violations = append(violations, checkHypertreeCoverage(d, nodes, bags)...)

	return len(violations) == 0, violations
}

func checkVertexCoverage(g *core.MultiHypergraph, bags map[tree.NodeID][]core.VertexID) []Violation {
	present := make(map[core.VertexID]struct{})
	for _, bag := range bags {
		for _, v := range bag {
			present[v] = struct{}{}
		}
	}

	var out []Violation
	live := g.Vertices()
	for i := 0; i < live.Len(); i++ {
		v, _ := live.At(i)
		if _, ok := present[v]; !ok {
			out = append(out, Violation{
				Invariant: VertexCoverage,
				Vertex:    v,
				Message:   fmt.Sprintf("vertex %d appears in no bag", v),
			})
		}
	}
	return out
}

func checkEdgeCoverage(g *core.MultiHypergraph, bags map[tree.NodeID][]core.VertexID) []Violation {
	var out []Violation
	for _, e := range g.Hyperedges() {
		covered := false
		for _, bag := range bags {
			if subsetOf(e.Elements, bag) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, Violation{
				Invariant: EdgeCoverage,
				Edge:      e.ID,
				Message:   fmt.Sprintf("edge %d (%v) is not a subset of any bag", e.ID, e.Elements),
			})
		}
	}
	return out
}

// checkRunningIntersection verifies that, for every vertex v, the set
// of nodes whose bag contains v induces a connected subtree: starting a
// BFS from any one such node and only stepping to tree-adjacent nodes
// that also contain v must reach every node in the set.
func checkRunningIntersection(d *tree.Decomposition, nodes []tree.NodeID, bags map[tree.NodeID][]core.VertexID) []Violation {
	byVertex := make(map[core.VertexID][]tree.NodeID)
	for _, n := range nodes {
		for _, v := range bags[n] {
			byVertex[v] = append(byVertex[v], n)
		}
	}

	var out []Violation
	for v, containing := range byVertex {
		if len(containing) <= 1 {
			continue
		}
		want := make(map[tree.NodeID]struct{}, len(containing))
		for _, n := range containing {
			want[n] = struct{}{}
		}

		visited := make(map[tree.NodeID]struct{})
		queue := []tree.NodeID{containing[0]}
		visited[containing[0]] = struct{}{}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			neighbors := d.Children(cur)
			if p, ok := d.Parent(cur); ok {
				neighbors = append(neighbors, p)
			}
			for _, nb := range neighbors {
				if _, inSet := want[nb]; !inSet {
					continue
				}
				if _, seen := visited[nb]; seen {
					continue
				}
				visited[nb] = struct{}{}
				queue = append(queue, nb)
			}
		}

		if len(visited) != len(want) {
			out = append(out, Violation{
				Invariant: RunningIntersection,
				Vertex:    v,
				Message:   fmt.Sprintf("nodes containing vertex %d do not induce a connected subtree", v),
			})
		}
	}
	return out
}

func checkHypertreeCoverage(d *tree.Decomposition, nodes []tree.NodeID, bags map[tree.NodeID][]core.VertexID) []Violation {
	var out []Violation
	for _, n := range nodes {
		cover := d.Cover(n)
		if cover == nil {
			continue // not a hypertree decomposition (no coverage computed)
		}
		union := make(map[core.VertexID]struct{})
		for _, e := range cover {
			for _, v := range e.Elements {
				union[v] = struct{}{}
			}
		}
		for _, v := range bags[n] {
			if _, ok := union[v]; !ok {
				out = append(out, Violation{
					Invariant: HypertreeCoverage,
					Node:      n,
					Vertex:    v,
					Message:   fmt.Sprintf("node %d: bag vertex %d not covered by node's covering-edge set", n, v),
				})
			}
		}
	}
	return out
}

func subsetOf(small, big []core.VertexID) bool {
	inBig := make(map[core.VertexID]struct{}, len(big))
	for _, v := range big {
		inBig[v] = struct{}{}
	}
	for _, v := range small {
		if _, ok := inBig[v]; !ok {
			return false
		}
	}
	return true
}
