// File: bucket_elimination.go — BucketEliminationAlgorithm: the classic
// bucket-elimination construction of a tree decomposition from an
// elimination ordering, grounded in the original_source bucket
// elimination implementation and generalized to Config.Ordering so any
// ordering.Strategy (MinFill, MinDegree, or a caller-supplied
// permutation) can drive it.
package elimination

import (
	"github.com/katalvlaran/htdecomp/core"
	"github.com/katalvlaran/htdecomp/manip"
	"github.com/katalvlaran/htdecomp/metrics"
	"github.com/katalvlaran/htdecomp/tree"
)

// BucketEliminationAlgorithm computes tree decompositions by the
// forward bucket-elimination construction.
type BucketEliminationAlgorithm struct{}

// Compute builds a tree decomposition of g.
//
// Every original vertex is assigned a position in the elimination
// order produced by cfg.Ordering. Every hyperedge is assigned to the
// bucket of the earliest-ordered vertex it touches. Buckets are then
// folded forward, in ascending elimination-order position: bucket i's
// snapshot (before folding) becomes node i's bag, and the vertices
// bucket i does not itself eliminate are merged into the bucket of
// whichever of them is eliminated next — which is always later in the
// order, so merge targets are always still ahead of the scan.
// Tree nodes are then materialized in descending position order (so a
// node's parent, at a strictly higher position, always already
// exists): the single bucket with no merge target becomes the tree
// root directly, or — if more than one bucket has no merge target — a
// synthetic empty-bag root is added above all of them.
func (BucketEliminationAlgorithm) Compute(g *core.MultiHypergraph, cfg Config) (*tree.Decomposition, error) {
	if cfg.Ordering == nil {
		return nil, wrapf("BucketEliminationAlgorithm.Compute", ErrInvalidArgument, "cfg.Ordering is nil")
	}
	rec := metrics.OrNoop(cfg.Metrics)

	order, err := cfg.Ordering.Order(g)
	if err != nil {
		return nil, wrapf("BucketEliminationAlgorithm.Compute", ErrInvalidArgument, "ordering strategy failed: %v", err)
	}

	d := tree.NewDecomposition()
	n := len(order)

	if n == 0 {
		root, err := d.AddRootWithBag(nil)
		if err != nil {
			return nil, err
		}
		rec.NodeCreated()
		if err := finish(d, cfg); err != nil {
			return nil, err
		}
		if cfg.ComputeHypertreeCoverage {
			computeCoverage(g, d, []tree.NodeID{root})
		}
		return d, nil
	}

	position := make(map[core.VertexID]int, n)
	for i, v := range order {
		position[v] = i
	}

	bucketEdges := make([][]core.Hyperedge, n)
	for _, e := range g.Hyperedges() {
		if len(e.Elements) == 0 {
			continue
		}
		minPos := n
		for _, v := range e.Elements {
			if p, ok := position[v]; ok && p < minPos {
				minPos = p
			}
		}
		if minPos == n {
			continue
		}
		bucketEdges[minPos] = append(bucketEdges[minPos], e)
	}

	bag := make([][]core.VertexID, n)
	bagSnapshot := make([][]core.VertexID, n)
	parentBucket := make([]int, n)
	for i := range parentBucket {
		parentBucket[i] = -1
	}

	for i := 0; i < n; i++ {
		bag[i] = union(bag[i], []core.VertexID{order[i]})
		for _, e := range bucketEdges[i] {
			bag[i] = union(bag[i], e.Elements)
		}
		bagSnapshot[i] = append([]core.VertexID{}, bag[i]...)

		remainder := without(bag[i], order[i])
		if len(remainder) == 0 {
			continue
		}

		target := n
		for _, v := range remainder {
			if p := position[v]; p < target {
				target = p
			}
		}
		parentBucket[i] = target
		bag[target] = union(bag[target], remainder)
	}

	topLevel := 0
	for _, p := range parentBucket {
		if p == -1 {
			topLevel++
		}
	}

	nodeOf := make([]tree.NodeID, n)
	var root tree.NodeID
	syntheticRoot := topLevel > 1

	if syntheticRoot {
		r, err := d.AddRootWithBag(nil)
		if err != nil {
			return nil, err
		}
		root = r
		rec.NodeCreated()
	}

	for i := n - 1; i >= 0; i-- {
		if parentBucket[i] == -1 {
			if syntheticRoot {
				id, err := d.AddChildWithBag(root, bagSnapshot[i])
				if err != nil {
					return nil, err
				}
				nodeOf[i] = id
			} else {
				id, err := d.AddRootWithBag(bagSnapshot[i])
				if err != nil {
					return nil, err
				}
				nodeOf[i] = id
				root = id
			}
		} else {
			id, err := d.AddChildWithBag(nodeOf[parentBucket[i]], bagSnapshot[i])
			if err != nil {
				return nil, err
			}
			nodeOf[i] = id
		}
		rec.NodeCreated()
	}

	if err := finish(d, cfg); err != nil {
		return nil, err
	}
	if cfg.ComputeHypertreeCoverage {
		computeCoverage(g, d, d.Nodes())
	}

	return d, nil
}

func finish(d *tree.Decomposition, cfg Config) error {
	if len(cfg.Labeling) == 0 {
		return nil
	}
	return manip.Label(d, cfg.Labeling...)
}
