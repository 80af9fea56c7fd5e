// File: limit_introduced.go — LimitMaximumIntroducedVerticesCount operation.

package manip

import (
	"github.com/katalvlaran/htdecomp/metrics"
	"github.com/katalvlaran/htdecomp/tree"
)

// limitMaximumIntroducedVerticesCount ensures no parent/child edge
// introduces (has in the parent's bag but not the child's) more than k
// vertices, chunking any larger introduce step across freshly inserted
// intermediate nodes. Idempotent: every edge this leaves behind
// introduces at most k vertices, so a second pass chunks nothing.
type limitMaximumIntroducedVerticesCount struct{ k int }

// LimitMaximumIntroducedVerticesCount returns the operation bounding
// every introduce step to at most k vertices. k must be >= 1; Apply
// reports ErrInvalidArgument otherwise.
func LimitMaximumIntroducedVerticesCount(k int) Operation {
	return limitMaximumIntroducedVerticesCount{k: k}
}

func (limitMaximumIntroducedVerticesCount) Name() string {
	return "LimitMaximumIntroducedVerticesCount"
}

func (op limitMaximumIntroducedVerticesCount) Apply(d *tree.Decomposition, rec metrics.Recorder, functions ...LabelingFunction) error {
	rec = metrics.OrNoop(rec)

	if op.k < 1 {
		return wrapf("LimitMaximumIntroducedVerticesCount.Apply", ErrInvalidArgument, "k=%d must be >= 1", op.k)
	}

	type pair struct{ parent, child tree.NodeID }
	var pairs []pair
	for _, parent := range d.Nodes() {
		for _, child := range d.Children(parent) {
			pairs = append(pairs, pair{parent, child})
		}
	}

	for _, p := range pairs {
		parentBag := d.Bag(p.parent)
		childBag := d.Bag(p.child)
		introduced := setDiff(parentBag, childBag)
		if len(introduced) <= op.k {
			continue
		}

		chunks := chunk(introduced, op.k)
		cur := p.child
		curBag := childBag
		for i := 0; i < len(chunks)-1; i++ {
			curBag = setUnion(curBag, chunks[i])
			id, err := d.SpliceAboveWithBag(cur, curBag)
			if err != nil {
				return err
			}
			rec.NodeCreated()
			if err := labelNode(d, id, functions); err != nil {
				return err
			}
			cur = id
		}
	}
	rec.OperationApplied("LimitMaximumIntroducedVerticesCount")
	return nil
}
