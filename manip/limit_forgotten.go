// File: limit_forgotten.go — LimitMaximumForgottenVerticesCount operation.

package manip

import (
	"github.com/katalvlaran/htdecomp/metrics"
	"github.com/katalvlaran/htdecomp/tree"
)

// limitMaximumForgottenVerticesCount ensures no parent/child edge
// forgets (has in the child's bag but not the parent's) more than k
// vertices, chunking any larger forget step across freshly inserted
// intermediate nodes. Idempotent for the same reason as its introduced
// counterpart.
type limitMaximumForgottenVerticesCount struct{ k int }

// LimitMaximumForgottenVerticesCount returns the operation bounding
// every forget step to at most k vertices. k must be >= 1; Apply
// reports ErrInvalidArgument otherwise.
func LimitMaximumForgottenVerticesCount(k int) Operation {
	return limitMaximumForgottenVerticesCount{k: k}
}

func (limitMaximumForgottenVerticesCount) Name() string {
	return "LimitMaximumForgottenVerticesCount"
}

func (op limitMaximumForgottenVerticesCount) Apply(d *tree.Decomposition, rec metrics.Recorder, functions ...LabelingFunction) error {
	rec = metrics.OrNoop(rec)

	if op.k < 1 {
		return wrapf("LimitMaximumForgottenVerticesCount.Apply", ErrInvalidArgument, "k=%d must be >= 1", op.k)
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
		forgotten := setDiff(childBag, parentBag)
		if len(forgotten) <= op.k {
			continue
		}

		chunks := chunk(forgotten, op.k)
		cur := p.child
		curBag := childBag
		for i := 0; i < len(chunks)-1; i++ {
			curBag = setDiff(curBag, chunks[i])
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
	rec.OperationApplied("LimitMaximumForgottenVerticesCount")
	return nil
}
