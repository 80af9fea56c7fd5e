// File: add_empty_leaves.go — AddEmptyLeaves operation.

package manip

import (
	"github.com/katalvlaran/htdecomp/metrics"
	"github.com/katalvlaran/htdecomp/tree"
)

// addEmptyLeaves gives every current leaf with a non-empty bag a fresh
// empty-bag child, so that every root-to-leaf path ends on an empty
// bag. Idempotent: a node processed by a prior call has a non-leaf,
// non-empty-bag ancestor state and an empty-bag leaf child, so it is
// not retargeted, and its new child is a leaf but has an empty bag, so
// it is skipped too.
type addEmptyLeaves struct{}

// AddEmptyLeaves returns the AddEmptyLeaves operation.
func AddEmptyLeaves() Operation { return addEmptyLeaves{} }

func (addEmptyLeaves) Name() string { return "AddEmptyLeaves" }

func (addEmptyLeaves) Apply(d *tree.Decomposition, rec metrics.Recorder, functions ...LabelingFunction) error {
	rec = metrics.OrNoop(rec)

	// Snapshot nodes up front: newly created children are leaves with
	// empty bags, so the non-empty-bag guard alone would already skip
	// them, but snapshotting keeps the iteration order independent of
	// map growth during the loop.
	targets := d.Nodes()

	for _, id := range targets {
		if !d.IsLeaf(id) || len(d.Bag(id)) == 0 {
			continue
		}
		child, err := d.AddChildWithBag(id, nil)
		if err != nil {
			return err
		}
		rec.NodeCreated()
		if err := labelNode(d, child, functions); err != nil {
			return err
		}
	}
	rec.OperationApplied("AddEmptyLeaves")
	return nil
}
