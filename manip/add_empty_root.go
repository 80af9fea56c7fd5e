// File: add_empty_root.go — AddEmptyRoot operation.

package manip

import (
	"github.com/katalvlaran/htdecomp/metrics"
	"github.com/katalvlaran/htdecomp/tree"
)

// addEmptyRoot ensures the decomposition's root carries an empty bag,
// splicing in a fresh empty-bag node above the current root when it
// does not. Idempotent: once the root's bag is empty, subsequent calls
// are no-ops.
type addEmptyRoot struct{}

// AddEmptyRoot returns the AddEmptyRoot operation.
func AddEmptyRoot() Operation { return addEmptyRoot{} }

func (addEmptyRoot) Name() string { return "AddEmptyRoot" }

func (addEmptyRoot) Apply(d *tree.Decomposition, rec metrics.Recorder, functions ...LabelingFunction) error {
	rec = metrics.OrNoop(rec)

	root, ok := d.Root()
	if !ok {
		rec.OperationApplied("AddEmptyRoot")
		return nil
	}
	if len(d.Bag(root)) == 0 {
		rec.OperationApplied("AddEmptyRoot")
		return nil
	}

	id, err := d.SpliceAboveWithBag(root, nil)
	if err != nil {
		return err
	}
	rec.NodeCreated()
	rec.OperationApplied("AddEmptyRoot")
	return labelNode(d, id, functions)
}
