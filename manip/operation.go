// File: operation.go — the Operation interface every manipulation
// operation implements, plus shared plumbing (applying a labelling
// chain to a freshly created node and reporting it to a metrics.Recorder).

package manip

import (
	"github.com/katalvlaran/htdecomp/metrics"
	"github.com/katalvlaran/htdecomp/tree"
)

// Operation transforms a tree.Decomposition in place. Implementations
// must tolerate being applied to an already-normalized decomposition
// without error (most are idempotent by construction; see each type's
// doc comment for the precise idempotence guarantee).
type Operation interface {
	// Name identifies the operation for metrics.Recorder.OperationApplied.
	Name() string

	// Apply performs the transformation. rec may be nil, in which case
	// metrics.Noop() is used. Every node this Apply call creates is run
	// through functions before Apply returns.
	Apply(d *tree.Decomposition, rec metrics.Recorder, functions ...LabelingFunction) error
}

// labelNode applies every function in functions to id, in chain order,
// sharing the snapshot the same way Label does.
func labelNode(d *tree.Decomposition, id tree.NodeID, functions []LabelingFunction) error {
	bag := d.Bag(id)
	snapshot := d.Labels(id)
	for _, fn := range functions {
		v, err := fn.ComputeLabel(bag, snapshot)
		if err != nil {
			return err
		}
		snapshot[fn.Name()] = v
		d.SetLabel(id, fn.Name(), v)
	}
	return nil
}
