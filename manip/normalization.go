// File: normalization.go — NormalizationOperation, the fixed 6-step
// composition that turns an arbitrary tree decomposition into a nice
// one: empty root, empty leaves, join-node normalization, exchange-node
// replacement, then forgotten- and introduced-vertex limiting to 1.

package manip

import (
	"github.com/katalvlaran/htdecomp/metrics"
	"github.com/katalvlaran/htdecomp/tree"
)

// normalizationOperation runs the fixed operation sequence that
// produces a nice tree decomposition: every node introduces or forgets
// at most one vertex relative to its single child, join nodes share
// their children's bags exactly, and every root-to-leaf path starts and
// ends on an empty bag.
type normalizationOperation struct {
	steps []Operation
}

// NormalizationOperation returns the composed nice-decomposition
// normalization operation.
func NormalizationOperation() Operation {
	return normalizationOperation{
		steps: []Operation{
			AddEmptyRoot(),
			AddEmptyLeaves(),
			JoinNodeNormalization(),
			ExchangeNodeReplacement(),
			LimitMaximumForgottenVerticesCount(1),
			LimitMaximumIntroducedVerticesCount(1),
		},
	}
}

func (normalizationOperation) Name() string { return "NormalizationOperation" }

func (op normalizationOperation) Apply(d *tree.Decomposition, rec metrics.Recorder, functions ...LabelingFunction) error {
	rec = metrics.OrNoop(rec)
	for _, step := range op.steps {
		if err := step.Apply(d, rec, functions...); err != nil {
			return err
		}
	}
	rec.OperationApplied("NormalizationOperation")
	return nil
}
