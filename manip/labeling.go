// File: labeling.go — LabelingFunction and the built-in functions used
// throughout the elimination and manip packages, plus the Label entry
// point that applies a chain of them to every node of a decomposition.

package manip

import (
	"fmt"

	"github.com/katalvlaran/htdecomp/core"
	"github.com/katalvlaran/htdecomp/tree"
)

// LabelingFunction computes one named label per tree-decomposition node.
// Functions are applied in a fixed order at each node, and later
// functions in the chain see earlier functions' results for the SAME
// node via snapshot — this is how BagSizeTimesTwo depends on BagSize.
type LabelingFunction interface {
	// Name is the key the computed label is stored under.
	Name() string

	// ComputeLabel computes the label value for bag, given the labels
	// already computed at this node earlier in the chain.
	ComputeLabel(bag []core.VertexID, snapshot map[string]interface{}) (interface{}, error)

	// Clone returns an independent copy. Built-in functions are
	// stateless, so Clone is typically just "return a fresh zero value".
	Clone() LabelingFunction
}

// Label applies every function in functions, in order, to every node of
// d. At each node the functions run in sequence and share a single
// growing snapshot, so function i+1 can read the label function i just
// computed at that node.
func Label(d *tree.Decomposition, functions ...LabelingFunction) error {
	for _, id := range d.Nodes() {
		bag := d.Bag(id)
		snapshot := d.Labels(id)
		for _, fn := range functions {
			v, err := fn.ComputeLabel(bag, snapshot)
			if err != nil {
				return fmt.Errorf("Label: node %d, function %q: %w", id, fn.Name(), err)
			}
			snapshot[fn.Name()] = v
			d.SetLabel(id, fn.Name(), v)
		}
	}
	return nil
}

// BagSize labels a node with the size of its bag, under "BAG_SIZE".
type BagSize struct{}

func (BagSize) Name() string { return "BAG_SIZE" }

func (BagSize) ComputeLabel(bag []core.VertexID, _ map[string]interface{}) (interface{}, error) {
	return len(bag), nil
}

func (BagSize) Clone() LabelingFunction { return BagSize{} }

// BagSizeTimesTwo labels a node with twice its BAG_SIZE label, under
// "BAG_SIZE_TIMES_2". It must run after BagSize in the same chain.
type BagSizeTimesTwo struct{}

func (BagSizeTimesTwo) Name() string { return "BAG_SIZE_TIMES_2" }

func (BagSizeTimesTwo) ComputeLabel(_ []core.VertexID, snapshot map[string]interface{}) (interface{}, error) {
	v, ok := snapshot["BAG_SIZE"]
	if !ok {
		return nil, wrapf("BagSizeTimesTwo.ComputeLabel", ErrInvalidArgument, "BAG_SIZE not present in snapshot; run BagSize first")
	}
	size, ok := v.(int)
	if !ok {
		return nil, wrapf("BagSizeTimesTwo.ComputeLabel", ErrInvalidArgument, "BAG_SIZE has unexpected type %T", v)
	}
	return size * 2, nil
}

func (BagSizeTimesTwo) Clone() LabelingFunction { return BagSizeTimesTwo{} }

// Treewidth labels a node with len(bag)-1, clamped at 0, under
// "TREEWIDTH_CONTRIBUTION". The decomposition's treewidth is the maximum
// of this label over every node.
type Treewidth struct{}

func (Treewidth) Name() string { return "TREEWIDTH_CONTRIBUTION" }

func (Treewidth) ComputeLabel(bag []core.VertexID, _ map[string]interface{}) (interface{}, error) {
	if len(bag) == 0 {
		return 0, nil
	}
	return len(bag) - 1, nil
}

func (Treewidth) Clone() LabelingFunction { return Treewidth{} }
