// File: join_node_normalization.go — JoinNodeNormalization operation.

package manip

import (
	"github.com/katalvlaran/htdecomp/metrics"
	"github.com/katalvlaran/htdecomp/tree"
)

// joinNodeNormalization ensures that every node with two or more
// children shares its exact bag with each of those children, splicing
// in an exact-bag-copy relay node above any child whose bag differs.
// ExchangeNodeReplacement subsequently splits each such relay edge into
// a pure introduce step and a pure forget step. Idempotent: once every
// child's bag equals its parent's bag, no relay nodes are inserted.
type joinNodeNormalization struct{}

// JoinNodeNormalization returns the JoinNodeNormalization operation.
func JoinNodeNormalization() Operation { return joinNodeNormalization{} }

func (joinNodeNormalization) Name() string { return "JoinNodeNormalization" }

func (joinNodeNormalization) Apply(d *tree.Decomposition, rec metrics.Recorder, functions ...LabelingFunction) error {
	rec = metrics.OrNoop(rec)

	for _, id := range d.Nodes() {
		children := d.Children(id)
		if len(children) < 2 {
			continue
		}
		parentBag := d.Bag(id)
		for _, c := range children {
			if setEqual(parentBag, d.Bag(c)) {
				continue
			}
			relay, err := d.SpliceAboveWithBag(c, parentBag)
			if err != nil {
				return err
			}
			rec.NodeCreated()
			if err := labelNode(d, relay, functions); err != nil {
				return err
			}
		}
	}
	rec.OperationApplied("JoinNodeNormalization")
	return nil
}
