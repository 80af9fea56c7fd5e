// File: exchange_node_replacement.go — ExchangeNodeReplacement operation.

package manip

import (
	"github.com/katalvlaran/htdecomp/metrics"
	"github.com/katalvlaran/htdecomp/tree"
)

// exchangeNodeReplacement splits every parent/child edge that both
// introduces and forgets vertices into two single-direction edges, by
// inserting an intermediate node whose bag is the intersection of the
// parent's and child's bags. After this operation every edge is a pure
// introduce step, a pure forget step, or unchanged (already pure).
// Idempotent: an intersection node's bag is a subset of both its
// neighbours' bags, so neither of its two new edges can still be mixed.
type exchangeNodeReplacement struct{}

// ExchangeNodeReplacement returns the ExchangeNodeReplacement operation.
func ExchangeNodeReplacement() Operation { return exchangeNodeReplacement{} }

func (exchangeNodeReplacement) Name() string { return "ExchangeNodeReplacement" }

func (exchangeNodeReplacement) Apply(d *tree.Decomposition, rec metrics.Recorder, functions ...LabelingFunction) error {
	rec = metrics.OrNoop(rec)

	for _, parent := range d.Nodes() {
		parentBag := d.Bag(parent)
		for _, child := range d.Children(parent) {
			childBag := d.Bag(child)
			introduced := setDiff(parentBag, childBag)
			forgotten := setDiff(childBag, parentBag)
			if len(introduced) == 0 || len(forgotten) == 0 {
				continue
			}

			mid := setIntersect(parentBag, childBag)
			id, err := d.SpliceAboveWithBag(child, mid)
			if err != nil {
				return err
			}
			rec.NodeCreated()
			if err := labelNode(d, id, functions); err != nil {
				return err
			}
		}
	}
	rec.OperationApplied("ExchangeNodeReplacement")
	return nil
}
