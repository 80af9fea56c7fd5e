// File: decomposition.go — TreeDecomposition: a LabeledTree plus per-node
// bags, optional hypertree covering-edge sets, and a label store.

package tree

import (
	"sort"
	"sync"

	"github.com/katalvlaran/htdecomp/core"
)

// Decomposition is a LabeledTree whose nodes each carry a bag of
// original-graph vertex ids, an optional covering-edges set (present only
// when the decomposition was built with hypertree coverage — see
// elimination.Config.ComputeHypertreeCoverage), and a label store mapping
// label name to opaque value.
//
// A Decomposition borrows nothing persistently from its source graph:
// bags and covers are copies. Labels are owned by the decomposition;
// Labels returns a copy of a node's label map.
type Decomposition struct {
	*LabeledTree

	mu     sync.Mutex
	bags   map[NodeID][]core.VertexID
	covers map[NodeID][]core.Hyperedge
	labels map[NodeID]map[string]interface{}
}

// NewDecomposition returns an empty, unrooted decomposition.
func NewDecomposition() *Decomposition {
	return &Decomposition{
		LabeledTree: NewLabeledTree(),
		bags:        make(map[NodeID][]core.VertexID),
		covers:      make(map[NodeID][]core.Hyperedge),
		labels:      make(map[NodeID]map[string]interface{}),
	}
}

// AddRootWithBag creates the root node with the given bag.
func (d *Decomposition) AddRootWithBag(bag []core.VertexID) (NodeID, error) {
	id, err := d.AddRoot()
	if err != nil {
		return NoNode, err
	}
	d.SetBag(id, bag)
	return id, nil
}

// AddChildWithBag creates a fresh child of parent with the given bag.
func (d *Decomposition) AddChildWithBag(parent NodeID, bag []core.VertexID) (NodeID, error) {
	id, err := d.AddChild(parent)
	if err != nil {
		return NoNode, err
	}
	d.SetBag(id, bag)
	return id, nil
}

// SpliceAboveWithBag inserts a fresh node above child with the given bag.
func (d *Decomposition) SpliceAboveWithBag(child NodeID, bag []core.VertexID) (NodeID, error) {
	id, err := d.SpliceAbove(child)
	if err != nil {
		return NoNode, err
	}
	d.SetBag(id, bag)
	return id, nil
}

// Bag returns a sorted, de-duplicated copy of id's bag.
func (d *Decomposition) Bag(id NodeID) []core.VertexID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return core.SortedUniqueVertices(d.bags[id])
}

// SetBag replaces id's bag with a sorted, de-duplicated copy of bag.
func (d *Decomposition) SetBag(id NodeID, bag []core.VertexID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bags[id] = core.SortedUniqueVertices(bag)
}

// Cover returns a copy of id's covering-edges set, or nil if hypertree
// coverage was not computed for this decomposition. A covering entry with
// ID == core.UnknownEdge is a synthetic singleton standing in for a bag
// vertex incident to no real hyperedge.
func (d *Decomposition) Cover(id NodeID) []core.Hyperedge {
	d.mu.Lock()
	defer d.mu.Unlock()
	src := d.covers[id]
	if src == nil {
		return nil
	}
	out := make([]core.Hyperedge, len(src))
	copy(out, src)
	return out
}

// SetCover replaces id's covering-edges set, sorted by edge id ascending.
func (d *Decomposition) SetCover(id NodeID, cover []core.Hyperedge) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]core.Hyperedge, len(cover))
	copy(out, cover)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	d.covers[id] = out
}

// Label returns the value stored under name at node id, and whether it
// was present.
func (d *Decomposition) Label(id NodeID, name string) (interface{}, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.labels[id][name]
	return v, ok
}

// SetLabel stores value under name at node id.
func (d *Decomposition) SetLabel(id NodeID, name string, value interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.labels[id] == nil {
		d.labels[id] = make(map[string]interface{})
	}
	d.labels[id][name] = value
}

// Labels returns a shallow copy of every label stored at node id.
func (d *Decomposition) Labels(id NodeID) map[string]interface{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[string]interface{}, len(d.labels[id]))
	for k, v := range d.labels[id] {
		out[k] = v
	}
	return out
}

// dropNode removes all bag/cover/label bookkeeping for id, for a node
// already removed with LabeledTree.RemoveLeaf. Nothing in the module
// calls it.
func (d *Decomposition) dropNode(id NodeID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.bags, id)
	delete(d.covers, id)
	delete(d.labels, id)
}
