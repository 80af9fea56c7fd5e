// File: decomp_json.go — a CLI-only JSON debug format for a
// tree.Decomposition, used solely by `htdecomp decompose --json` and
// `htdecomp verify --decomp-file`. Neither the teacher nor any example
// repo ships a canonical tree-decomposition interchange format, so this
// is deliberately a thin, unversioned debug dump rather than a format
// package concern.
package main

import (
	"encoding/json"

	"github.com/katalvlaran/htdecomp/core"
	"github.com/katalvlaran/htdecomp/tree"
)

type edgeDTO struct {
	ID       uint64   `json:"id"`
	Elements []uint64 `json:"elements"`
}

type nodeDTO struct {
	ID       uint64    `json:"id"`
	ParentID uint64    `json:"parent_id"` // 0 (tree.NoNode) for the root
	Bag      []uint64  `json:"bag"`
	Cover    []edgeDTO `json:"cover,omitempty"`
	Children []uint64  `json:"children"`
}

type decompositionDTO struct {
	RootID uint64    `json:"root_id"`
	Nodes  []nodeDTO `json:"nodes"`
}

func marshalDecomposition(d *tree.Decomposition) ([]byte, error) {
	root, _ := d.Root()
	dto := decompositionDTO{RootID: uint64(root)}

	for _, id := range d.Nodes() {
		parent, _ := d.Parent(id)

		bag := d.Bag(id)
		bagIDs := make([]uint64, len(bag))
		for i, v := range bag {
			bagIDs[i] = uint64(v)
		}

		var cover []edgeDTO
		for _, e := range d.Cover(id) {
			elems := make([]uint64, len(e.Elements))
			for i, v := range e.Elements {
				elems[i] = uint64(v)
			}
			cover = append(cover, edgeDTO{ID: uint64(e.ID), Elements: elems})
		}

		children := d.Children(id)
		childIDs := make([]uint64, len(children))
		for i, c := range children {
			childIDs[i] = uint64(c)
		}

		dto.Nodes = append(dto.Nodes, nodeDTO{
			ID:       uint64(id),
			ParentID: uint64(parent),
			Bag:      bagIDs,
			Cover:    cover,
			Children: childIDs,
		})
	}

	return json.MarshalIndent(dto, "", "  ")
}

func unmarshalDecomposition(data []byte) (*tree.Decomposition, error) {
	var dto decompositionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}

	d := tree.NewDecomposition()
	created := make(map[uint64]tree.NodeID, len(dto.Nodes))
	byID := make(map[uint64]nodeDTO, len(dto.Nodes))
	for _, n := range dto.Nodes {
		byID[n.ID] = n
	}

	var build func(srcID uint64) (tree.NodeID, error)
	build = func(srcID uint64) (tree.NodeID, error) {
		if id, ok := created[srcID]; ok {
			return id, nil
		}
		n := byID[srcID]
		bag := make([]core.VertexID, len(n.Bag))
		for i, v := range n.Bag {
			bag[i] = core.VertexID(v)
		}

		var newID tree.NodeID
		var err error
		if srcID == dto.RootID {
			newID, err = d.AddRootWithBag(bag)
		} else {
			parentID, perr := build(n.ParentID)
			if perr != nil {
				return tree.NoNode, perr
			}
			newID, err = d.AddChildWithBag(parentID, bag)
		}
		if err != nil {
			return tree.NoNode, err
		}
		created[srcID] = newID

		if len(n.Cover) > 0 {
			cover := make([]core.Hyperedge, len(n.Cover))
			for i, e := range n.Cover {
				elems := make([]core.VertexID, len(e.Elements))
				for j, v := range e.Elements {
					elems[j] = core.VertexID(v)
				}
				cover[i] = core.Hyperedge{ID: core.EdgeID(e.ID), Elements: elems}
			}
			d.SetCover(newID, cover)
		}
		return newID, nil
	}

	for _, n := range dto.Nodes {
		if _, err := build(n.ID); err != nil {
			return nil, err
		}
	}

	return d, nil
}
