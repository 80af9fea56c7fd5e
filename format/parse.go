// File: parse.go — ParseHypergraph: text -> core.MultiHypergraph.
package format

import (
	"io"

	"github.com/katalvlaran/htdecomp/core"
)

// ParseHypergraph reads a HyperBench-manual-style hyperedge list from r
// and builds a MultiHypergraph from it. Vertex names are assigned
// VertexIDs in first-seen order; the returned map decodes each
// VertexID back to its source name, for printing results in the
// caller's own vocabulary.
//
// Edge names in the source text are not preserved as graph structure
// (the MultiHypergraph numbers its own hyperedges); a malformed source
// document, or an edge with no vertices, reports ErrInvalidArgument.
func ParseHypergraph(r io.Reader) (*core.MultiHypergraph, map[core.VertexID]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, wrapf("ParseHypergraph", ErrInvalidArgument, "reading input: %v", err)
	}

	parsed, err := grammarParser.ParseString("", string(data))
	if err != nil {
		return nil, nil, wrapf("ParseHypergraph", ErrInvalidArgument, "parsing input: %v", err)
	}

	g := core.NewMultiHypergraph()
	names := make(map[string]core.VertexID)
	decode := make(map[core.VertexID]string)

	resolve := func(name string) core.VertexID {
		if id, ok := names[name]; ok {
			return id
		}
		id := g.AddVertex()
		names[name] = id
		decode[id] = name
		return id
	}

	for _, e := range parsed.Edges {
		if len(e.Vertices) == 0 {
			return nil, nil, wrapf("ParseHypergraph", ErrInvalidArgument, "edge %q has no vertices", e.Name)
		}
		elements := make([]core.VertexID, 0, len(e.Vertices))
		for _, v := range e.Vertices {
			elements = append(elements, resolve(v))
		}
		if _, err := g.AddEdge(elements...); err != nil {
			return nil, nil, wrapf("ParseHypergraph", ErrInvalidArgument, "edge %q: %v", e.Name, err)
		}
	}

	return g, decode, nil
}
