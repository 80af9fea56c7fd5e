// File: print.go — FormatHypergraph: core.MultiHypergraph -> text, the
// inverse of ParseHypergraph, used by cmd/htdecomp and by the
// parse/print round-trip test.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/htdecomp/core"
)

// FormatHypergraph renders g as a comma-separated "name(v1,v2,...)"
// hyperedge list. names decodes a vertex id to its source token; a
// vertex with no entry is rendered as "v<id>". Edges are rendered in
// ascending edge-id order and are given synthetic names "e<id>", since
// MultiHypergraph does not itself store edge names.
func FormatHypergraph(g *core.MultiHypergraph, names map[core.VertexID]string) string {
	var b strings.Builder
	edges := g.Hyperedges()
	for i, e := range edges {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "e%d(", e.ID)
		for j, v := range e.Elements {
			if j > 0 {
				b.WriteString(",")
			}
			b.WriteString(vertexToken(v, names))
		}
		b.WriteString(")")
	}
	return b.String()
}

func vertexToken(v core.VertexID, names map[core.VertexID]string) string {
	if name, ok := names[v]; ok {
		return name
	}
	return "v" + strconv.FormatUint(uint64(v), 10)
}
