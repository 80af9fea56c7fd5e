// File: grammar.go — the HyperBench-manual hyperedge text grammar,
// grounded in _examples/lnz-BalancedGo/lib/parser.go's ParseGraph
// grammar and upgraded from participle v0.3's non-generic
// participle.MustBuild to participle v2's generic participle.MustBuild[T].
//
// Grammar: a comma-separated sequence of "name(v1,v2,...)" hyperedges,
// e.g. "e1(a,b,c), e2(b,d)". Names and vertex tokens are identifiers or
// integers.
package format

import "github.com/alecthomas/participle/v2"

type parseEdge struct {
	Name     string   `@Ident`
	Vertices []string `"(" ( @(Ident|Int) ","? )* ")"`
}

type parseGraph struct {
	Edges []parseEdge `( @@ ","? )*`
}

var grammarParser = participle.MustBuild[parseGraph]()
