// Package builder assembles deterministic hypergraph fixtures out of
// reusable Constructor closures, in the style of a graph-builder DSL:
// compose BuildGraph(gopts, bopts, Path(5), RandomHyperedges(20, 8))
// to get a fully-formed *core.MultiHypergraph in one call.
package builder

import (
	"fmt"

	"github.com/katalvlaran/htdecomp/core"
)

// Constructor applies a deterministic mutation to a *core.MultiHypergraph
// using the resolved builderConfig. Constructors validate parameters
// early and return sentinel errors; they never panic.
type Constructor func(g *core.MultiHypergraph, cfg *builderConfig) error

// BuildGraph creates a new core.MultiHypergraph with graph options gopts,
// resolves the builder configuration from bopts, and applies every
// constructor in cons, in order. The first constructor error is wrapped
// with "BuildGraph: %w" and returned immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.MultiHypergraph, error) {
	g := core.NewMultiHypergraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
