package ordering_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/htdecomp/core"
	"github.com/katalvlaran/htdecomp/ordering"
)

func buildTriangle(t *testing.T) (*core.MultiHypergraph, core.VertexID, core.VertexID, core.VertexID) {
	t.Helper()
	g := core.NewMultiHypergraph()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)
	_, err = g.AddEdge(a, c)
	require.NoError(t, err)
	return g, a, b, c
}

func assertIsPermutation(t *testing.T, g *core.MultiHypergraph, order []core.VertexID) {
	t.Helper()
	live := g.Vertices()
	require.Len(t, order, live.Len())
	seen := make(map[core.VertexID]struct{})
	for _, v := range order {
		require.True(t, live.Contains(v))
		_, dup := seen[v]
		require.False(t, dup)
		seen[v] = struct{}{}
	}
}

func TestMinFillProducesPermutation(t *testing.T) {
	g, _, _, _ := buildTriangle(t)
	order, err := ordering.MinFill().Order(g)
	require.NoError(t, err)
	assertIsPermutation(t, g, order)
}

func TestMinDegreeProducesPermutation(t *testing.T) {
	g, _, _, _ := buildTriangle(t)
	order, err := ordering.MinDegree().Order(g)
	require.NoError(t, err)
	assertIsPermutation(t, g, order)
}

func TestOrderingDoesNotMutateInput(t *testing.T) {
	g, _, _, _ := buildTriangle(t)
	before := g.EdgeCount()
	_, err := ordering.MinFill().Order(g)
	require.NoError(t, err)
	require.Equal(t, before, g.EdgeCount())
}

func TestExternalValidatesPermutation(t *testing.T) {
	g, a, b, c := buildTriangle(t)

	order, err := ordering.External([]core.VertexID{a, b, c}).Order(g)
	require.NoError(t, err)
	require.Equal(t, []core.VertexID{a, b, c}, order)

	_, err = ordering.External([]core.VertexID{a, b}).Order(g)
	require.Error(t, err)
	require.True(t, errors.Is(err, ordering.ErrInvalidArgument))

	_, err = ordering.External([]core.VertexID{a, a, b}).Order(g)
	require.Error(t, err)
	require.True(t, errors.Is(err, ordering.ErrInvalidArgument))
}
