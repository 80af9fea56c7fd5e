package verify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/htdecomp/core"
	"github.com/katalvlaran/htdecomp/elimination"
	"github.com/katalvlaran/htdecomp/ordering"
	"github.com/katalvlaran/htdecomp/tree"
	"github.com/katalvlaran/htdecomp/verify"
)

func buildTriangle(t *testing.T) *core.MultiHypergraph {
	t.Helper()
	g := core.NewMultiHypergraph()
	g.AddVertices(3)
	_, err := g.AddEdge(1, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 3)
	require.NoError(t, err)
	return g
}

func TestVerifyAcceptsBucketEliminationOutput(t *testing.T) {
	g := buildTriangle(t)

	d, err := elimination.BucketEliminationAlgorithm{}.Compute(g, elimination.Config{
		Ordering: ordering.MinFill(),
	})
	require.NoError(t, err)

	ok, violations := verify.Verify(g, d)
	require.True(t, ok, "%v", violations)
	require.Empty(t, violations)
}

func TestVerifyAcceptsHypertreeCoverage(t *testing.T) {
	g := buildTriangle(t)

	d, err := elimination.BucketEliminationAlgorithm{}.Compute(g, elimination.Config{
		Ordering:                 ordering.MinFill(),
		ComputeHypertreeCoverage: true,
	})
	require.NoError(t, err)

	ok, violations := verify.Verify(g, d)
	require.True(t, ok, "%v", violations)
}

func TestVerifyDetectsMissingVertexCoverage(t *testing.T) {
	g := buildTriangle(t)

	d := tree.NewDecomposition()
	_, err := d.AddRootWithBag([]core.VertexID{1, 2})
	require.NoError(t, err)

	ok, violations := verify.Verify(g, d)
	require.False(t, ok)
	require.Len(t, violations, 3) // missing vertex 3, edge (2,3) uncovered, edge (1,3) uncovered
}

func TestVerifyDetectsBrokenRunningIntersection(t *testing.T) {
	g := buildTriangle(t)

	d := tree.NewDecomposition()
	root, err := d.AddRootWithBag([]core.VertexID{1, 2, 3})
	require.NoError(t, err)
	mid, err := d.AddChildWithBag(root, []core.VertexID{2})
	require.NoError(t, err)
	_, err = d.AddChildWithBag(mid, []core.VertexID{1, 3})
	require.NoError(t, err)

	ok, violations := verify.Verify(g, d)
	require.False(t, ok)

	found := false
	for _, v := range violations {
		if v.Invariant == verify.RunningIntersection {
			found = true
		}
	}
	require.True(t, found, "%v", violations)
}

func TestVerifyDetectsHypertreeCoverageViolation(t *testing.T) {
	g := buildTriangle(t)

	d := tree.NewDecomposition()
	root, err := d.AddRootWithBag([]core.VertexID{1, 2, 3})
	require.NoError(t, err)
	// A cover that does not span the whole bag.
	d.SetCover(root, []core.Hyperedge{{ID: 1, Elements: []core.VertexID{1, 2}}})

	ok, violations := verify.Verify(g, d)
	require.False(t, ok)
	require.Equal(t, verify.HypertreeCoverage, violations[0].Invariant)
}
