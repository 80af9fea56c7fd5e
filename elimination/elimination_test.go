package elimination_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/htdecomp/core"
	"github.com/katalvlaran/htdecomp/elimination"
	"github.com/katalvlaran/htdecomp/manip"
	"github.com/katalvlaran/htdecomp/ordering"
	"github.com/katalvlaran/htdecomp/verify"
)

func buildPath(t *testing.T, n int) *core.MultiHypergraph {
	t.Helper()
	g := core.NewMultiHypergraph()
	g.AddVertices(n)
	for i := core.VertexID(1); i < core.VertexID(n); i++ {
		_, err := g.AddEdge(i, i+1)
		require.NoError(t, err)
	}
	return g
}

func TestComputeEmptyGraphProducesSingleEmptyRoot(t *testing.T) {
	g := core.NewMultiHypergraph()

	d, err := elimination.BucketEliminationAlgorithm{}.Compute(g, elimination.Config{
		Ordering: ordering.MinFill(),
	})
	require.NoError(t, err)

	root, ok := d.Root()
	require.True(t, ok)
	require.Empty(t, d.Bag(root))
	require.Empty(t, d.Children(root))
}

func TestComputeOnPathProducesRunningIntersectionTree(t *testing.T) {
	g := buildPath(t, 5)

	d, err := elimination.BucketEliminationAlgorithm{}.Compute(g, elimination.Config{
		Ordering: ordering.MinFill(),
	})
	require.NoError(t, err)

	_, ok := d.Root()
	require.True(t, ok)

	// Every edge of g must be a subset of at least one bag.
	nodes := d.Nodes()
	for _, e := range g.Hyperedges() {
		found := false
		for _, n := range nodes {
			bag := d.Bag(n)
			if containsAll(bag, e.Elements) {
				found = true
				break
			}
		}
		require.True(t, found, "edge %v not covered by any bag", e.Elements)
	}

	// Every vertex must appear in at least one bag.
	for i := core.VertexID(1); i <= 5; i++ {
		found := false
		for _, n := range nodes {
			if contains(d.Bag(n), i) {
				found = true
				break
			}
		}
		require.True(t, found, "vertex %d not in any bag", i)
	}
}

func TestComputeWithExternalOrderingAndSingleTopLevelBucket(t *testing.T) {
	g := buildPath(t, 3)

	// For a path 1-2-3, eliminating in order [2,1,3]: bucket(2) holds
	// both edges (1,2) and (2,3) since vertex 2 has the smallest
	// position (0) in both, giving bag {1,2,3}; its remainder {1,3}
	// merges into whichever of 1/3 is eliminated next (position 1 is
	// vertex 1), giving bag {1,3}, whose remainder {3} merges into
	// bucket(3). Only bucket(3) has no merge target, so it becomes the
	// root directly with bag {3} — no synthetic empty root.
	d, err := elimination.BucketEliminationAlgorithm{}.Compute(g, elimination.Config{
		Ordering: ordering.External([]core.VertexID{2, 1, 3}),
	})
	require.NoError(t, err)

	root, ok := d.Root()
	require.True(t, ok)
	require.ElementsMatch(t, []core.VertexID{3}, d.Bag(root))
}

func TestComputeHypertreeCoverage(t *testing.T) {
	g := buildPath(t, 4)

	d, err := elimination.BucketEliminationAlgorithm{}.Compute(g, elimination.Config{
		Ordering:                 ordering.MinFill(),
		ComputeHypertreeCoverage: true,
	})
	require.NoError(t, err)

	for _, id := range d.Nodes() {
		bag := d.Bag(id)
		cover := d.Cover(id)

		covered := make(map[core.VertexID]struct{})
		for _, e := range cover {
			for _, v := range e.Elements {
				covered[v] = struct{}{}
			}
		}
		for _, v := range bag {
			_, ok := covered[v]
			require.True(t, ok, "bag vertex %d not in cover", v)
		}
	}
}

func TestComputeAppliesLabeling(t *testing.T) {
	g := buildPath(t, 3)

	d, err := elimination.BucketEliminationAlgorithm{}.Compute(g, elimination.Config{
		Ordering: ordering.MinFill(),
		Labeling: []manip.LabelingFunction{manip.BagSize{}, manip.BagSizeTimesTwo{}},
	})
	require.NoError(t, err)

	for _, id := range d.Nodes() {
		size, ok := d.Label(id, "BAG_SIZE")
		require.True(t, ok)
		doubled, ok := d.Label(id, "BAG_SIZE_TIMES_2")
		require.True(t, ok)
		require.Equal(t, size.(int)*2, doubled)
	}
}

func TestComputeOnIsolatedVerticesCoversEveryVertex(t *testing.T) {
	// spec.md §8.2: three isolated vertices, no edges at all.
	g := core.NewMultiHypergraph()
	g.AddVertices(3)

	d, err := elimination.BucketEliminationAlgorithm{}.Compute(g, elimination.Config{
		Ordering: ordering.MinFill(),
	})
	require.NoError(t, err)

	ok, violations := verify.Verify(g, d)
	require.True(t, ok, "violations: %v", violations)

	nodes := d.Nodes()
	for i := core.VertexID(1); i <= 3; i++ {
		found := false
		for _, n := range nodes {
			if contains(d.Bag(n), i) {
				found = true
				break
			}
		}
		require.True(t, found, "isolated vertex %d not in any bag", i)
	}
}

func TestComputeWithIsolatedVertexAlongsideTriangleCoversEveryVertex(t *testing.T) {
	// spec.md §8.6: an isolated v4 alongside a triangle on {1,2,3}.
	g := core.NewMultiHypergraph()
	g.AddVertices(4)
	_, err := g.AddEdge(1, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 3)
	require.NoError(t, err)

	d, err := elimination.BucketEliminationAlgorithm{}.Compute(g, elimination.Config{
		Ordering:                 ordering.MinFill(),
		ComputeHypertreeCoverage: true,
	})
	require.NoError(t, err)

	ok, violations := verify.Verify(g, d)
	require.True(t, ok, "violations: %v", violations)

	found := false
	for _, n := range d.Nodes() {
		if contains(d.Bag(n), 4) {
			found = true
			break
		}
	}
	require.True(t, found, "isolated vertex 4 not in any bag")
}

func TestComputeRejectsNilOrdering(t *testing.T) {
	g := buildPath(t, 2)
	_, err := elimination.BucketEliminationAlgorithm{}.Compute(g, elimination.Config{})
	require.ErrorIs(t, err, elimination.ErrInvalidArgument)
}

func contains(bag []core.VertexID, v core.VertexID) bool {
	for _, x := range bag {
		if x == v {
			return true
		}
	}
	return false
}

func containsAll(bag, elements []core.VertexID) bool {
	for _, v := range elements {
		if !contains(bag, v) {
			return false
		}
	}
	return true
}
