package manip_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/htdecomp/core"
	"github.com/katalvlaran/htdecomp/manip"
	"github.com/katalvlaran/htdecomp/tree"
)

// snapshot captures enough of a decomposition's shape to compare two
// states structurally: for every node, its bag and the set of its
// children's bags (node ids themselves are allocation-order dependent
// and not meaningful to compare across two separately-built trees).
type snapshot struct {
	Bag      []core.VertexID
	Children []snapshot
}

func snapshotAt(d *tree.Decomposition, id tree.NodeID) snapshot {
	children := d.Children(id)
	out := make([]snapshot, 0, len(children))
	for _, c := range children {
		out = append(out, snapshotAt(d, c))
	}
	sort.Slice(out, func(i, j int) bool {
		return bagLess(out[i].Bag, out[j].Bag)
	})
	return snapshot{Bag: d.Bag(id), Children: out}
}

func bagLess(a, b []core.VertexID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// buildJoinTree builds: root{1,2} -> left{1,2,3}, right{1,2,4}.
func buildJoinTree(t *testing.T) *tree.Decomposition {
	t.Helper()
	d := tree.NewDecomposition()
	root, err := d.AddRootWithBag([]core.VertexID{1, 2})
	require.NoError(t, err)
	_, err = d.AddChildWithBag(root, []core.VertexID{1, 2, 3})
	require.NoError(t, err)
	_, err = d.AddChildWithBag(root, []core.VertexID{1, 2, 4})
	require.NoError(t, err)
	return d
}

func TestAddEmptyRootNoopWhenAlreadyEmpty(t *testing.T) {
	d := tree.NewDecomposition()
	root, err := d.AddRootWithBag(nil)
	require.NoError(t, err)

	require.NoError(t, manip.AddEmptyRoot().Apply(d, nil))
	newRoot, _ := d.Root()
	require.Equal(t, root, newRoot)
}

func TestAddEmptyRootSplicesWhenNonEmpty(t *testing.T) {
	d := tree.NewDecomposition()
	oldRoot, err := d.AddRootWithBag([]core.VertexID{1, 2})
	require.NoError(t, err)

	require.NoError(t, manip.AddEmptyRoot().Apply(d, nil))
	newRoot, ok := d.Root()
	require.True(t, ok)
	require.NotEqual(t, oldRoot, newRoot)
	require.Empty(t, d.Bag(newRoot))
	children := d.Children(newRoot)
	require.Equal(t, []tree.NodeID{oldRoot}, children)
}

func TestAddEmptyLeavesIdempotent(t *testing.T) {
	d := buildJoinTree(t)

	require.NoError(t, manip.AddEmptyLeaves().Apply(d, nil))
	root, _ := d.Root()
	after1 := snapshotAt(d, root)

	require.NoError(t, manip.AddEmptyLeaves().Apply(d, nil))
	after2 := snapshotAt(d, root)

	require.Empty(t, cmp.Diff(after1, after2))

	// Every former leaf now has exactly one empty-bag child.
	for _, child := range d.Children(root) {
		grandchildren := d.Children(child)
		require.Len(t, grandchildren, 1)
		require.Empty(t, d.Bag(grandchildren[0]))
	}
}

func TestJoinNodeNormalizationEqualizesChildren(t *testing.T) {
	d := buildJoinTree(t)
	root, _ := d.Root()

	require.NoError(t, manip.JoinNodeNormalization().Apply(d, nil))

	for _, child := range d.Children(root) {
		require.Equal(t, d.Bag(root), d.Bag(child))
	}
}

func TestExchangeNodeReplacementSplitsMixedEdge(t *testing.T) {
	d := tree.NewDecomposition()
	parent, err := d.AddRootWithBag([]core.VertexID{1, 2})
	require.NoError(t, err)
	child, err := d.AddChildWithBag(parent, []core.VertexID{2, 3})
	require.NoError(t, err)

	require.NoError(t, manip.ExchangeNodeReplacement().Apply(d, nil))

	children := d.Children(parent)
	require.Len(t, children, 1)
	mid := children[0]
	require.NotEqual(t, mid, child)
	require.Equal(t, []core.VertexID{2}, d.Bag(mid))

	midChildren := d.Children(mid)
	require.Equal(t, []tree.NodeID{child}, midChildren)

	// Both resulting edges are now single-direction.
	introducedTop := len(setDiffForTest(d.Bag(parent), d.Bag(mid)))
	forgottenTop := len(setDiffForTest(d.Bag(mid), d.Bag(parent)))
	require.Equal(t, 1, introducedTop)
	require.Equal(t, 0, forgottenTop)

	introducedBottom := len(setDiffForTest(d.Bag(mid), d.Bag(child)))
	forgottenBottom := len(setDiffForTest(d.Bag(child), d.Bag(mid)))
	require.Equal(t, 0, introducedBottom)
	require.Equal(t, 1, forgottenBottom)
}

func setDiffForTest(a, b []core.VertexID) []core.VertexID {
	inB := make(map[core.VertexID]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}
	var out []core.VertexID
	for _, v := range a {
		if _, ok := inB[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

func TestLimitIntroducedChunks(t *testing.T) {
	d := tree.NewDecomposition()
	parent, err := d.AddRootWithBag([]core.VertexID{1, 2, 3, 4, 5})
	require.NoError(t, err)
	child, err := d.AddChildWithBag(parent, nil)
	require.NoError(t, err)

	require.NoError(t, manip.LimitMaximumIntroducedVerticesCount(2).Apply(d, nil))

	// Walk parent -> ... -> child verifying every hop introduces <= 2.
	cur := parent
	for {
		children := d.Children(cur)
		require.Len(t, children, 1)
		next := children[0]
		introduced := setDiffForTest(d.Bag(cur), d.Bag(next))
		require.LessOrEqual(t, len(introduced), 2)
		if next == child {
			break
		}
		cur = next
	}
}

func TestLimitForgottenChunks(t *testing.T) {
	d := tree.NewDecomposition()
	parent, err := d.AddRootWithBag(nil)
	require.NoError(t, err)
	child, err := d.AddChildWithBag(parent, []core.VertexID{1, 2, 3, 4, 5})
	require.NoError(t, err)

	require.NoError(t, manip.LimitMaximumForgottenVerticesCount(2).Apply(d, nil))

	cur := parent
	for {
		children := d.Children(cur)
		require.Len(t, children, 1)
		next := children[0]
		forgotten := setDiffForTest(d.Bag(next), d.Bag(cur))
		require.LessOrEqual(t, len(forgotten), 2)
		if next == child {
			break
		}
		cur = next
	}
}

func TestNormalizationOperationProducesNiceDecomposition(t *testing.T) {
	d := buildJoinTree(t)

	require.NoError(t, manip.NormalizationOperation().Apply(d, nil))

	root, ok := d.Root()
	require.True(t, ok)
	require.Empty(t, d.Bag(root))

	var walk func(id tree.NodeID)
	walk = func(id tree.NodeID) {
		children := d.Children(id)
		switch len(children) {
		case 0:
			require.Empty(t, d.Bag(id))
		case 1:
			diffUp := setDiffForTest(d.Bag(id), d.Bag(children[0]))
			diffDown := setDiffForTest(d.Bag(children[0]), d.Bag(id))
			require.True(t, len(diffUp) == 0 || len(diffDown) == 0)
			require.LessOrEqual(t, len(diffUp), 1)
			require.LessOrEqual(t, len(diffDown), 1)
		default:
			for _, c := range children {
				require.Equal(t, d.Bag(id), d.Bag(c))
			}
		}
		for _, c := range children {
			walk(c)
		}
	}
	walk(root)
}

func TestNormalizationOperationIdempotent(t *testing.T) {
	build := func() *tree.Decomposition {
		d := buildJoinTree(t)
		require.NoError(t, manip.NormalizationOperation().Apply(d, nil))
		return d
	}

	first := build()
	root1, _ := first.Root()
	snap1 := snapshotAt(first, root1)

	require.NoError(t, manip.NormalizationOperation().Apply(first, nil))
	root2, _ := first.Root()
	snap2 := snapshotAt(first, root2)

	require.Empty(t, cmp.Diff(snap1, snap2))
}

func TestLabelChaining(t *testing.T) {
	d := tree.NewDecomposition()
	root, err := d.AddRootWithBag([]core.VertexID{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, manip.Label(d, manip.BagSize{}, manip.BagSizeTimesTwo{}))

	size, ok := d.Label(root, "BAG_SIZE")
	require.True(t, ok)
	require.Equal(t, 3, size)

	doubled, ok := d.Label(root, "BAG_SIZE_TIMES_2")
	require.True(t, ok)
	require.Equal(t, 6, doubled)
}

func TestBagSizeTimesTwoErrorsWithoutBagSize(t *testing.T) {
	d := tree.NewDecomposition()
	_, err := d.AddRootWithBag([]core.VertexID{1})
	require.NoError(t, err)

	err = manip.Label(d, manip.BagSizeTimesTwo{})
	require.ErrorIs(t, err, manip.ErrInvalidArgument)
}

func TestTreewidthLabelClampsAtZeroForEmptyBag(t *testing.T) {
	d := tree.NewDecomposition()
	root, err := d.AddRootWithBag(nil)
	require.NoError(t, err)

	require.NoError(t, manip.Label(d, manip.Treewidth{}))

	tw, ok := d.Label(root, "TREEWIDTH_CONTRIBUTION")
	require.True(t, ok)
	require.Equal(t, 0, tw)
}
