package phylo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weightedTree assembles ((A:1,B:2):1,(C:3,D:4):1); by hand. The longest
// leaf-to-leaf path is B-D with length 8, so the midpoint sits exactly on
// the top of the (C,D) clade.
func weightedTree() *Tree {
	root := &Node{}
	ab := &Node{Length: ptr(1)}
	cd := &Node{Length: ptr(1)}
	root.AddChild(ab)
	root.AddChild(cd)
	ab.AddChild(&Node{Name: "A", Length: ptr(1)})
	ab.AddChild(&Node{Name: "B", Length: ptr(2)})
	cd.AddChild(&Node{Name: "C", Length: ptr(3)})
	cd.AddChild(&Node{Name: "D", Length: ptr(4)})
	return New(root)
}

// caterpillarTree assembles ((A:4,B:1):1,C:1);. The longest path is A-C
// with length 6 and the midpoint lies inside A's own branch.
func caterpillarTree() *Tree {
	root := &Node{}
	ab := &Node{Length: ptr(1)}
	root.AddChild(ab)
	root.AddChild(&Node{Name: "C", Length: ptr(1)})
	ab.AddChild(&Node{Name: "A", Length: ptr(4)})
	ab.AddChild(&Node{Name: "B", Length: ptr(1)})
	return New(root)
}

func maxRootToTip(t *Tree) float64 {
	max := 0.0
	for _, l := range t.Leaves() {
		d, _ := t.Distance(l, t.Root)
		if d > max {
			max = d
		}
	}
	return max
}

func leafDistances(t *testing.T, tree *Tree) map[[2]string]float64 {
	t.Helper()
	dists := make(map[[2]string]float64)
	leaves := tree.Leaves()
	for i, a := range leaves {
		for _, b := range leaves[i+1:] {
			d, err := tree.Distance(a, b)
			require.NoError(t, err)
			key := [2]string{a.Name, b.Name}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			dists[key] = d
		}
	}
	return dists
}

func TestMidpointOutgroup_AtCladeTop(t *testing.T) {
	tree := weightedTree()

	outgroup, above, err := tree.MidpointOutgroup()
	require.NoError(t, err)

	cd := tree.FindLeaf("C").Parent
	assert.Same(t, cd, outgroup)
	assert.InDelta(t, 0, above, 1e-9)
}

func TestMidpointOutgroup_InsideLeafBranch(t *testing.T) {
	tree := caterpillarTree()

	outgroup, above, err := tree.MidpointOutgroup()
	require.NoError(t, err)

	assert.Same(t, tree.FindLeaf("A"), outgroup)
	assert.InDelta(t, 3, above, 1e-9)
}

func TestMidpointOutgroup_TooFewLeaves(t *testing.T) {
	tree := New(&Node{Name: "A"})
	_, _, err := tree.MidpointOutgroup()
	assert.Error(t, err)
}

func TestSetOutgroup_RootIsNoop(t *testing.T) {
	tree := weightedTree()
	root := tree.Root

	require.NoError(t, tree.SetOutgroup(root, 0))
	assert.Same(t, root, tree.Root)
}

func TestSetOutgroup_OutsideBranch(t *testing.T) {
	tree := weightedTree()
	a := tree.FindLeaf("A")

	assert.Error(t, tree.SetOutgroup(a, 5))
	assert.Error(t, tree.SetOutgroup(nil, 0))
}

func TestRerootMidpoint_BalancesDepths(t *testing.T) {
	tree := weightedTree()
	require.NoError(t, tree.RerootMidpoint())

	// Each child of the new root leads to a subtree of depth 4: half of
	// the B-D diameter.
	require.Len(t, tree.Root.Children, 2)
	assert.InDelta(t, 4, maxRootToTip(tree), 1e-9)
}

func TestRerootMidpoint_PreservesTopology(t *testing.T) {
	trees := map[string]*Tree{
		"weighted":    weightedTree(),
		"caterpillar": caterpillarTree(),
	}

	for name, tree := range trees {
		t.Run(name, func(t *testing.T) {
			wantNames := tree.LeafNames()
			wantDists := leafDistances(t, tree)

			require.NoError(t, tree.RerootMidpoint())

			assert.Equal(t, wantNames, tree.LeafNames())
			gotDists := leafDistances(t, tree)
			require.Len(t, gotDists, len(wantDists))
			for key, want := range wantDists {
				assert.InDelta(t, want, gotDists[key], 1e-9, "distance %v", key)
			}
		})
	}
}

func TestRerootMidpoint_Idempotent(t *testing.T) {
	tree := weightedTree()
	require.NoError(t, tree.RerootMidpoint())

	firstDepth := maxRootToTip(tree)
	firstDists := leafDistances(t, tree)

	require.NoError(t, tree.RerootMidpoint())

	assert.InDelta(t, firstDepth, maxRootToTip(tree), 1e-9)
	gotDists := leafDistances(t, tree)
	for key, want := range firstDists {
		assert.InDelta(t, want, gotDists[key], 1e-9, "distance %v", key)
	}
	require.Len(t, tree.Root.Children, 2)
}

func TestRerootMidpoint_UnitLengths(t *testing.T) {
	// ((A,B),(C,D)); with implicit unit lengths: the midpoint falls on
	// the current root, so the rooting is unchanged and no lengths are
	// invented.
	root := &Node{}
	ab := &Node{}
	cd := &Node{}
	root.AddChild(ab)
	root.AddChild(cd)
	ab.AddChild(&Node{Name: "A"})
	ab.AddChild(&Node{Name: "B"})
	cd.AddChild(&Node{Name: "C"})
	cd.AddChild(&Node{Name: "D"})
	tree := New(root)

	require.NoError(t, tree.RerootMidpoint())

	require.Len(t, tree.Root.Children, 2)
	assert.Equal(t, []string{"A", "B", "C", "D"}, tree.LeafNames())
	tree.Walk(func(n *Node) {
		assert.Nil(t, n.Length)
	})
	assert.InDelta(t, 2, maxRootToTip(tree), 1e-9)
}

func TestSetOutgroup_Caterpillar(t *testing.T) {
	tree := caterpillarTree()
	a := tree.FindLeaf("A")

	require.NoError(t, tree.SetOutgroup(a, 3))

	// New root splits A's branch 3/1.
	require.Len(t, tree.Root.Children, 2)
	assert.Same(t, a, tree.Root.Children[0])
	require.NotNil(t, a.Length)
	assert.InDelta(t, 3, *a.Length, 1e-9)

	d, err := tree.Distance(tree.FindLeaf("B"), tree.FindLeaf("C"))
	require.NoError(t, err)
	assert.InDelta(t, 3, d, 1e-9)

	d, err = tree.Distance(a, tree.FindLeaf("C"))
	require.NoError(t, err)
	assert.InDelta(t, 6, d, 1e-9)
}

func TestSetOutgroup_KeepsSupportOnBothHalves(t *testing.T) {
	tree := weightedTree()
	cd := tree.FindLeaf("C").Parent
	cd.Support = ptr(0.87)

	require.NoError(t, tree.SetOutgroup(cd, 0.5))

	require.Len(t, tree.Root.Children, 2)
	for _, c := range tree.Root.Children {
		require.NotNil(t, c.Support)
		assert.InDelta(t, 0.87, *c.Support, 1e-9)
	}
}
