package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineagesim/tree"
)

// twoLeaf is the canonical fixture used throughout the module:
// a root of length 5 that bifurcates into two leaves of length 10.
func twoLeaf() []tree.BranchSpec {
	return []tree.BranchSpec{
		{Label: "root", Len: 5},
		{Label: "A", Parent: "root", Len: 10},
		{Label: "B", Parent: "root", Len: 10},
	}
}

func TestNew_TwoLeafFixture(t *testing.T) {
	tr, err := tree.New(twoLeaf(), 100)
	require.NoError(t, err)

	assert.Equal(t, 3, tr.NumBranches())
	assert.Equal(t, 100, tr.GeneCount())
	assert.Equal(t, 25, tr.TotalBins())
	assert.Equal(t, 15, tr.MaxTime(), "leaves end at 5+10")

	root, err := tr.Branch(tr.Root())
	require.NoError(t, err)
	assert.Equal(t, "root", root.Label)
	assert.Equal(t, tree.NoParent, root.Parent)
	assert.Len(t, root.Children, 2)

	ia, err := tr.Index("A")
	require.NoError(t, err)
	a, err := tr.Branch(ia)
	require.NoError(t, err)
	assert.Equal(t, tr.Root(), a.Parent)
	assert.Equal(t, 5, a.Offset, "child offset = parent offset + parent length")
}

func TestNew_OrderParentsFirst(t *testing.T) {
	// Deeper tree: root → A → (C, D), root → B. Specs deliberately list
	// children before parents to prove order does not depend on spec order.
	specs := []tree.BranchSpec{
		{Label: "D", Parent: "A", Len: 3},
		{Label: "C", Parent: "A", Len: 3},
		{Label: "B", Parent: "root", Len: 4},
		{Label: "A", Parent: "root", Len: 2},
		{Label: "root", Len: 1},
	}
	tr, err := tree.New(specs, 10)
	require.NoError(t, err)

	pos := make(map[int]int, tr.NumBranches())
	for p, idx := range tr.Order() {
		pos[idx] = p
	}
	for i := 0; i < tr.NumBranches(); i++ {
		br, err := tr.Branch(i)
		require.NoError(t, err)
		if br.Parent != tree.NoParent {
			assert.Less(t, pos[br.Parent], pos[i],
				"parent of %s must precede it in topological order", br.Label)
		}
	}

	// Offsets accumulate along the path root(1) → A(2) → C/D.
	ic, err := tr.Index("C")
	require.NoError(t, err)
	c, _ := tr.Branch(ic)
	assert.Equal(t, 3, c.Offset)
	assert.Equal(t, 6, tr.MaxTime())
}

func TestNew_NoBranches(t *testing.T) {
	_, err := tree.New(nil, 10)
	assert.ErrorIs(t, err, tree.ErrInvalidTopology)
}

func TestNew_BadGeneCount(t *testing.T) {
	_, err := tree.New(twoLeaf(), 0)
	assert.ErrorIs(t, err, tree.ErrBadGeneCount)
}

func TestNew_NonPositiveLength(t *testing.T) {
	specs := twoLeaf()
	specs[1].Len = 0
	_, err := tree.New(specs, 10)
	assert.ErrorIs(t, err, tree.ErrNonPositiveLength)
	assert.Contains(t, err.Error(), "A", "error must name the offending branch")
}

func TestNew_DuplicateLabel(t *testing.T) {
	specs := append(twoLeaf(), tree.BranchSpec{Label: "A", Parent: "root", Len: 2})
	_, err := tree.New(specs, 10)
	assert.ErrorIs(t, err, tree.ErrDuplicateBranch)
}

func TestNew_MultipleRoots(t *testing.T) {
	specs := append(twoLeaf(), tree.BranchSpec{Label: "root2", Len: 2})
	_, err := tree.New(specs, 10)
	assert.ErrorIs(t, err, tree.ErrInvalidTopology)
}

func TestNew_NoRoot(t *testing.T) {
	specs := []tree.BranchSpec{
		{Label: "A", Parent: "B", Len: 1},
		{Label: "B", Parent: "A", Len: 1},
	}
	_, err := tree.New(specs, 10)
	assert.ErrorIs(t, err, tree.ErrInvalidTopology)
}

func TestNew_UnknownParent(t *testing.T) {
	specs := append(twoLeaf(), tree.BranchSpec{Label: "C", Parent: "ghost", Len: 2})
	_, err := tree.New(specs, 10)
	assert.ErrorIs(t, err, tree.ErrInvalidTopology)
	assert.Contains(t, err.Error(), "ghost")
}

func TestNew_CycleUnreachable(t *testing.T) {
	// root is fine, but X and Y form a 2-cycle hanging off nothing.
	specs := []tree.BranchSpec{
		{Label: "root", Len: 5},
		{Label: "X", Parent: "Y", Len: 1},
		{Label: "Y", Parent: "X", Len: 1},
	}
	_, err := tree.New(specs, 10)
	assert.ErrorIs(t, err, tree.ErrInvalidTopology)
}

func TestTree_LookupErrors(t *testing.T) {
	tr, err := tree.New(twoLeaf(), 10)
	require.NoError(t, err)

	_, err = tr.Index("nope")
	assert.ErrorIs(t, err, tree.ErrBranchNotFound)

	_, err = tr.Branch(-1)
	assert.ErrorIs(t, err, tree.ErrBranchNotFound)
	_, err = tr.Branch(tr.NumBranches())
	assert.ErrorIs(t, err, tree.ErrBranchNotFound)
}

func TestTree_BranchReturnsCopy(t *testing.T) {
	tr, err := tree.New(twoLeaf(), 10)
	require.NoError(t, err)

	root, _ := tr.Branch(tr.Root())
	require.Len(t, root.Children, 2)
	root.Children[0] = 99

	again, _ := tr.Branch(tr.Root())
	assert.NotEqual(t, 99, again.Children[0], "mutating the copy must not touch the arena")
}
