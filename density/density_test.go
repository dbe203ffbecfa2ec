package density_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineagesim/density"
	"lineagesim/tree"
)

const massTol = 1e-9

func twoLeaf(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := tree.New([]tree.BranchSpec{
		{Label: "root", Len: 5},
		{Label: "A", Parent: "root", Len: 10},
		{Label: "B", Parent: "root", Len: 10},
	}, 50)
	require.NoError(t, err)

	return tr
}

func TestNormalize_NilTree(t *testing.T) {
	_, err := density.Normalize(nil, density.Map{})
	assert.ErrorIs(t, err, density.ErrNilTree)
	_, err = density.Uniform(nil)
	assert.ErrorIs(t, err, density.ErrNilTree)
}

func TestUniform_TotalIsOne(t *testing.T) {
	nd, err := density.Uniform(twoLeaf(t))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, nd.Total(), massTol)
	assert.Equal(t, 25, nd.FlatLen())

	// Every bin carries the same mass 1/25.
	w, err := nd.Weight(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/25.0, w, massTol)
}

func TestNormalize_PreservesShapeAndZeros(t *testing.T) {
	tr := twoLeaf(t)
	m := density.Map{
		"root": {0, 0, 0, 0, 0},
		"A":    {2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
		"B":    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	nd, err := density.Normalize(tr, m)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, nd.Total(), massTol)

	// Zero region survives as exact zero.
	w, err := nd.Weight(0, 3)
	require.NoError(t, err)
	assert.Zero(t, w)

	// A carries twice B's mass; together they carry everything.
	ma, err := nd.BranchMass("A")
	require.NoError(t, err)
	mb, err := nd.BranchMass("B")
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, ma, massTol)
	assert.InDelta(t, 1.0/3.0, mb, massTol)

	mr, err := nd.BranchMass("root")
	require.NoError(t, err)
	assert.Zero(t, mr)
}

func TestNormalize_InputNotMutated(t *testing.T) {
	tr := twoLeaf(t)
	m := density.Map{
		"root": {5, 5, 5, 5, 5},
		"A":    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		"B":    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	_, err := density.Normalize(tr, m)
	require.NoError(t, err)
	assert.Equal(t, 5.0, m["root"][0], "caller weights must stay untouched")
}

func TestNormalize_UnknownBranch(t *testing.T) {
	tr := twoLeaf(t)
	m := density.Map{"ghost": {1}}
	_, err := density.Normalize(tr, m)
	assert.ErrorIs(t, err, density.ErrDensityShape)
	assert.Contains(t, err.Error(), "ghost")
}

func TestNormalize_MissingBranch(t *testing.T) {
	tr := twoLeaf(t)
	m := density.Map{
		"root": {1, 1, 1, 1, 1},
		"A":    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		// B deliberately absent.
	}
	_, err := density.Normalize(tr, m)
	assert.ErrorIs(t, err, density.ErrDensityShape)
	assert.Contains(t, err.Error(), "B")
}

func TestNormalize_BinCountMismatch(t *testing.T) {
	tr := twoLeaf(t)
	m := density.Map{
		"root": {1, 1, 1}, // root has 5 bins
		"A":    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		"B":    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	_, err := density.Normalize(tr, m)
	assert.ErrorIs(t, err, density.ErrDensityShape)
}

func TestNormalize_NegativeValue(t *testing.T) {
	tr := twoLeaf(t)
	m := density.Map{
		"root": {1, 1, -1, 1, 1},
		"A":    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		"B":    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	_, err := density.Normalize(tr, m)
	assert.ErrorIs(t, err, density.ErrDensityValue)
	assert.Contains(t, err.Error(), "bin 2")
}

func TestNormalize_NonFiniteValue(t *testing.T) {
	tr := twoLeaf(t)
	m := density.Map{
		"root": {1, 1, math.NaN(), 1, 1},
		"A":    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		"B":    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	_, err := density.Normalize(tr, m)
	assert.ErrorIs(t, err, density.ErrDensityValue)
}

func TestNormalize_AllZero(t *testing.T) {
	tr := twoLeaf(t)
	m := density.Map{
		"root": {0, 0, 0, 0, 0},
		"A":    {0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		"B":    {0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	_, err := density.Normalize(tr, m)
	assert.ErrorIs(t, err, density.ErrDegenerateDensity)
}

func TestCumulative_ZeroBinsHaveZeroWidth(t *testing.T) {
	tr := twoLeaf(t)
	m := density.Map{
		"root": {0, 0, 0, 0, 0},
		"A":    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		"B":    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	nd, err := density.Normalize(tr, m)
	require.NoError(t, err)

	cum := nd.Cumulative()
	require.Len(t, cum, 25)
	// The five root bins repeat the running total exactly (width 0).
	for i := 0; i < 5; i++ {
		assert.Zero(t, cum[i], "zero bins at the front must not accumulate mass")
	}
	assert.InDelta(t, 1.0, cum[len(cum)-1], massTol)

	// Address round-trips the flat axis.
	b, bin, err := nd.Address(5)
	require.NoError(t, err)
	w, err := nd.Weight(b, bin)
	require.NoError(t, err)
	assert.Greater(t, w, 0.0)

	_, _, err = nd.Address(25)
	assert.ErrorIs(t, err, density.ErrDensityShape)
}
