package expression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineagesim/expression"
	"lineagesim/tree"
)

func twoLeaf(t *testing.T, genes int) *tree.Tree {
	t.Helper()
	tr, err := tree.New([]tree.BranchSpec{
		{Label: "root", Len: 5},
		{Label: "A", Parent: "root", Len: 10},
		{Label: "B", Parent: "root", Len: 10},
	}, genes)
	require.NoError(t, err)

	return tr
}

func TestWalk_NilTree(t *testing.T) {
	_, err := expression.Walk(nil)
	assert.ErrorIs(t, err, expression.ErrNilTree)
}

func TestWalk_ContinuityAtBifurcation(t *testing.T) {
	tr := twoLeaf(t, 40)
	p, err := expression.Walk(tr, expression.WithSeed(21))
	require.NoError(t, err)

	for _, leaf := range []string{"A", "B"} {
		for g := 0; g < 40; g++ {
			parentCurve, err := p.MeanCurve("root", g)
			require.NoError(t, err)
			childCurve, err := p.MeanCurve(leaf, g)
			require.NoError(t, err)
			// Exact equality, not approximate: the child copies the value.
			assert.Equal(t, parentCurve[len(parentCurve)-1], childCurve[0],
				"gene %d: %s must continue root without a jump", g, leaf)
		}
	}
}

func TestWalk_StrictlyPositiveCurves(t *testing.T) {
	tr := twoLeaf(t, 60)
	p, err := expression.Walk(tr, expression.WithSeed(2), expression.WithWalkSigma(0.5))
	require.NoError(t, err)

	for i := 0; i < tr.NumBranches(); i++ {
		br, _ := tr.Branch(i)
		for k := 0; k < br.Len; k++ {
			for g := 0; g < tr.GeneCount(); g++ {
				mu, r, err := p.At(i, k, g)
				require.NoError(t, err)
				require.Greater(t, mu, 0.0)
				require.Greater(t, r, 0.0)
			}
		}
	}
}

func TestWalk_Determinism(t *testing.T) {
	tr := twoLeaf(t, 30)

	a, err := expression.Walk(tr, expression.WithSeed(77))
	require.NoError(t, err)
	b, err := expression.Walk(tr, expression.WithSeed(77))
	require.NoError(t, err)
	c, err := expression.Walk(tr, expression.WithSeed(78))
	require.NoError(t, err)

	ca, _ := a.MeanCurve("A", 7)
	cb, _ := b.MeanCurve("A", 7)
	cc, _ := c.MeanCurve("A", 7)
	assert.Equal(t, ca, cb, "same seed ⇒ identical curves")
	assert.NotEqual(t, ca, cc, "different seed ⇒ different curves")
}

func TestWalk_ZeroSigmaGivesFlatCurves(t *testing.T) {
	tr := twoLeaf(t, 10)
	means := make([]float64, 10)
	for g := range means {
		means[g] = float64(g + 1)
	}

	p, err := expression.Walk(tr,
		expression.WithSeed(4),
		expression.WithWalkSigma(0),
		expression.WithBaseMeans(means),
	)
	require.NoError(t, err)

	for g := 0; g < 10; g++ {
		curve, err := p.MeanCurve("A", g)
		require.NoError(t, err)
		for _, v := range curve {
			assert.Equal(t, means[g], v, "zero step sigma must keep the base mean everywhere")
		}
	}
}

func TestWalk_SuppliedBaseMeansValidated(t *testing.T) {
	tr := twoLeaf(t, 3)

	_, err := expression.Walk(tr, expression.WithBaseMeans([]float64{1, 2}))
	assert.ErrorIs(t, err, expression.ErrBadOption, "wrong length")

	_, err = expression.Walk(tr, expression.WithBaseMeans([]float64{1, -2, 3}))
	assert.ErrorIs(t, err, expression.ErrBadOption, "non-positive entry")
}

func TestWalk_BadOptions(t *testing.T) {
	tr := twoLeaf(t, 3)

	_, err := expression.Walk(tr, expression.WithWalkSigma(-1))
	assert.ErrorIs(t, err, expression.ErrBadOption)

	_, err = expression.Walk(tr, expression.WithMinMean(0))
	assert.ErrorIs(t, err, expression.ErrBadOption)

	_, err = expression.Walk(tr, expression.WithNoiseSigma(-0.1))
	assert.ErrorIs(t, err, expression.ErrBadOption)
}

func TestWalk_UnderDispersedModelRejected(t *testing.T) {
	tr := twoLeaf(t, 5)

	// α=0, β=1 ⇒ s² = µ exactly: no over-dispersion, the negative-binomial
	// parameterization degenerates. Must fail loudly with context.
	_, err := expression.Walk(tr, expression.WithSeed(1), expression.WithVarianceModel(0, 1))
	require.ErrorIs(t, err, expression.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "gene")
	assert.Contains(t, err.Error(), "branch")
}
