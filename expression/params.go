package expression

import (
	"fmt"
	"math"

	"lineagesim/tree"
)

// Params holds the generated parameter curves, read-only after construction.
//
// Curves are addressed as [branch arena index][bin][gene]. Means and
// dispersions are strictly positive by construction; downstream synthesis
// additionally requires them to be finite.
type Params struct {
	t    *tree.Tree
	mean [][][]float64
	disp [][][]float64
}

// NewParams wraps caller-supplied curves after validating their shape
// against the tree and the strict-positivity invariant. Curve slices are
// deep-copied; the caller keeps ownership of its input.
//
// Finiteness is deliberately not enforced here: a non-finite entry surfaces
// at synthesis time as a per-draw error, matching the count model's
// retry-eligible failure mode.
func NewParams(t *tree.Tree, mean, disp [][][]float64) (*Params, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	cm, err := copyCurves(t, mean, "mean")
	if err != nil {
		return nil, err
	}
	cd, err := copyCurves(t, disp, "dispersion")
	if err != nil {
		return nil, err
	}

	return &Params{t: t, mean: cm, disp: cd}, nil
}

func copyCurves(t *tree.Tree, in [][][]float64, kind string) ([][][]float64, error) {
	if len(in) != t.NumBranches() {
		return nil, fmt.Errorf("%w: %s curves cover %d of %d branches",
			ErrCurveShape, kind, len(in), t.NumBranches())
	}

	out := make([][][]float64, len(in))
	for i := range in {
		br, _ := t.Branch(i)
		if len(in[i]) != br.Len {
			return nil, fmt.Errorf("%w: %s curve on branch %q has %d of %d bins",
				ErrCurveShape, kind, br.Label, len(in[i]), br.Len)
		}
		out[i] = make([][]float64, br.Len)
		for k := range in[i] {
			if len(in[i][k]) != t.GeneCount() {
				return nil, fmt.Errorf("%w: %s curve on branch %q bin %d has %d of %d genes",
					ErrCurveShape, kind, br.Label, k, len(in[i][k]), t.GeneCount())
			}
			for g, v := range in[i][k] {
				// NaN fails this comparison too.
				if !(v > 0) {
					return nil, fmt.Errorf("%w: %s value %v (gene %d, branch %q, bin %d)",
						ErrInvalidParameter, kind, v, g, br.Label, k)
				}
			}
			out[i][k] = append([]float64(nil), in[i][k]...)
		}
	}

	return out, nil
}

// Tree returns the tree these parameters were generated for.
func (p *Params) Tree() *tree.Tree { return p.t }

// GeneCount returns the number of genes covered by the curves.
func (p *Params) GeneCount() int { return p.t.GeneCount() }

// At returns the (mean, dispersion) pair at one (branch, bin, gene) address.
func (p *Params) At(branch, bin, gene int) (mu, r float64, err error) {
	if branch < 0 || branch >= len(p.mean) {
		return 0, 0, fmt.Errorf("%w: branch index %d", ErrAddress, branch)
	}
	if bin < 0 || bin >= len(p.mean[branch]) {
		return 0, 0, fmt.Errorf("%w: bin %d on branch index %d", ErrAddress, bin, branch)
	}
	if gene < 0 || gene >= p.t.GeneCount() {
		return 0, 0, fmt.Errorf("%w: gene %d", ErrAddress, gene)
	}

	return p.mean[branch][bin][gene], p.disp[branch][bin][gene], nil
}

// MeanCurve returns a copy of one gene's mean curve along one branch,
// for diagnostic plotting.
func (p *Params) MeanCurve(label string, gene int) ([]float64, error) {
	return p.curve(p.mean, label, gene)
}

// DispersionCurve returns a copy of one gene's dispersion curve along one
// branch, for diagnostic plotting.
func (p *Params) DispersionCurve(label string, gene int) ([]float64, error) {
	return p.curve(p.disp, label, gene)
}

func (p *Params) curve(src [][][]float64, label string, gene int) ([]float64, error) {
	i, err := p.t.Index(label)
	if err != nil {
		return nil, err
	}
	if gene < 0 || gene >= p.t.GeneCount() {
		return nil, fmt.Errorf("%w: gene %d", ErrAddress, gene)
	}

	out := make([]float64, len(src[i]))
	for k := range src[i] {
		out[k] = src[i][k][gene]
	}

	return out, nil
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
