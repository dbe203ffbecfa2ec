package expression

import (
	"gonum.org/v1/gonum/stat/distuv"

	"lineagesim/internal/xrand"
	"lineagesim/tree"
)

// Walk generates parameter curves by a bounded random walk.
//
// Per gene: the root branch starts at the gene's base mean; every following
// bin adds a zero-mean Gaussian step (sigma = WalkSigma × base mean) and is
// clamped to the MinMean floor. A child branch's first bin copies the parent
// branch's last value exactly, then keeps walking.
//
// Each gene walks on its own substream keyed by gene index, so curves do not
// depend on the order genes are processed in and the generation could be
// fanned out across goroutines per gene without changing the result.
func Walk(t *tree.Tree, opts ...Option) (*Params, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if t == nil {
		return nil, ErrNilTree
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = xrand.FromSeed(cfg.Seed)
	}
	parent := rng.Uint64()

	base, err := cfg.resolveBaseMeans(t.GeneCount(), parent)
	if err != nil {
		return nil, err
	}

	mean := allocCurves(t)
	order := t.Order()

	for g := 0; g < t.GeneCount(); g++ {
		step := cfg.WalkSigma * base[g]
		walk := distuv.Normal{Mu: 0, Sigma: step, Src: xrand.Derive(parent, streamGeneWalk+uint64(g))}

		start := base[g]
		if start < cfg.MinMean {
			start = cfg.MinMean
		}

		for _, i := range order {
			br, _ := t.Branch(i)

			// Continuity across the bifurcation: bin 0 copies the parent's
			// last bin exactly (or the base mean at the root).
			if br.Parent == tree.NoParent {
				mean[i][0][g] = start
			} else {
				plast := mean[br.Parent]
				mean[i][0][g] = plast[len(plast)-1][g]
			}

			for k := 1; k < br.Len; k++ {
				v := mean[i][k-1][g]
				if step > 0 {
					v += walk.Rand()
				}
				if v < cfg.MinMean {
					v = cfg.MinMean
				}
				mean[i][k][g] = v
			}
		}
	}

	disp, err := buildDispersion(t, mean, &cfg, parent)
	if err != nil {
		return nil, err
	}

	return &Params{t: t, mean: mean, disp: disp}, nil
}

// allocCurves allocates a zeroed [branch][bin][gene] cube matching t.
func allocCurves(t *tree.Tree) [][][]float64 {
	out := make([][][]float64, t.NumBranches())
	for i := 0; i < t.NumBranches(); i++ {
		br, _ := t.Branch(i)
		out[i] = make([][]float64, br.Len)
		for k := range out[i] {
			out[i][k] = make([]float64, t.GeneCount())
		}
	}

	return out
}
