package expression

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"lineagesim/internal/xrand"
	"lineagesim/tree"
)

// Velocity-model constants of the amortized diffusion process. The update is
//
//	W[t+1] = W[t] + V[t]
//	V[t+1] = velocityCarry·V[t] + ε − η·V[t],  ε ~ N(0, 1/T), η ~ U(0,1)
//
// so velocity decays instead of integrating a plain Brownian path.
const (
	velocityCarry = 0.95
	velocitySigma = 0.2
)

// Modules generates parameter curves from coexpression modules.
//
// Per branch (in topological order): K diffusion processes describe the
// relative behavior of K modules over the branch's bins; every gene belongs
// to two modules drawn uniformly (with replacement), each with
// Beta-distributed influence. The gene's mean curve is the module mix scaled
// by its base mean. Child-branch curves are shifted so their first bin
// equals the parent's last bin exactly, then clamped to the MinMean floor.
//
// A freshly drawn process whose absolute correlation with an earlier process
// of the same branch exceeds CorrCutoff is redrawn, at most MaxRetries times
// per module; after the budget the last draw is kept.
//
// Branch draws run on substreams keyed by branch arena index, so sibling
// branches could be generated concurrently (each after its parent) without
// changing the result.
func Modules(t *tree.Tree, opts ...Option) (*Params, error) {
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

	genes := t.GeneCount()
	base, err := cfg.resolveBaseMeans(genes, parent)
	if err != nil {
		return nil, err
	}

	mean := allocCurves(t)

	for _, i := range t.Order() {
		br, _ := t.Branch(i)
		brng := xrand.Derive(parent, streamBranch+uint64(i))

		w := simulateProcesses(br.Len, cfg.Modules, cfg.CorrCutoff, cfg.MaxRetries, brng)
		h := simulateMembership(cfg.Modules, genes, &cfg, brng)

		// mean[i][k][g] = base[g] · Σ_m w[m][k]·h[m][g]
		for k := 0; k < br.Len; k++ {
			row := mean[i][k]
			for g := 0; g < genes; g++ {
				var mix float64
				for m := 0; m < cfg.Modules; m++ {
					mix += w[m][k] * h[m][g]
				}
				row[g] = base[g] * mix
			}
		}

		if br.Parent == tree.NoParent {
			clampRows(mean[i], 0, cfg.MinMean)
			continue
		}

		// Shift every gene so the curve continues the parent without a jump,
		// then clamp the later bins. Bin 0 is assigned the parent's last value
		// outright (the parent is already floored), so it stays exact.
		plast := mean[br.Parent][len(mean[br.Parent])-1]
		for g := 0; g < genes; g++ {
			delta := mean[i][0][g] - plast[g]
			mean[i][0][g] = plast[g]
			for k := 1; k < br.Len; k++ {
				mean[i][k][g] -= delta
			}
		}
		clampRows(mean[i], 1, cfg.MinMean)
	}

	disp, err := buildDispersion(t, mean, &cfg, parent)
	if err != nil {
		return nil, err
	}

	return &Params{t: t, mean: mean, disp: disp}, nil
}

// simulateProcesses draws k diffusion processes of length n, redrawing
// processes that correlate too strongly with earlier ones.
func simulateProcesses(n, k int, cutoff float64, maxRetries int, rng *rand.Rand) [][]float64 {
	procs := make([][]float64, 0, k)
	retries := 0
	for len(procs) < k {
		w := diffusion(n, rng)
		if n > 1 && retries < maxRetries && correlates(w, procs, cutoff) {
			retries++
			continue
		}
		retries = 0
		procs = append(procs, w)
	}

	return procs
}

// diffusion simulates one amortized diffusion process of length n.
func diffusion(n int, rng *rand.Rand) []float64 {
	uni := distuv.Uniform{Min: 0, Max: 1, Src: rng}
	w := make([]float64, n)
	w[0] = uni.Rand()
	if n == 1 {
		return w
	}

	v := distuv.Normal{Mu: 0, Sigma: velocitySigma, Src: rng}.Rand()
	eta := uni.Rand()
	step := distuv.Normal{Mu: 0, Sigma: 1 / float64(n), Src: rng}

	for t := 0; t < n-1; t++ {
		w[t+1] = w[t] + v
		v = velocityCarry*v + step.Rand() - eta*v
	}

	return w
}

// correlates reports whether w's absolute Pearson correlation with any of
// the earlier processes exceeds cutoff. Degenerate (constant) processes
// yield NaN correlations and never count as correlated.
func correlates(w []float64, procs [][]float64, cutoff float64) bool {
	for _, p := range procs {
		if c := stat.Correlation(w, p, nil); !math.IsNaN(c) && math.Abs(c) > cutoff {
			return true
		}
	}

	return false
}

// simulateMembership assigns every gene to two modules drawn uniformly with
// replacement, each with Beta-distributed influence, and returns the k×genes
// membership matrix.
func simulateMembership(k, genes int, cfg *Options, rng *rand.Rand) [][]float64 {
	h := make([][]float64, k)
	for m := range h {
		h[m] = make([]float64, genes)
	}

	beta := distuv.Beta{Alpha: cfg.MembershipAlpha, Beta: cfg.MembershipBeta, Src: rng}
	for draw := 0; draw < 2; draw++ {
		for g := 0; g < genes; g++ {
			h[rng.Intn(k)][g] += beta.Rand()
		}
	}

	return h
}

// clampRows floors all entries of rows[from:] at floor.
func clampRows(rows [][]float64, from int, floor float64) {
	for k := from; k < len(rows); k++ {
		for g, v := range rows[k] {
			if v < floor {
				rows[k][g] = floor
			}
		}
	}
}
