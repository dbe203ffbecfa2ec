package expression

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"lineagesim/internal/xrand"
	"lineagesim/tree"
)

// dispersionFor converts one mean value into a negative-binomial dispersion
// through the variance model s² = α·µ² + β·µ, giving r = µ²/(s²−µ).
// s² must strictly exceed µ, otherwise the model is not over-dispersed and
// the configuration is unusable.
func dispersionFor(mu float64, cfg *Options) (float64, error) {
	s2 := cfg.VarQuad*mu*mu + cfg.VarLin*mu
	if !(s2 > mu) {
		return 0, fmt.Errorf("%w: variance %v not above mean %v (alpha=%v, beta=%v)",
			ErrInvalidParameter, s2, mu, cfg.VarQuad, cfg.VarLin)
	}

	return mu * mu / (s2 - mu), nil
}

// buildDispersion derives the full dispersion curves from the mean curves:
// the variance-model value times an independent per-gene lognormal noise
// factor, clamped to the configured floor.
func buildDispersion(t *tree.Tree, mean [][][]float64, cfg *Options, parent uint64) ([][][]float64, error) {
	genes := t.GeneCount()

	noise := make([]float64, genes)
	for g := range noise {
		noise[g] = 1
	}
	if cfg.NoiseSigma > 0 {
		dist := distuv.LogNormal{Mu: 0, Sigma: cfg.NoiseSigma, Src: xrand.Derive(parent, streamDispNoise)}
		for g := range noise {
			noise[g] = dist.Rand()
		}
	}

	disp := make([][][]float64, len(mean))
	for i := range mean {
		br, _ := t.Branch(i)
		disp[i] = make([][]float64, len(mean[i]))
		for k := range mean[i] {
			disp[i][k] = make([]float64, genes)
			for g, mu := range mean[i][k] {
				d, err := dispersionFor(mu, cfg)
				if err != nil {
					return nil, fmt.Errorf("%w (gene %d, branch %q, bin %d)", err, g, br.Label, k)
				}
				d *= noise[g]
				if d < cfg.MinDispersion {
					d = cfg.MinDispersion
				}
				if !finite(d) {
					return nil, fmt.Errorf("%w: dispersion %v (gene %d, branch %q, bin %d)",
						ErrInvalidParameter, d, g, br.Label, k)
				}
				disp[i][k][g] = d
			}
		}
	}

	return disp, nil
}
