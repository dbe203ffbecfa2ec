package pseudotime

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"lineagesim/density"
	"lineagesim/internal/xrand"
)

// Sample draws n independent cell positions from the normalized density.
//
// Draw order per cell is fixed (position u, in-bin offset, optional scale
// factor), so a given seed yields a bit-identical sequence. n == 0 returns
// an empty, non-nil slice.
func Sample(nd *density.Normalized, n int, opts ...Option) ([]Cell, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if nd == nil {
		return nil, ErrNilDensity
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCellCount, n)
	}
	if math.IsNaN(cfg.ScaleSigma) || math.IsInf(cfg.ScaleSigma, 0) || cfg.ScaleSigma < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadScaleSigma, cfg.ScaleSigma)
	}

	cells := make([]Cell, 0, n)
	if n == 0 {
		return cells, nil
	}

	rng := cfg.Rand
	if rng == nil {
		rng = xrand.FromSeed(cfg.Seed)
	}

	// Lognormal factor centered on 1 (mu=0). Constructed once; only used
	// when sigma > 0 so the disabled path consumes no draws.
	scaleDist := distuv.LogNormal{Mu: 0, Sigma: cfg.ScaleSigma, Src: rng}

	t := nd.Tree()
	cum := nd.Cumulative()

	for i := 0; i < n; i++ {
		u := rng.Float64()

		// Upper-bound search: smallest flat index with cum > u. Equality is
		// excluded so a zero-width (zero-mass) bin can never be chosen.
		flat := sort.Search(len(cum), func(j int) bool { return cum[j] > u })
		if flat == len(cum) {
			// u landed at or above the accumulated total (floating-point
			// shortfall near 1). Fall back to the last bin with mass.
			flat--
			for flat > 0 && cum[flat] == cum[flat-1] {
				flat--
			}
		}

		branch, bin, err := nd.Address(flat)
		if err != nil {
			return nil, err
		}
		br, err := t.Branch(branch)
		if err != nil {
			return nil, err
		}

		off := rng.Float64()

		scale := 1.0
		if cfg.ScaleSigma > 0 {
			scale = scaleDist.Rand()
		}

		cells = append(cells, Cell{
			Branch:      br.Label,
			Bin:         bin,
			Offset:      off,
			Time:        float64(br.Offset+bin) + off,
			ScaleFactor: scale,
		})
	}

	return cells, nil
}
