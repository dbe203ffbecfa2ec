package counts

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"lineagesim/expression"
	"lineagesim/internal/xrand"
	"lineagesim/pseudotime"
)

// Synthesize draws one negative-binomial count per (cell, gene) pair and
// assembles the count matrix. Cells keep their input order as matrix rows.
//
// Zero cells is a valid request and yields a 0 × genes matrix.
func Synthesize(cells []pseudotime.Cell, params *expression.Params, opts ...Option) (*Matrix, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if params == nil {
		return nil, ErrNilParams
	}

	genes := params.GeneCount()
	m := &Matrix{
		cells: len(cells),
		genes: genes,
		data:  make([]int64, len(cells)*genes),
	}
	if len(cells) == 0 {
		return m, nil
	}

	rng := cfg.Rand
	if rng == nil {
		rng = xrand.FromSeed(cfg.Seed)
	}

	t := params.Tree()
	for i, cell := range cells {
		branch, err := t.Index(cell.Branch)
		if err != nil {
			return nil, fmt.Errorf("%w: cell %d on branch %q", ErrBadCell, i, cell.Branch)
		}
		if !(cell.ScaleFactor > 0) || math.IsInf(cell.ScaleFactor, 0) {
			return nil, fmt.Errorf("%w: cell %d has scale factor %v", ErrBadCell, i, cell.ScaleFactor)
		}

		for g := 0; g < genes; g++ {
			mu, r, err := params.At(branch, cell.Bin, g)
			if err != nil {
				return nil, fmt.Errorf("%w: cell %d (branch %q, bin %d)", ErrBadCell, i, cell.Branch, cell.Bin)
			}

			mu *= cell.ScaleFactor
			if !isFinitePositive(mu) || !isFinitePositive(r) {
				return nil, fmt.Errorf("%w: mean %v, dispersion %v (cell %d, gene %d, branch %q, bin %d)",
					ErrSynthesis, mu, r, i, g, cell.Branch, cell.Bin)
			}

			m.data[i*genes+g] = negBinomial(mu, r, rng)
		}
	}

	return m, nil
}

// negBinomial draws one count with mean mu and dispersion r via the
// gamma–Poisson mixture. rng must be non-nil.
func negBinomial(mu, r float64, rng *rand.Rand) int64 {
	lambda := distuv.Gamma{Alpha: r, Beta: r / mu, Src: rng}.Rand()
	if !(lambda > 0) {
		// Gamma mass can underflow to 0 for tiny means; the Poisson of 0 is 0.
		return 0
	}

	return int64(distuv.Poisson{Lambda: lambda, Src: rng}.Rand())
}

// isFinitePositive reports whether v is a usable distribution parameter.
func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
