package counts

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

// Sentinel errors returned by Synthesize.
var (
	// ErrNilParams indicates that no parameter curves were supplied.
	ErrNilParams = errors.New("counts: parameter curves are nil")

	// ErrBadCell indicates a sampled cell that does not fit the parameter
	// curves' tree (unknown branch, bin out of range) or carries a
	// non-positive scale factor.
	ErrBadCell = errors.New("counts: cell does not match parameter curves")

	// ErrSynthesis indicates a non-finite negative-binomial parameter for a
	// single (cell, gene) draw. Eligible for local retry after resampling
	// parameters.
	ErrSynthesis = errors.New("counts: non-finite negative-binomial parameter")
)

// Matrix is the immutable cell × gene count matrix. Rows follow the input
// cell order; columns are genes. Counts are non-negative.
type Matrix struct {
	cells int
	genes int
	data  []int64 // row-major
}

// Dims returns (cells, genes).
func (m *Matrix) Dims() (cells, genes int) { return m.cells, m.genes }

// At returns the count of gene j in cell i.
func (m *Matrix) At(i, j int) (int64, error) {
	if i < 0 || i >= m.cells || j < 0 || j >= m.genes {
		return 0, fmt.Errorf("%w: index (%d, %d) outside %dx%d", ErrBadCell, i, j, m.cells, m.genes)
	}

	return m.data[i*m.genes+j], nil
}

// Row returns a copy of cell i's count vector.
func (m *Matrix) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.cells {
		return nil, fmt.Errorf("%w: row %d outside %d cells", ErrBadCell, i, m.cells)
	}

	return append([]int64(nil), m.data[i*m.genes:(i+1)*m.genes]...), nil
}

// Total returns the sum of all counts (total simulated reads).
func (m *Matrix) Total() int64 {
	var sum int64
	for _, v := range m.data {
		sum += v
	}

	return sum
}

// Options configures Synthesize.
//
// Seed – RNG seed; 0 maps to a fixed default for reproducible defaults.
// Rand – explicit generator; overrides Seed when non-nil.
type Options struct {
	Seed uint64
	Rand *rand.Rand
}

// Option is a functional option for Synthesize.
type Option func(*Options)

// WithSeed sets the RNG seed. Seed 0 selects the fixed default stream.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies an explicit generator; overrides Seed when non-nil.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// DefaultOptions returns the deterministic defaults.
func DefaultOptions() Options {
	return Options{Seed: 0, Rand: nil}
}
