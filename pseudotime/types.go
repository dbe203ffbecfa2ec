package pseudotime

import (
	"errors"

	"golang.org/x/exp/rand"
)

// Sentinel errors returned by Sample.
var (
	// ErrNilDensity indicates that no normalized density was supplied.
	ErrNilDensity = errors.New("pseudotime: normalized density is nil")

	// ErrNegativeCellCount indicates a requested cell count below zero.
	ErrNegativeCellCount = errors.New("pseudotime: cell count must be non-negative")

	// ErrBadScaleSigma indicates a negative or non-finite library-scaling sigma.
	ErrBadScaleSigma = errors.New("pseudotime: scale sigma must be finite and non-negative")
)

// Cell is one sampled position on the lineage tree.
//
// Bin is the discretized pseudotime index on Branch; Offset the continuous
// position within that bin, in [0,1). Time is the tree-global pseudotime
// (branch offset + bin + in-bin offset). ScaleFactor is the per-cell
// library-size multiplier, always positive.
type Cell struct {
	Branch      string
	Bin         int
	Offset      float64
	Time        float64
	ScaleFactor float64
}

// Default option values.
const (
	// defaultScaleSigma disables library scaling: every factor is exactly 1.
	defaultScaleSigma = 0.0
)

// Options configures Sample.
//
// Seed       – RNG seed; 0 maps to a fixed default for reproducible defaults.
// Rand       – explicit generator; overrides Seed when non-nil.
// ScaleSigma – sigma of the lognormal library-size factor (0 disables it).
type Options struct {
	Seed       uint64
	Rand       *rand.Rand
	ScaleSigma float64
}

// Option is a functional option for Sample.
type Option func(*Options)

// WithSeed sets the RNG seed. Seed 0 selects the fixed default stream.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies an explicit generator, e.g. a substream derived by a
// caller coordinating several stages. Takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithScaleSigma enables lognormal library-size scaling with the given sigma.
// Sigma 0 keeps every factor at exactly 1.
func WithScaleSigma(sigma float64) Option {
	return func(o *Options) { o.ScaleSigma = sigma }
}

// DefaultOptions returns the deterministic defaults: seed policy per
// WithSeed, no explicit generator, library scaling disabled.
func DefaultOptions() Options {
	return Options{
		Seed:       0,
		Rand:       nil,
		ScaleSigma: defaultScaleSigma,
	}
}
