package expression

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"lineagesim/internal/xrand"
)

// Deterministic defaults (named, no magic numbers).
const (
	// defaultBaseLogMean / defaultBaseLogSigma parameterize the lognormal
	// from which base expression means are drawn when none are supplied
	// (median e² ≈ 7.4 transcripts).
	defaultBaseLogMean  = 2.0
	defaultBaseLogSigma = 1.0

	// defaultWalkSigma is the random-walk step sigma as a fraction of the
	// gene's base mean.
	defaultWalkSigma = 0.05

	// defaultVarQuad / defaultVarLin are α and β of the variance model
	// s² = α·µ² + β·µ. The quadratic term dominates at high expression,
	// the linear one at low expression.
	defaultVarQuad = 0.3
	defaultVarLin  = 2.0

	// defaultNoiseSigma is the lognormal sigma of the per-gene dispersion
	// noise factor.
	defaultNoiseSigma = 0.25

	// defaultMinMean is the positive floor applied to mean curves; the
	// downstream count model divides by the mean.
	defaultMinMean = 0.1

	// defaultMinDispersion is the positive floor applied to dispersion
	// values after noise, guarding against harmless underflow only.
	defaultMinDispersion = 1e-6

	// defaultModules is K, the number of coexpression modules per branch.
	defaultModules = 10

	// defaultMembershipAlpha / Beta shape the (symmetric by default) Beta
	// distribution of gene-to-module influence.
	defaultMembershipAlpha = 2.0
	defaultMembershipBeta  = 2.0

	// defaultCorrCutoff rejects a freshly drawn diffusion process whose
	// absolute correlation with an earlier one exceeds this value.
	defaultCorrCutoff = 0.2

	// defaultMaxRetries bounds the redraw attempts per module before the
	// last draw is accepted as-is.
	defaultMaxRetries = 100
)

// Substream identifiers. Gene and branch streams are offset into disjoint
// high ranges so they can never collide with the stage streams.
const (
	streamBaseMeans uint64 = 1
	streamDispNoise uint64 = 2
	streamGeneWalk  uint64 = 1 << 32
	streamBranch    uint64 = 2 << 32
)

// Options configures Walk and Modules. Zero-value fields mean “use default”
// only through DefaultOptions; generators validate every field.
type Options struct {
	Seed uint64
	Rand *rand.Rand

	// BaseMeans supplies per-gene base expression (length = gene count).
	// Nil means draw from LogNormal(BaseLogMean, BaseLogSigma).
	BaseMeans    []float64
	BaseLogMean  float64
	BaseLogSigma float64

	// WalkSigma scales the Gaussian step of the random walk relative to the
	// gene's base mean. Walk generator only.
	WalkSigma float64

	// VarQuad (α) and VarLin (β) define the variance model s² = α·µ² + β·µ.
	VarQuad float64
	VarLin  float64

	// NoiseSigma is the lognormal sigma of the per-gene dispersion noise.
	NoiseSigma float64

	// MinMean and MinDispersion are strictly positive floors.
	MinMean       float64
	MinDispersion float64

	// Modules generator knobs.
	Modules         int
	MembershipAlpha float64
	MembershipBeta  float64
	CorrCutoff      float64
	MaxRetries      int
}

// Option is a functional option for the curve generators.
type Option func(*Options)

// WithSeed sets the RNG seed. Seed 0 selects the fixed default stream.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies an explicit generator; overrides Seed when non-nil.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithBaseMeans supplies per-gene base expression means instead of drawing
// them. Length must equal the tree's gene count; entries must be positive.
func WithBaseMeans(means []float64) Option {
	return func(o *Options) { o.BaseMeans = means }
}

// WithBaseLogNormal sets the lognormal parameters used when base means are
// drawn rather than supplied.
func WithBaseLogNormal(mu, sigma float64) Option {
	return func(o *Options) { o.BaseLogMean, o.BaseLogSigma = mu, sigma }
}

// WithWalkSigma sets the random-walk step sigma as a fraction of the base
// mean. Sigma 0 yields flat curves.
func WithWalkSigma(sigma float64) Option {
	return func(o *Options) { o.WalkSigma = sigma }
}

// WithVarianceModel sets α (quadratic) and β (linear) of s² = α·µ² + β·µ.
func WithVarianceModel(quad, lin float64) Option {
	return func(o *Options) { o.VarQuad, o.VarLin = quad, lin }
}

// WithNoiseSigma sets the per-gene dispersion noise sigma (0 disables noise).
func WithNoiseSigma(sigma float64) Option {
	return func(o *Options) { o.NoiseSigma = sigma }
}

// WithMinMean sets the positive floor for mean curves.
func WithMinMean(floor float64) Option {
	return func(o *Options) { o.MinMean = floor }
}

// WithModules sets K, the number of coexpression modules per branch.
func WithModules(k int) Option {
	return func(o *Options) { o.Modules = k }
}

// WithMembership sets the Beta shape parameters of gene-to-module influence.
func WithMembership(alpha, beta float64) Option {
	return func(o *Options) { o.MembershipAlpha, o.MembershipBeta = alpha, beta }
}

// WithCorrCutoff sets the absolute-correlation threshold above which a
// freshly drawn diffusion process is redrawn.
func WithCorrCutoff(cutoff float64) Option {
	return func(o *Options) { o.CorrCutoff = cutoff }
}

// DefaultOptions returns the documented deterministic defaults.
func DefaultOptions() Options {
	return Options{
		Seed:            0,
		Rand:            nil,
		BaseMeans:       nil,
		BaseLogMean:     defaultBaseLogMean,
		BaseLogSigma:    defaultBaseLogSigma,
		WalkSigma:       defaultWalkSigma,
		VarQuad:         defaultVarQuad,
		VarLin:          defaultVarLin,
		NoiseSigma:      defaultNoiseSigma,
		MinMean:         defaultMinMean,
		MinDispersion:   defaultMinDispersion,
		Modules:         defaultModules,
		MembershipAlpha: defaultMembershipAlpha,
		MembershipBeta:  defaultMembershipBeta,
		CorrCutoff:      defaultCorrCutoff,
		MaxRetries:      defaultMaxRetries,
	}
}

// validate rejects out-of-range knobs shared by both generators.
func (o *Options) validate() error {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

	switch {
	case !finite(o.WalkSigma) || o.WalkSigma < 0:
		return fmt.Errorf("%w: WalkSigma %v", ErrBadOption, o.WalkSigma)
	case !finite(o.VarQuad) || o.VarQuad < 0:
		return fmt.Errorf("%w: VarQuad %v", ErrBadOption, o.VarQuad)
	case !finite(o.VarLin) || o.VarLin < 0:
		return fmt.Errorf("%w: VarLin %v", ErrBadOption, o.VarLin)
	case !finite(o.NoiseSigma) || o.NoiseSigma < 0:
		return fmt.Errorf("%w: NoiseSigma %v", ErrBadOption, o.NoiseSigma)
	case !finite(o.MinMean) || o.MinMean <= 0:
		return fmt.Errorf("%w: MinMean %v", ErrBadOption, o.MinMean)
	case !finite(o.MinDispersion) || o.MinDispersion <= 0:
		return fmt.Errorf("%w: MinDispersion %v", ErrBadOption, o.MinDispersion)
	case o.Modules < 1:
		return fmt.Errorf("%w: Modules %d", ErrBadOption, o.Modules)
	case !finite(o.MembershipAlpha) || o.MembershipAlpha <= 0 ||
		!finite(o.MembershipBeta) || o.MembershipBeta <= 0:
		return fmt.Errorf("%w: membership shapes (%v, %v)", ErrBadOption, o.MembershipAlpha, o.MembershipBeta)
	case !finite(o.CorrCutoff) || o.CorrCutoff <= 0 || o.CorrCutoff > 1:
		return fmt.Errorf("%w: CorrCutoff %v", ErrBadOption, o.CorrCutoff)
	case o.MaxRetries < 1:
		return fmt.Errorf("%w: MaxRetries %d", ErrBadOption, o.MaxRetries)
	case !finite(o.BaseLogMean) || !finite(o.BaseLogSigma) || o.BaseLogSigma < 0:
		return fmt.Errorf("%w: base lognormal (%v, %v)", ErrBadOption, o.BaseLogMean, o.BaseLogSigma)
	}

	return nil
}

// resolveBaseMeans validates supplied base means or draws them from the
// configured lognormal on a dedicated substream.
func (o *Options) resolveBaseMeans(genes int, parent uint64) ([]float64, error) {
	if o.BaseMeans != nil {
		if len(o.BaseMeans) != genes {
			return nil, fmt.Errorf("%w: %d base means for %d genes", ErrBadOption, len(o.BaseMeans), genes)
		}
		out := make([]float64, genes)
		for g, v := range o.BaseMeans {
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return nil, fmt.Errorf("%w: base mean %v for gene %d", ErrBadOption, v, g)
			}
			out[g] = v
		}

		return out, nil
	}

	dist := distuv.LogNormal{Mu: o.BaseLogMean, Sigma: o.BaseLogSigma, Src: xrand.Derive(parent, streamBaseMeans)}
	out := make([]float64, genes)
	for g := range out {
		out[g] = dist.Rand()
	}

	return out, nil
}
