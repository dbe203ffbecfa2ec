package sim

import (
	"lineagesim/counts"
	"lineagesim/density"
	"lineagesim/expression"
	"lineagesim/internal/xrand"
	"lineagesim/newick"
	"lineagesim/pseudotime"
	"lineagesim/tree"
)

// Run executes the full pipeline for one Config.
func Run(cfg Config) (*Result, error) {
	specs := cfg.Specs
	if len(specs) == 0 && cfg.Newick != "" {
		var err error
		specs, err = newick.Parse(cfg.Newick)
		if err != nil {
			return nil, err
		}
	}

	t, err := tree.New(specs, cfg.GeneCount)
	if err != nil {
		return nil, err
	}

	var nd *density.Normalized
	if cfg.Density == nil {
		nd, err = density.Uniform(t)
	} else {
		nd, err = density.Normalize(t, cfg.Density)
	}
	if err != nil {
		return nil, err
	}

	params, err := generateParams(t, cfg)
	if err != nil {
		return nil, err
	}

	sampleOpts := append([]pseudotime.Option{
		pseudotime.WithSeed(xrand.Mix(cfg.Seed, streamSample)),
		pseudotime.WithScaleSigma(cfg.ScaleSigma),
	}, cfg.SampleOpts...)
	cells, err := pseudotime.Sample(nd, cfg.Cells, sampleOpts...)
	if err != nil {
		return nil, err
	}

	countOpts := append([]counts.Option{
		counts.WithSeed(xrand.Mix(cfg.Seed, streamCounts)),
	}, cfg.CountOpts...)
	matrix, err := counts.Synthesize(cells, params, countOpts...)
	if err != nil {
		return nil, err
	}

	return &Result{
		Tree:    t,
		Density: nd,
		Params:  params,
		Cells:   cells,
		Counts:  matrix,
	}, nil
}

func generateParams(t *tree.Tree, cfg Config) (*expression.Params, error) {
	opts := append([]expression.Option{
		expression.WithSeed(xrand.Mix(cfg.Seed, streamParams)),
	}, cfg.ExpressionOpts...)

	switch cfg.Model {
	case ModelWalk:
		return expression.Walk(t, opts...)
	case ModelModules:
		return expression.Modules(t, opts...)
	default:
		return nil, ErrBadModel
	}
}
