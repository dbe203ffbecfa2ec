package sim

import (
	"errors"

	"lineagesim/counts"
	"lineagesim/density"
	"lineagesim/expression"
	"lineagesim/pseudotime"
	"lineagesim/tree"
)

// Sentinel errors for pipeline configuration.
var (
	// ErrBadModel indicates an unknown expression model selector.
	ErrBadModel = errors.New("sim: unknown expression model")
)

// Model selects the expression-parameter generator.
type Model int

const (
	// ModelWalk generates mean curves by a bounded random walk per gene.
	ModelWalk Model = iota

	// ModelModules generates mean curves from coexpression modules driven
	// by diffusion processes.
	ModelModules
)

// Substream identifiers for the pipeline stages.
const (
	streamParams uint64 = iota + 1
	streamSample
	streamCounts
)

// Config describes one simulation run.
//
// Specs and GeneCount define the tree; Newick is an alternative topology
// source used when Specs is empty. Density is optional (nil ⇒ uniform).
// Cells is the number of cells to sample. Seed drives all stages through
// derived substreams. ScaleSigma enables lognormal library scaling.
// ExpressionOpts, SampleOpts and CountOpts append stage options after the
// derived seeding, for knobs not lifted into Config.
type Config struct {
	Specs      []tree.BranchSpec
	Newick     string
	GeneCount  int
	Cells      int
	Seed       uint64
	Density    density.Map
	Model      Model
	ScaleSigma float64

	ExpressionOpts []expression.Option
	SampleOpts     []pseudotime.Option
	CountOpts      []counts.Option
}

// Result bundles every product of one run.
type Result struct {
	Tree    *tree.Tree
	Density *density.Normalized
	Params  *expression.Params
	Cells   []pseudotime.Cell
	Counts  *counts.Matrix
}
