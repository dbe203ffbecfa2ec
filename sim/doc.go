// Package sim runs the whole simulation pipeline in one call:
//
//	tree → density → expression parameters → sampled cells → count matrix
//
// Run takes a Config, builds the tree, normalizes the density (uniform when
// none is supplied), generates parameter curves with the chosen model,
// samples cell positions and synthesizes counts. The Result keeps every
// intermediate product so callers can plot curves or inspect cell metadata
// without re-running.
//
// Seeding: the single Config seed is split into one substream per stage
// (parameters, sampling, synthesis) by SplitMix64 mixing. Changing the cell
// count therefore never perturbs the parameter curves, and the same seed
// reproduces the entire Result bit for bit.
//
// Errors from the underlying packages pass through unchanged, so callers
// can match the stage sentinels (tree.ErrInvalidTopology,
// density.ErrDegenerateDensity, expression.ErrInvalidParameter,
// counts.ErrSynthesis, …) directly.
package sim
