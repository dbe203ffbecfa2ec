// Package expression generates per-gene parameter curves for the
// negative-binomial count model: one mean curve and one dispersion curve per
// gene, indexed by (branch, bin) over the whole lineage tree.
//
// Two generators are provided:
//
//   - Walk — each gene starts from a base mean (supplied or drawn lognormal)
//     and drifts along every branch as a bounded random walk: successive bins
//     add a zero-mean Gaussian step and are clamped to a positive floor.
//   - Modules — the coexpression-module model: per branch, K amortized
//     diffusion processes describe how modules behave over pseudotime; each
//     gene belongs to roughly two modules with Beta-distributed influence,
//     and its mean curve is the module mix scaled by the gene's base mean.
//     Newly drawn processes that correlate too strongly with earlier ones
//     are redrawn, up to a retry budget.
//
// Both generators process branches in topological order and initialize every
// child branch from the parent's final value, so curves are exactly
// continuous across bifurcations — no jump at a branch point.
//
// The dispersion curve is derived from the mean through the variance model
//
//	s² = α·µ² + β·µ   (over-dispersion grows with expression)
//
// giving dispersion r = µ²/(s²−µ), scaled by an independent per-gene
// lognormal noise factor and clamped to a strictly positive floor. A
// configuration for which s² ≤ µ or a non-finite value appears is a modeling
// bug, reported as ErrInvalidParameter with gene, branch and bin context.
//
// Determinism: all draws run on substreams derived from one seed, keyed by
// gene or branch index, so results do not depend on iteration order and a
// given seed reproduces curves bit for bit.
//
// Complexity:
//
//	Walk:    O(G·T) time, O(G·T) space,  G = genes, T = total bins.
//	Modules: O(B·K·(T_b·K + G·T_b)) time per branch plus the Walk-sized output.
//
// Errors:
//   - ErrNilTree          — no tree supplied.
//   - ErrBadOption        — out-of-range option value or bad base means.
//   - ErrInvalidParameter — the variance model produced an unusable dispersion.
//   - ErrCurveShape       — caller-supplied curves disagree with the tree.
//   - ErrAddress          — parameter lookup outside the tree's address space.
package expression
