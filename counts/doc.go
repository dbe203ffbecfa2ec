// Package counts converts sampled cell positions and gene parameter curves
// into the final cell × gene count matrix.
//
// For every (cell, gene) pair, the gene's (mean, dispersion) value is looked
// up at the cell's (branch, bin) address, the mean is scaled by the cell's
// library-size factor, and one count is drawn from a negative binomial in
// mean/dispersion form via the gamma–Poisson mixture:
//
//	λ ~ Gamma(shape = r, rate = r/µ),  count ~ Poisson(λ)
//
// which yields E[count] = µ and Var[count] = µ + µ²/r — callers reason in
// expected count and over-dispersion directly, never in success-probability/
// trials form.
//
// The resulting Matrix is dense row-major int64, immutable once returned:
// rows are cells in input order, columns are genes.
//
// A non-finite (µ, r) pair aborts that draw with ErrSynthesis carrying the
// cell, gene, branch and bin; the caller may resample parameters and retry
// without restarting the whole run.
//
// Determinism: all draws run on a single seeded stream in (cell, gene)
// order; an identical seed with identical inputs reproduces the matrix
// bit for bit.
//
// Complexity:
//
//	Synthesize: O(n·G) draws, O(n·G) space, n = cells, G = genes.
//
// Errors:
//   - ErrNilParams — no parameter curves supplied.
//   - ErrBadCell   — a cell addresses a branch/bin outside the tree, or has
//     a non-positive scale factor.
//   - ErrSynthesis — a non-finite negative-binomial parameter for one draw.
package counts
