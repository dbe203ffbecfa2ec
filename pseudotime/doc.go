// Package pseudotime draws cell positions on the lineage tree from a
// normalized density.
//
// Sample treats the normalized density as one categorical distribution over
// all (branch, bin) addresses, flattened in arena order. Each cell is an
// independent draw:
//
//  1. One uniform u in [0,1) is mapped through the cumulative mass by
//     upper-bound search (smallest index with cum > u). A bin with zero mass
//     has zero width on the cumulative axis and is structurally unselectable —
//     probability exactly 0, not approximately 0.
//  2. A second uniform in [0,1) places the cell continuously inside its bin,
//     avoiding artificial clumping at bin boundaries.
//  3. Optionally, a lognormal library-size factor models per-cell sequencing
//     depth; with sigma 0 the factor is exactly 1 and no draw is consumed.
//
// Determinism: with an identical seed and density, the full sequence of
// (branch, bin, offset, scale) draws is reproducible bit for bit. Draws are
// serialized on a single stream in cell order.
//
// Complexity:
//
//	Sample: O(n log T) time, O(n + T) space,
//	        n = number of cells, T = total bins over all branches.
//
// Errors:
//   - ErrNilDensity       — no normalized density supplied.
//   - ErrNegativeCellCount — requested cell count below zero
//     (zero cells is a valid request and yields an empty result).
//   - ErrBadScaleSigma    — negative or non-finite lognormal sigma.
package pseudotime
