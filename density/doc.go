// Package density defines where on the lineage tree cells are likely to be
// sampled from.
//
// A Map assigns each branch an ordered sequence of non-negative weights, one
// per pseudotime bin. Weights need not be normalized — per branch or
// globally; Normalize rescales them jointly by the tree-wide sum so that the
// total mass over all (branch, bin) pairs is exactly 1 while relative shape
// is preserved. Zero weights stay exactly zero: a bin with weight 0 keeps
// probability 0, never “approximately 0”.
//
// Uniform builds the default density (equal weight on every bin of every
// branch) for callers that do not supply their own.
//
// The per-branch shape is entirely the caller's modeling choice; this
// package makes no assumption about it.
//
// Complexity:
//
//	Normalize/Uniform: O(T) time and space, T = total bins over all branches.
//	Accessors:         O(1), except Cumulative which copies in O(T).
//
// Errors:
//   - ErrNilTree           — no tree supplied.
//   - ErrDensityShape      — branch set or bin count disagrees with the tree.
//   - ErrDensityValue      — negative or non-finite weight.
//   - ErrDegenerateDensity — total mass is zero, nothing to sample.
package density
