// Package tree models a branching developmental lineage as an arena of
// branch records.
//
// A Tree is built once from a list of BranchSpec entries (label, parent
// label, length in pseudotime bins) plus the number of genes to simulate,
// and is read-only afterwards. Branches are addressed by integer index;
// parent/child relations are stored as indices, so there are no cyclic
// object links to manage. Each branch carries a global pseudotime Offset
// (the summed lengths of its ancestors), which converts a (branch, bin)
// address into a tree-global pseudotime coordinate.
//
// Validation performed by New (in order):
//  1. At least one branch and a positive gene count.
//  2. Every branch length is positive.
//  3. Branch labels are unique.
//  4. Exactly one branch has no parent (the root).
//  5. Every declared parent exists.
//  6. Every branch is reachable from the root (no cycles, no orphans).
//
// Complexity:
//
//	New:       O(B) time and space, B = number of branches.
//	Accessors: O(1), except Order and Branch which copy in O(B).
//
// Errors:
//   - ErrInvalidTopology   — not a connected rooted tree.
//   - ErrNonPositiveLength — a branch length ≤ 0.
//   - ErrBadGeneCount      — gene count ≤ 0.
//   - ErrDuplicateBranch   — two branches share a label.
//   - ErrBranchNotFound    — lookup of an unknown label or index.
package tree
