package tree

import "errors"

var (
	// ErrInvalidTopology indicates the branch specs do not form a connected
	// rooted tree (zero or multiple roots, unknown parent, cycle, orphan).
	ErrInvalidTopology = errors.New("tree: topology is not a connected rooted tree")

	// ErrNonPositiveLength indicates a branch length of zero or less.
	ErrNonPositiveLength = errors.New("tree: branch length must be positive")

	// ErrBadGeneCount indicates a non-positive gene count.
	ErrBadGeneCount = errors.New("tree: gene count must be positive")

	// ErrDuplicateBranch indicates two branch specs share the same label.
	ErrDuplicateBranch = errors.New("tree: duplicate branch label")

	// ErrBranchNotFound indicates a lookup of a label or index that is not
	// part of the tree.
	ErrBranchNotFound = errors.New("tree: branch not found")
)
