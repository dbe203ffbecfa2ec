// Package newick parses bracketed lineage notation into branch specs.
//
// The accepted dialect is the classic nested-parentheses form with integer
// branch lengths, terminated by a semicolon:
//
//	(A:10,B:10)root:5;
//
// Every node — internal or leaf — must carry a positive integer length,
// because downstream the length is the number of discrete pseudotime bins
// on that branch. Node labels are optional; unnamed nodes receive
// synthesized labels ("node1", "node2", …) in parse order.
//
// Parse returns the specs in a deterministic parent-before-children order
// ready for tree.New.
//
// # Errors
//
//   - ErrEmptyInput — the input is empty or whitespace only.
//   - ErrSyntax     — malformed structure; wrapped with the byte offset.
//   - ErrBadLength  — a length is missing, non-integer or non-positive.
//
// # Complexity
//
// Parsing is a single left-to-right scan: O(n) time, O(depth) stack.
package newick
