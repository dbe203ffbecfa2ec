package expression

import "errors"

var (
	// ErrNilTree indicates that no tree was supplied.
	ErrNilTree = errors.New("expression: tree is nil")

	// ErrBadOption indicates an option value outside its documented range,
	// or base means of the wrong length or with non-positive entries.
	ErrBadOption = errors.New("expression: bad option value")

	// ErrInvalidParameter indicates the variance model produced a
	// non-positive or non-finite dispersion. This is a modeling
	// configuration bug, not a recoverable runtime condition.
	ErrInvalidParameter = errors.New("expression: invalid negative-binomial parameter")

	// ErrCurveShape indicates caller-supplied curves whose dimensions do not
	// match the tree (branch count, bin counts, or gene count).
	ErrCurveShape = errors.New("expression: curve shape does not match tree")

	// ErrAddress indicates a parameter lookup outside the tree's
	// (branch, bin, gene) address space.
	ErrAddress = errors.New("expression: address out of range")
)
