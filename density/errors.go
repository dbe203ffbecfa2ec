package density

import "errors"

var (
	// ErrNilTree indicates that no tree was supplied.
	ErrNilTree = errors.New("density: tree is nil")

	// ErrDensityShape indicates the density map does not match the tree:
	// an unknown branch, a missing branch, or a bin-count mismatch.
	ErrDensityShape = errors.New("density: density map does not match tree shape")

	// ErrDensityValue indicates a negative or non-finite density weight.
	ErrDensityValue = errors.New("density: density weights must be finite and non-negative")

	// ErrDegenerateDensity indicates the total mass over all branches and
	// bins is zero, so no cell position can ever be drawn.
	ErrDegenerateDensity = errors.New("density: total density mass is zero")
)
