package core

import "errors"

var (
	// ErrShapeMismatch indicates operand sizes or lengths disagree.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrSingularMatrix indicates an inverse was requested for a matrix with a zero determinant.
	ErrSingularMatrix = errors.New("singular matrix")

	// ErrDegenerateVector indicates a zero-magnitude vector was normalized.
	ErrDegenerateVector = errors.New("degenerate vector")
)
