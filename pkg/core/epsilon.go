package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the absolute tolerance below which two reals compare equal.
const Epsilon = 1e-5

// Equal reports whether a and b differ by strictly less than Epsilon.
// A difference of exactly Epsilon is not equal.
func Equal[F constraints.Float](a, b F) bool {
	return math.Abs(float64(a)-float64(b)) < Epsilon
}
