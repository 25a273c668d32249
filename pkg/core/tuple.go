package core

import (
	"fmt"
	"math"
)

// TupleLen is the number of components in a Tuple
const TupleLen = 4

// Tuple is a homogeneous 4-component value. W is 0 for vectors and 1 for points.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a Tuple from exactly four values
func NewTuple(values ...float64) (Tuple, error) {
	if len(values) != TupleLen {
		return Tuple{}, fmt.Errorf("tuple needs %d values, got %d: %w", TupleLen, len(values), ErrShapeMismatch)
	}
	return Tuple{X: values[0], Y: values[1], Z: values[2], W: values[3]}, nil
}

// Len returns the number of components
func (t Tuple) Len() int {
	return TupleLen
}

// At returns the i-th component in x, y, z, w order
func (t Tuple) At(i int) float64 {
	switch i {
	case 0:
		return t.X
	case 1:
		return t.Y
	case 2:
		return t.Z
	case 3:
		return t.W
	}
	panic(fmt.Sprintf("tuple index %d out of range", i))
}

// IsPoint reports whether the tuple is an affine point
func (t Tuple) IsPoint() bool {
	return Equal(t.W, 1)
}

// IsVector reports whether the tuple is a free vector
func (t Tuple) IsVector() bool {
	return Equal(t.W, 0)
}

// Add returns the component-wise sum
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Dot returns the 4-component dot product
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Magnitude returns the 4-component length
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.Dot(t))
}

// Equals compares component-wise within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return Equal(t.X, other.X) && Equal(t.Y, other.Y) && Equal(t.Z, other.Z) && Equal(t.W, other.W)
}

// Vector drops W and returns the xyz triple as a Vector
func (t Tuple) Vector() Vector {
	return Vector{X: t.X, Y: t.Y, Z: t.Z}
}

// Point drops W and returns the xyz triple as a Point
func (t Tuple) Point() Point {
	return Point{X: t.X, Y: t.Y, Z: t.Z}
}

func (t Tuple) String() string {
	return fmt.Sprintf("Tuple (%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
