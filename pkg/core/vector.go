package core

import (
	"fmt"
	"math"
)

// Vector represents a free 3D displacement (w = 0)
type Vector struct {
	X, Y, Z float64
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the negative of the vector
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vector) Divide(scalar float64) Vector {
	return Vector{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Magnitude returns the length of the vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the vector
func (v Vector) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// A zero-length vector yields ErrDegenerateVector.
func (v Vector) Normalize() (Vector, error) {
	length := v.Magnitude()
	if length == 0 {
		return Vector{}, fmt.Errorf("normalize %v: %w", v, ErrDegenerateVector)
	}
	return v.Divide(length), nil
}

// Equals compares component-wise within Epsilon
func (v Vector) Equals(other Vector) bool {
	return Equal(v.X, other.X) && Equal(v.Y, other.Y) && Equal(v.Z, other.Z)
}

// Tuple returns the homogeneous form with w = 0
func (v Vector) Tuple() Tuple {
	return Tuple{X: v.X, Y: v.Y, Z: v.Z, W: 0}
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector (%g, %g, %g)", v.X, v.Y, v.Z)
}
