package core

import "fmt"

// Point represents an affine location in 3D space (w = 1)
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin returns the point (0, 0, 0)
func Origin() Point {
	return Point{}
}

// Add returns the point displaced by a vector
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the vector from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Equals compares component-wise within Epsilon
func (p Point) Equals(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y) && Equal(p.Z, other.Z)
}

// Tuple returns the homogeneous form with w = 1
func (p Point) Tuple() Tuple {
	return Tuple{X: p.X, Y: p.Y, Z: p.Z, W: 1}
}

func (p Point) String() string {
	return fmt.Sprintf("Point (%g, %g, %g)", p.X, p.Y, p.Z)
}
