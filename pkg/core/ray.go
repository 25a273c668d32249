package core

import "fmt"

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new ray
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform applies m to the origin as a point and to the direction as a vector
func (r Ray) Transform(m Matrix) (Ray, error) {
	origin, err := m.MultiplyPoint(r.Origin)
	if err != nil {
		return Ray{}, fmt.Errorf("transform ray origin: %w", err)
	}
	direction, err := m.MultiplyVector(r.Direction)
	if err != nil {
		return Ray{}, fmt.Errorf("transform ray direction: %w", err)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}
