package geometry

import (
	"math"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// Sphere is a unit sphere centered at the object-space origin.
// Position and size in world space come from its transform.
type Sphere struct {
	transformable
}

// NewSphere creates a sphere with the identity transform
func NewSphere() *Sphere {
	return &Sphere{}
}

// NewTransformedSphere creates a sphere with the given transform
func NewTransformedSphere(transform core.Matrix) (*Sphere, error) {
	s := NewSphere()
	if err := s.SetTransform(transform); err != nil {
		return nil, err
	}
	return s, nil
}

// Intersect tests a world-space ray against the sphere
func (s *Sphere) Intersect(ray core.Ray) (Intersections, error) {
	return intersectWorld(s, s.pair(), ray)
}

// NormalAt returns the world-space normal at a world-space point on the sphere
func (s *Sphere) NormalAt(point core.Point) (core.Vector, error) {
	return normalWorld(s, s.pair(), point)
}

func (s *Sphere) localIntersect(ray core.Ray) Intersections {
	sphereToRay := ray.Origin.Subtract(core.Origin())

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Intersections{}
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// Tangent ray
	if core.Equal(t1, t2) {
		return NewIntersections(NewIntersection(t1, s))
	}
	return NewIntersections(NewIntersection(t1, s), NewIntersection(t2, s))
}

func (s *Sphere) localNormalAt(point core.Point) (core.Vector, error) {
	return point.Subtract(core.Origin()).Normalize()
}
