package geometry

import (
	"fmt"
	"sync/atomic"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// Shape is a renderable surface positioned in world space by a 4x4 transform
type Shape interface {
	// Intersect returns every intersection of a world-space ray with the shape
	Intersect(ray core.Ray) (Intersections, error)
	// NormalAt returns the unit world-space surface normal at a world-space point
	NormalAt(point core.Point) (core.Vector, error)
	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix) error
}

// localShape is implemented by each variant in object space
type localShape interface {
	localIntersect(ray core.Ray) Intersections
	localNormalAt(point core.Point) (core.Vector, error)
}

// transformPair is published as a unit so a transform is never seen with a stale inverse
type transformPair struct {
	forward core.Matrix
	inverse core.Matrix
}

var identityPair = &transformPair{forward: core.Identity(core.TupleLen), inverse: core.Identity(core.TupleLen)}

// transformable holds the object-to-world transform and its cached inverse
type transformable struct {
	current atomic.Pointer[transformPair]
}

func (t *transformable) pair() *transformPair {
	if p := t.current.Load(); p != nil {
		return p
	}
	return identityPair
}

// Transform returns the object-to-world transform
func (t *transformable) Transform() core.Matrix {
	return t.pair().forward
}

// InverseTransform returns the cached world-to-object transform
func (t *transformable) InverseTransform() core.Matrix {
	return t.pair().inverse
}

// Transforms returns the transform and its inverse as one consistent pair
func (t *transformable) Transforms() (forward, inverse core.Matrix) {
	p := t.pair()
	return p.forward, p.inverse
}

// SetTransform replaces the transform and recomputes its inverse.
// On error the previous transform stays in place.
func (t *transformable) SetTransform(m core.Matrix) error {
	if m.Size() != core.TupleLen {
		return fmt.Errorf("shape transform must be 4x4, got %dx%d: %w", m.Size(), m.Size(), core.ErrShapeMismatch)
	}
	inverse, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("shape transform: %w", err)
	}
	t.current.Store(&transformPair{forward: m, inverse: inverse})
	return nil
}

// intersectWorld moves the ray into object space and delegates to the variant
func intersectWorld(s localShape, p *transformPair, ray core.Ray) (Intersections, error) {
	local, err := ray.Transform(p.inverse)
	if err != nil {
		return nil, err
	}
	if local.Direction.MagnitudeSquared() == 0 {
		return nil, fmt.Errorf("intersect ray with zero direction: %w", core.ErrDegenerateVector)
	}
	return s.localIntersect(local), nil
}

// normalWorld maps the point into object space and the normal back with the
// transpose of the inverse, then renormalizes.
func normalWorld(s localShape, p *transformPair, point core.Point) (core.Vector, error) {
	localPoint, err := p.inverse.MultiplyPoint(point)
	if err != nil {
		return core.Vector{}, err
	}
	localNormal, err := s.localNormalAt(localPoint)
	if err != nil {
		return core.Vector{}, err
	}
	// w picks up the inverse's translation and is dropped by MultiplyVector
	worldNormal, err := p.inverse.Transpose().MultiplyVector(localNormal)
	if err != nil {
		return core.Vector{}, err
	}
	return worldNormal.Normalize()
}
