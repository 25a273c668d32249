package geometry

import (
	"slices"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// Intersection records where along a ray a shape was struck
type Intersection struct {
	T      float64 // Parameter t along the ray; negative is behind the origin
	Object Shape   // Shape that was hit
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is the result of one or more intersect calls.
// Hits are kept in insertion order and never deduplicated.
type Intersections []Intersection

// NewIntersections collects intersections in the order given
func NewIntersections(xs ...Intersection) Intersections {
	return Intersections(xs)
}

// Sorted returns a copy ordered by ascending t
func (xs Intersections) Sorted() Intersections {
	sorted := slices.Clone(xs)
	slices.SortStableFunc(sorted, func(a, b Intersection) int {
		switch {
		case a.T < b.T:
			return -1
		case a.T > b.T:
			return 1
		}
		return 0
	})
	return sorted
}

// Hit returns the intersection with the smallest non-negative t
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}

// IntersectAll intersects the ray with every shape and returns all hits sorted by t
func IntersectAll(ray core.Ray, shapes ...Shape) (Intersections, error) {
	var all Intersections
	for _, shape := range shapes {
		xs, err := shape.Intersect(ray)
		if err != nil {
			return nil, err
		}
		all = append(all, xs...)
	}
	return all.Sorted(), nil
}
