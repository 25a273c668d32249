package core

import (
	"fmt"
	"math"
)

// Affine transform builders. All return 4x4 matrices acting on column
// tuples, so the translation lives in the last column.

func mat4(values ...float64) Matrix {
	m := newZeroMatrix(TupleLen)
	copy(m.values, values)
	return m
}

// Translation moves points by (x, y, z); vectors are unaffected
func Translation(x, y, z float64) Matrix {
	return mat4(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix {
	return mat4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// RotationX rotates by radians around the X axis (right-handed)
func RotationX(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return mat4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY rotates by radians around the Y axis (right-handed)
func RotationY(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return mat4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ rotates by radians around the Z axis (right-handed)
func RotationZ(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return mat4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Shearing moves each component in proportion to the other two.
// xy is the amount x moves in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return mat4(
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	)
}

// Chain composes transforms so the first argument is applied first,
// i.e. Chain(a, b, c) == c * b * a. An empty chain is the 4x4 identity.
func Chain(transforms ...Matrix) (Matrix, error) {
	result := Identity(TupleLen)
	for i, t := range transforms {
		var err error
		result, err = t.Multiply(result)
		if err != nil {
			return Matrix{}, fmt.Errorf("chain transform %d: %w", i, err)
		}
	}
	return result, nil
}
