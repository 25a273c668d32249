package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is an immutable square matrix stored row-major and addressed as
// (row, column) by every operation.
type Matrix struct {
	size   int
	values []float64
}

// NewMatrix creates a size x size matrix from values given row by row.
// The values are copied; exactly size*size of them are required.
func NewMatrix(size int, values ...float64) (Matrix, error) {
	if size < 1 {
		return Matrix{}, fmt.Errorf("matrix size must be positive, got %d: %w", size, ErrShapeMismatch)
	}
	if len(values) != size*size {
		return Matrix{}, fmt.Errorf("%dx%d matrix needs %d values, got %d: %w",
			size, size, size*size, len(values), ErrShapeMismatch)
	}
	m := Matrix{size: size, values: make([]float64, size*size)}
	copy(m.values, values)
	return m, nil
}

// Identity returns the size x size multiplicative identity.
// It panics if size is not positive.
func Identity(size int) Matrix {
	if size < 1 {
		panic(fmt.Sprintf("identity matrix size must be positive, got %d", size))
	}
	m := Matrix{size: size, values: make([]float64, size*size)}
	for i := 0; i < size; i++ {
		m.values[i*size+i] = 1
	}
	return m
}

func newZeroMatrix(size int) Matrix {
	return Matrix{size: size, values: make([]float64, size*size)}
}

// Size returns the number of rows (and columns)
func (m Matrix) Size() int {
	return m.size
}

// At returns the element at row, column
func (m Matrix) At(row, column int) float64 {
	m.checkIndex(row, column)
	return m.values[row*m.size+column]
}

func (m Matrix) checkIndex(row, column int) {
	if row < 0 || row >= m.size || column < 0 || column >= m.size {
		panic(fmt.Sprintf("matrix index (%d, %d) out of range for %dx%d matrix", row, column, m.size, m.size))
	}
}

// Equals compares element-wise within Epsilon. Matrices of different
// sizes are never equal.
func (m Matrix) Equals(other Matrix) bool {
	if m.size != other.size {
		return false
	}
	for i := range m.values {
		if !Equal(m.values[i], other.values[i]) {
			return false
		}
	}
	return true
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) (Matrix, error) {
	if m.size != other.size {
		return Matrix{}, fmt.Errorf("multiply %dx%d by %dx%d: %w", m.size, m.size, other.size, other.size, ErrShapeMismatch)
	}
	n := m.size
	result := newZeroMatrix(n)
	for row := 0; row < n; row++ {
		for column := 0; column < n; column++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += m.values[row*n+k] * other.values[k*n+column]
			}
			result.values[row*n+column] = sum
		}
	}
	return result, nil
}

// MultiplyTuple returns the matrix-vector product m * t
func (m Matrix) MultiplyTuple(t Tuple) (Tuple, error) {
	if m.size != t.Len() {
		return Tuple{}, fmt.Errorf("multiply %dx%d matrix by %d-tuple: %w", m.size, m.size, t.Len(), ErrShapeMismatch)
	}
	var result [TupleLen]float64
	for row := 0; row < m.size; row++ {
		var sum float64
		for k := 0; k < m.size; k++ {
			sum += m.values[row*m.size+k] * t.At(k)
		}
		result[row] = sum
	}
	return Tuple{X: result[0], Y: result[1], Z: result[2], W: result[3]}, nil
}

// MultiplyPoint transforms p as a homogeneous point (w = 1)
func (m Matrix) MultiplyPoint(p Point) (Point, error) {
	t, err := m.MultiplyTuple(p.Tuple())
	if err != nil {
		return Point{}, err
	}
	return t.Point(), nil
}

// MultiplyVector transforms v as a homogeneous vector (w = 0)
func (m Matrix) MultiplyVector(v Vector) (Vector, error) {
	t, err := m.MultiplyTuple(v.Tuple())
	if err != nil {
		return Vector{}, err
	}
	return t.Vector(), nil
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	n := m.size
	result := newZeroMatrix(n)
	for row := 0; row < n; row++ {
		for column := 0; column < n; column++ {
			result.values[column*n+row] = m.values[row*n+column]
		}
	}
	return result
}

// Determinant uses cofactor expansion along the first row.
// Only small matrices (size <= 4) are expected here.
func (m Matrix) Determinant() float64 {
	switch m.size {
	case 1:
		return m.values[0]
	case 2:
		return m.values[0]*m.values[3] - m.values[1]*m.values[2]
	}

	var det float64
	for column := 0; column < m.size; column++ {
		det += m.values[column] * m.CoFactor(0, column)
	}
	return det
}

// SubMatrix returns the (size-1)x(size-1) matrix with row and column removed
func (m Matrix) SubMatrix(row, column int) Matrix {
	m.checkIndex(row, column)
	if m.size < 2 {
		panic("submatrix of a 1x1 matrix")
	}

	n := m.size - 1
	result := newZeroMatrix(n)
	i := 0
	for r := 0; r < m.size; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.size; c++ {
			if c == column {
				continue
			}
			result.values[i] = m.values[r*m.size+c]
			i++
		}
	}
	return result
}

// Minor returns the determinant of SubMatrix(row, column).
// The minor of a 1x1 matrix is the empty determinant, 1.
func (m Matrix) Minor(row, column int) float64 {
	if m.size == 1 {
		m.checkIndex(row, column)
		return 1
	}
	return m.SubMatrix(row, column).Determinant()
}

// CoFactor returns the minor, negated when row+column is odd
func (m Matrix) CoFactor(row, column int) float64 {
	minor := m.Minor(row, column)
	if (row+column)%2 != 0 {
		return -minor
	}
	return minor
}

// CoFactors returns the matrix of every cofactor
func (m Matrix) CoFactors() Matrix {
	n := m.size
	result := newZeroMatrix(n)
	for row := 0; row < n; row++ {
		for column := 0; column < n; column++ {
			result.values[row*n+column] = m.CoFactor(row, column)
		}
	}
	return result
}

// IsInvertible reports whether the determinant is exactly non-zero
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the adjugate divided by the determinant.
// A zero determinant yields ErrSingularMatrix.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, fmt.Errorf("invert %dx%d matrix: %w", m.size, m.size, ErrSingularMatrix)
	}

	adjugate := m.CoFactors().Transpose()
	result := newZeroMatrix(m.size)
	for i, v := range adjugate.values {
		result.values[i] = v / det
	}
	return result, nil
}

// String renders one "| a | b |" line per row
func (m Matrix) String() string {
	var sb strings.Builder
	for row := 0; row < m.size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("| ")
		for column := 0; column < m.size; column++ {
			if column > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(strconv.FormatFloat(m.values[row*m.size+column], 'g', -1, 64))
		}
		sb.WriteString(" |")
	}
	return sb.String()
}
