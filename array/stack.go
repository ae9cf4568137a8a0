package array

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Stack joins v1 and v2 along their shared dimension. When the row counts
// match and rows are the smaller dimension of either input, the result is
// a vertical stack; when the column counts match and columns are the
// smaller dimension, a horizontal one. Anything else fails with
// ErrNoCommonDimension.
//
// The smaller-dimension rule is a deliberate tie-break that keeps row
// vectors stacking as rows and column vectors as columns; it is a
// convention of this package, not a general matrix rule. Square inputs
// with all dimensions equal satisfy neither guard and are rejected with
// ErrNoCommonDimension; the row test runs first, so non-square ties
// (equal row counts with rows the smaller dimension) resolve vertically.
func Stack(v1, v2 mat.Matrix) (*mat.Dense, error) {
	m1, n1 := v1.Dims()
	m2, n2 := v2.Dims()

	var out mat.Dense
	switch {
	case m1 == m2 && (m1 < n1 || m2 < n2):
		if n1 != n2 {
			return nil, fmt.Errorf("%w: cannot stack %dx%d on %dx%d", ErrShapeMismatch, m1, n1, m2, n2)
		}
		out.Stack(v1, v2)
	case n1 == n2 && (n1 < m1 || n2 < m2):
		if m1 != m2 {
			return nil, fmt.Errorf("%w: cannot augment %dx%d with %dx%d", ErrShapeMismatch, m1, n1, m2, n2)
		}
		out.Augment(v1, v2)
	default:
		return nil, fmt.Errorf("%w: %dx%d and %dx%d", ErrNoCommonDimension, m1, n1, m2, n2)
	}
	return &out, nil
}
