package sphere

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spatial/internal/numeric"
)

// ErrDimensionMismatch indicates vectors that do not share a dimension.
var ErrDimensionMismatch = errors.New("sphere: vectors must have equal dimension")

// AngleBetween returns the angle between v1 and v2 in radians.
//
// The normalized dot product is clamped into [-1, 1] before the arccosine;
// without the clamp, rounding can push it just outside the valid domain and
// produce NaN for near-parallel vectors.
func AngleBetween(v1, v2 []float64) (float64, error) {
	if len(v1) != len(v2) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v1), len(v2))
	}

	dot := vecmath.DotProduct(v1, v2)
	norm := math.Sqrt(vecmath.DotProduct(v1, v1)) * math.Sqrt(vecmath.DotProduct(v2, v2))

	return math.Acos(numeric.Clamp(dot/norm, -1, 1)), nil
}

// AngleBetweenVertex returns the angle subtended at vertex by v1 and v2.
// Both points are re-expressed relative to the vertex before the angle is
// computed.
func AngleBetweenVertex(v1, v2, vertex []float64) (float64, error) {
	if len(v1) != len(vertex) || len(v2) != len(vertex) {
		return 0, fmt.Errorf("%w: %d, %d vs vertex %d",
			ErrDimensionMismatch, len(v1), len(v2), len(vertex))
	}

	a := make([]float64, len(v1))
	b := make([]float64, len(v2))
	for i := range vertex {
		a[i] = v1[i] - vertex[i]
		b[i] = v2[i] - vertex[i]
	}
	return AngleBetween(a, b)
}

// AngleBetweenBatch returns one angle per row of v2, each measured against
// v1. A non-nil vertex shifts v1 and every row of v2 first, as in
// AngleBetweenVertex.
func AngleBetweenBatch(v1 []float64, v2 mat.Matrix, vertex []float64) ([]float64, error) {
	rows, cols := v2.Dims()
	if cols != len(v1) {
		return nil, fmt.Errorf("%w: rows of length %d vs %d", ErrDimensionMismatch, cols, len(v1))
	}
	if vertex != nil && len(vertex) != len(v1) {
		return nil, fmt.Errorf("%w: vertex length %d vs %d", ErrDimensionMismatch, len(vertex), len(v1))
	}

	a := v1
	if vertex != nil {
		a = make([]float64, len(v1))
		for i := range vertex {
			a[i] = v1[i] - vertex[i]
		}
	}

	angles := make([]float64, rows)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			row[j] = v2.At(i, j)
			if vertex != nil {
				row[j] -= vertex[j]
			}
		}
		angle, err := AngleBetween(a, row)
		if err != nil {
			return nil, err
		}
		angles[i] = angle
	}
	return angles, nil
}
