package array

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Errors reported by the shape and composition helpers.
var (
	// ErrNotOneDimensional indicates input that is genuinely
	// two-dimensional and cannot be squeezed to a vector.
	ErrNotOneDimensional = errors.New("array: array must be one-dimensional")

	// ErrNoCommonDimension indicates two matrices that share no stackable
	// dimension.
	ErrNoCommonDimension = errors.New("array: inputs do not have a common dimension")

	// ErrShapeMismatch indicates two matrices required to have identical
	// shape that do not.
	ErrShapeMismatch = errors.New("array: inputs must have the same dimensions")

	// ErrSSRChannelCount indicates an SSR-style interleave whose inputs do
	// not carry the 360 channels the layout requires.
	ErrSSRChannelCount = errors.New("array: SSR style requires 360 channels")
)

// AsVector squeezes m down to a one-dimensional sequence. A single row or
// single column flattens to its elements; a 1x1 matrix becomes a length-1
// slice. Input with more than one non-singleton dimension fails with
// ErrNotOneDimensional.
func AsVector(m mat.Matrix) ([]float64, error) {
	rows, cols := m.Dims()

	switch {
	case rows == 1:
		out := make([]float64, cols)
		for j := 0; j < cols; j++ {
			out[j] = m.At(0, j)
		}
		return out, nil
	case cols == 1:
		out := make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[i] = m.At(i, 0)
		}
		return out, nil
	default:
		return nil, ErrNotOneDimensional
	}
}

// FromScalar promotes a bare scalar to a length-1 sequence.
func FromScalar(x float64) []float64 {
	return []float64{x}
}

// Row promotes a vector to a 1xN matrix, the at-least-2D form used by the
// composition helpers.
func Row(v []float64) *mat.Dense {
	return mat.NewDense(1, len(v), append([]float64(nil), v...))
}
