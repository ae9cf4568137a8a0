package level

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spatial/internal/numeric"
)

// Axis selects the reduction direction for matrix-valued RMS.
type Axis int

const (
	// AxisColumns reduces down each column, one value per column.
	AxisColumns Axis = iota
	// AxisRows reduces along each row, one value per row. This matches the
	// per-channel view of a channels-by-samples matrix.
	AxisRows
)

// ErrInvalidAxis indicates an axis other than AxisColumns or AxisRows.
var ErrInvalidAxis = errors.New("level: invalid reduction axis")

// RMS returns the root-mean-square of x. An empty input yields NaN, the
// mean of nothing, rather than an error.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	sq := numeric.EnsureLen(nil, len(x))
	vecmath.MulBlock(sq, x, x)

	return math.Sqrt(vecmath.Sum(sq) / float64(len(x)))
}

// RMSComplex returns the root-mean-square of a complex-valued signal, using
// x * conj(x) so the mean is taken over real energies. An empty input
// yields NaN.
func RMSComplex(x []complex128) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	var sum float64
	for _, v := range x {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}

	return math.Sqrt(sum / float64(len(x)))
}

// RMSAxis reduces m along the given axis only: AxisRows yields one RMS per
// row, AxisColumns one per column. The other axis is preserved in the
// output ordering.
func RMSAxis(m mat.Matrix, axis Axis) ([]float64, error) {
	rows, cols := m.Dims()

	switch axis {
	case AxisRows:
		out := make([]float64, rows)
		row := numeric.EnsureLen(nil, cols)
		for i := 0; i < rows; i++ {
			mat.Row(row, i, m)
			out[i] = RMS(row)
		}
		return out, nil
	case AxisColumns:
		out := make([]float64, cols)
		col := numeric.EnsureLen(nil, rows)
		for j := 0; j < cols; j++ {
			mat.Col(col, j, m)
			out[j] = RMS(col)
		}
		return out, nil
	default:
		return nil, ErrInvalidAxis
	}
}
