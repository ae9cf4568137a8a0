package coords

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrNotThreeColumns indicates a direction matrix whose rows are not
// Cartesian 3-vectors.
var ErrNotThreeColumns = errors.New("coords: direction matrix must have 3 columns")

// VecsToDirs converts an Nx3 matrix of Cartesian points into an Nx2 matrix
// of (azimuth, colatitude) pairs. When positiveAzimuth is set, azimuth is
// wrapped from (-pi, pi] into [0, 2*pi).
func VecsToDirs(vecs mat.Matrix, positiveAzimuth bool) (*mat.Dense, error) {
	rows, cols := vecs.Dims()
	if cols != 3 {
		return nil, fmt.Errorf("%w: got %d", ErrNotThreeColumns, cols)
	}

	dirs := mat.NewDense(rows, 2, nil)
	for i := 0; i < rows; i++ {
		azi, colat, _ := CartToSph(vecs.At(i, 0), vecs.At(i, 1), vecs.At(i, 2), false)
		if positiveAzimuth {
			azi = math.Mod(azi+2*math.Pi, 2*math.Pi)
		}
		dirs.Set(i, 0, azi)
		dirs.Set(i, 1, colat)
	}
	return dirs, nil
}
