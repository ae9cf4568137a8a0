package sphere

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spatial/internal/numeric"
)

// Haversine returns the great-circle distance between two points on a
// sphere of radius r, each given as (azimuth, colatitude). For r = 1 the
// distance is the central angle.
//
// Reference: https://en.wikipedia.org/wiki/Haversine_formula
func Haversine(azi1, colat1, azi2, colat2, r float64) float64 {
	lat1 := math.Pi/2 - colat1
	lat2 := math.Pi/2 - colat2

	dlon := azi2 - azi1
	dlat := lat2 - lat1

	sinDlat := math.Sin(dlat / 2)
	sinDlon := math.Sin(dlon / 2)
	alpha := sinDlat*sinDlat + math.Cos(lat1)*math.Cos(lat2)*sinDlon*sinDlon

	return 2 * r * math.Asin(math.Sqrt(alpha))
}

// HaversineVec is the batch form of Haversine. Each angle input must have
// the common length or length 1 (broadcast).
func HaversineVec(azi1, colat1, azi2, colat2 []float64, r float64) ([]float64, error) {
	n, err := numeric.BroadcastLen(azi1, colat1, azi2, colat2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}

	out := numeric.EnsureLen(nil, n)
	for i := 0; i < n; i++ {
		out[i] = Haversine(numeric.At(azi1, i), numeric.At(colat1, i),
			numeric.At(azi2, i), numeric.At(colat2, i), r)
	}
	return out, nil
}
