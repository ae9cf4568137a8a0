package coords

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spatial/internal/numeric"
)

// steadyRadiusFloor is the smallest radius used for the colatitude divide
// when steady-colatitude mode is on. Directions closer to the origin than
// this lose exactness but never produce NaN.
const steadyRadiusFloor = 1e-14

// ErrLengthMismatch indicates batch inputs whose lengths neither match nor
// broadcast (length 1 against length n).
var ErrLengthMismatch = errors.New("coords: input lengths do not match")

// CartToSph converts a Cartesian point to spherical coordinates.
//
// The azimuth is atan2(y, x) in (-pi, pi], the colatitude acos(z/r) in
// [0, pi]. At the origin the colatitude is NaN unless steadyColatitude is
// set, which floor-clamps the radius before the divide.
func CartToSph(x, y, z float64, steadyColatitude bool) (azi, colat, r float64) {
	r = math.Sqrt(x*x + y*y + z*z)
	azi = math.Atan2(y, x)

	div := r
	if steadyColatitude && div < steadyRadiusFloor {
		div = steadyRadiusFloor
	}
	colat = math.Acos(z / div)

	return azi, colat, r
}

// CartToSphVec is the batch form of CartToSph. Each input must have the
// common length or length 1 (broadcast). The outputs all have the common
// length.
func CartToSphVec(x, y, z []float64, steadyColatitude bool) (azi, colat, r []float64, err error) {
	n, err := numeric.BroadcastLen(x, y, z)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrLengthMismatch, err)
	}

	azi = numeric.EnsureLen(nil, n)
	colat = numeric.EnsureLen(nil, n)
	r = numeric.EnsureLen(nil, n)

	if len(x) == n && len(y) == n && len(z) == n {
		// Uniform lengths: radius via two hypotenuse passes.
		xy := numeric.EnsureLen(nil, n)
		vecmath.Magnitude(xy, x, y)
		vecmath.Magnitude(r, xy, z)
		for i := 0; i < n; i++ {
			azi[i] = math.Atan2(y[i], x[i])
			div := r[i]
			if steadyColatitude && div < steadyRadiusFloor {
				div = steadyRadiusFloor
			}
			colat[i] = math.Acos(z[i] / div)
		}
		return azi, colat, r, nil
	}

	for i := 0; i < n; i++ {
		azi[i], colat[i], r[i] = CartToSph(numeric.At(x, i), numeric.At(y, i), numeric.At(z, i), steadyColatitude)
	}
	return azi, colat, r, nil
}

// SphToCart converts spherical coordinates (azimuth/colatitude convention)
// to a Cartesian point.
func SphToCart(azi, colat, r float64) (x, y, z float64) {
	sinColat := math.Sin(colat)
	x = r * math.Cos(azi) * sinColat
	y = r * math.Sin(azi) * sinColat
	z = r * math.Cos(colat)
	return x, y, z
}

// SphToCartVec is the batch form of SphToCart. A nil r selects the unit
// sphere; otherwise inputs broadcast as in CartToSphVec.
func SphToCartVec(azi, colat, r []float64) (x, y, z []float64, err error) {
	if r == nil {
		r = []float64{1}
	}
	n, err := numeric.BroadcastLen(azi, colat, r)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrLengthMismatch, err)
	}

	x = numeric.EnsureLen(nil, n)
	y = numeric.EnsureLen(nil, n)
	z = numeric.EnsureLen(nil, n)
	for i := 0; i < n; i++ {
		x[i], y[i], z[i] = SphToCart(numeric.At(azi, i), numeric.At(colat, i), numeric.At(r, i))
	}
	return x, y, z, nil
}

// SphToCartElev converts spherical coordinates in the elevation convention,
// where the second angle is measured up from the horizontal plane instead of
// down from the pole. This is a distinct mapping (elevation = pi/2 -
// colatitude); callers must not substitute it for SphToCart.
func SphToCartElev(azi, elev, r float64) (x, y, z float64) {
	z = r * math.Sin(elev)
	rCosElev := r * math.Cos(elev)
	x = rCosElev * math.Cos(azi)
	y = rCosElev * math.Sin(azi)
	return x, y, z
}

// SphToCartElevVec is the batch form of SphToCartElev.
func SphToCartElevVec(azi, elev, r []float64) (x, y, z []float64, err error) {
	if r == nil {
		r = []float64{1}
	}
	n, err := numeric.BroadcastLen(azi, elev, r)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrLengthMismatch, err)
	}

	x = numeric.EnsureLen(nil, n)
	y = numeric.EnsureLen(nil, n)
	z = numeric.EnsureLen(nil, n)
	for i := 0; i < n; i++ {
		x[i], y[i], z[i] = SphToCartElev(numeric.At(azi, i), numeric.At(elev, i), numeric.At(r, i))
	}
	return x, y, z, nil
}
