package coords

import "math"

// Deg2Rad converts an angle in degree to radiant, reducing the input into
// [0, 360) first so the result lies in [0, 2*pi). Negative inputs wrap
// (-10 maps to the same angle as 350).
func Deg2Rad(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360) / 180 * math.Pi
}

// Rad2Deg converts an angle in radiant to degree, reducing the result into
// [0, 360).
func Rad2Deg(rad float64) float64 {
	return math.Mod(math.Mod(rad/math.Pi*180, 360)+360, 360)
}

// Deg2RadBlock converts deg elementwise into dst. The slices must have equal
// length and may alias.
func Deg2RadBlock(dst, deg []float64) {
	if len(dst) != len(deg) {
		panic("coords: dst and deg length mismatch")
	}
	for i, d := range deg {
		dst[i] = Deg2Rad(d)
	}
}

// Rad2DegBlock converts rad elementwise into dst. The slices must have equal
// length and may alias.
func Rad2DegBlock(dst, rad []float64) {
	if len(dst) != len(rad) {
		panic("coords: dst and rad length mismatch")
	}
	for i, r := range rad {
		dst[i] = Rad2Deg(r)
	}
}
