// Package testutil provides deterministic direction generators and
// tolerance assertions shared by the spatial package tests.
package testutil

import (
	"math"
	"math/rand"
)

// RandomDirections returns n points uniformly distributed on the unit
// sphere as parallel x, y, z slices, reproducible for a fixed seed.
func RandomDirections(seed int64, n int) (x, y, z []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	for i := 0; i < n; i++ {
		// Uniform on the sphere: z uniform in [-1, 1], azimuth uniform.
		zi := rng.Float64()*2 - 1
		azi := rng.Float64() * 2 * math.Pi
		s := math.Sqrt(1 - zi*zi)
		x[i] = s * math.Cos(azi)
		y[i] = s * math.Sin(azi)
		z[i] = zi
	}
	return x, y, z
}

// RingDirections returns n equally spaced azimuths around the horizontal
// plane together with their constant equatorial colatitude.
func RingDirections(n int) (azi, colat []float64) {
	azi = make([]float64, n)
	colat = make([]float64, n)
	for i := 0; i < n; i++ {
		azi[i] = 2 * math.Pi * float64(i) / float64(n)
		colat[i] = math.Pi / 2
	}
	return azi, colat
}
