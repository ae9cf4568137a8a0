package coords

import (
	"math"
	"testing"
)

func BenchmarkCartToSphVec(b *testing.B) {
	n := 1024
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(float64(i))
		y[i] = math.Sin(float64(i))
		z[i] = float64(i%7) - 3
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = CartToSphVec(x, y, z, false)
	}
}

func BenchmarkSphToCartVec(b *testing.B) {
	n := 1024
	azi := make([]float64, n)
	colat := make([]float64, n)
	for i := range azi {
		azi[i] = Deg2Rad(float64(i))
		colat[i] = Deg2Rad(float64(i) / 4)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = SphToCartVec(azi, colat, nil)
	}
}
