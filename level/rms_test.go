package level

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRMS(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{"constant", []float64{2, 2, 2, 2}, 2},
		{"alternating square", []float64{1, -1, 1, -1}, 1},
		{"single sample", []float64{-3}, 3},
		{"zeros", []float64{0, 0, 0}, 0},
		{"empty propagates NaN", nil, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RMS(tt.x)
			if !almostEqual(got, tt.want, tolerance) {
				t.Errorf("RMS(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestRMSSine(t *testing.T) {
	// A full-cycle sine of amplitude a has RMS a/sqrt(2).
	const n = 1000
	x := make([]float64, n)
	for i := range x {
		x[i] = 0.5 * math.Sin(2*math.Pi*float64(i)/n)
	}
	want := 0.5 / math.Sqrt2
	if got := RMS(x); !almostEqual(got, want, 1e-9) {
		t.Errorf("RMS(sine) = %v, want %v", got, want)
	}
}

func TestRMSComplex(t *testing.T) {
	tests := []struct {
		name string
		x    []complex128
		want float64
	}{
		{"real only", []complex128{2, 2}, 2},
		{"imaginary only", []complex128{2i, -2i}, 2},
		{"mixed", []complex128{3 + 4i}, 5},
		{"empty propagates NaN", nil, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RMSComplex(tt.x)
			if !almostEqual(got, tt.want, tolerance) {
				t.Errorf("RMSComplex(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestRMSComplexMatchesReal(t *testing.T) {
	x := []float64{0.1, -0.4, 0.9, -1.3, 0.2}
	c := make([]complex128, len(x))
	for i, v := range x {
		c[i] = complex(v, 0)
	}
	if r, cr := RMS(x), RMSComplex(c); !almostEqual(r, cr, tolerance) {
		t.Errorf("RMS = %v, RMSComplex = %v", r, cr)
	}
}

func TestRMSAxis(t *testing.T) {
	// Two channels: a constant 2 and an alternating unit square.
	m := mat.NewDense(2, 4, []float64{
		2, 2, 2, 2,
		1, -1, 1, -1,
	})

	perChannel, err := RMSAxis(m, AxisRows)
	if err != nil {
		t.Fatalf("RMSAxis rows: %v", err)
	}
	if len(perChannel) != 2 || !almostEqual(perChannel[0], 2, tolerance) || !almostEqual(perChannel[1], 1, tolerance) {
		t.Errorf("per-channel RMS = %v, want [2 1]", perChannel)
	}

	perSample, err := RMSAxis(m, AxisColumns)
	if err != nil {
		t.Fatalf("RMSAxis columns: %v", err)
	}
	want := math.Sqrt((4.0 + 1.0) / 2.0)
	if len(perSample) != 4 {
		t.Fatalf("per-sample length = %d, want 4", len(perSample))
	}
	for i, got := range perSample {
		if !almostEqual(got, want, tolerance) {
			t.Errorf("per-sample RMS[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestRMSAxisInvalid(t *testing.T) {
	m := mat.NewDense(1, 1, []float64{1})
	if _, err := RMSAxis(m, Axis(7)); !errors.Is(err, ErrInvalidAxis) {
		t.Fatalf("err = %v, want ErrInvalidAxis", err)
	}
}
