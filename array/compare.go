package array

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// compareConfig holds the comparator settings.
type compareConfig struct {
	label     string
	tolerance float64
	writer    io.Writer
	verbose   bool
}

// CompareOption mutates a compareConfig.
type CompareOption func(*compareConfig)

// WithLabel prefixes the comparator's diagnostic line with a label.
func WithLabel(label string) CompareOption {
	return func(cfg *compareConfig) {
		cfg.label = label
	}
}

// WithTolerance sets the pass/fail threshold for the diagnostic line.
// The default is 1e-6.
func WithTolerance(tolerance float64) CompareOption {
	return func(cfg *compareConfig) {
		cfg.tolerance = tolerance
	}
}

// WithWriter redirects the diagnostic line. The default is os.Stdout.
func WithWriter(w io.Writer) CompareOption {
	return func(cfg *compareConfig) {
		if w != nil {
			cfg.writer = w
		}
	}
}

// Quiet suppresses the diagnostic line; the difference is still returned.
func Quiet() CompareOption {
	return func(cfg *compareConfig) {
		cfg.verbose = false
	}
}

// Compare returns the cumulative element-wise absolute difference between a
// and b, padding the shorter input with zeros, and writes a pass/fail line
// against the tolerance unless Quiet is set. Advisory only: the returned
// difference is the same whether or not it exceeds the tolerance, and no
// error is produced.
func Compare(a, b []float64, opts ...CompareOption) float64 {
	cfg := compareConfig{
		tolerance: 1e-6,
		writer:    os.Stdout,
		verbose:   true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	diff := make([]float64, n)
	for i := 0; i < n; i++ {
		var av, bv float64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		diff[i] = math.Abs(av - bv)
	}
	d := vecmath.Sum(diff)

	if cfg.verbose {
		if cfg.label != "" {
			fmt.Fprintf(cfg.writer, "%s -- ", cfg.label)
		}
		if d > cfg.tolerance {
			fmt.Fprintf(cfg.writer, "Diff: %g\n", d)
		} else {
			fmt.Fprintln(cfg.writer, "Close enough.")
		}
	}
	return d
}

// CompareMatrix flattens both matrices in row-major order and delegates to
// Compare.
func CompareMatrix(a, b mat.Matrix, opts ...CompareOption) float64 {
	return Compare(flatten(a), flatten(b), opts...)
}

func flatten(m mat.Matrix) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
