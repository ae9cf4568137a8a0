package array

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestInterleaveChannels(t *testing.T) {
	left := mat.NewDense(2, 3, []float64{
		1, 1, 1,
		2, 2, 2,
	})
	right := mat.NewDense(2, 3, []float64{
		10, 10, 10,
		20, 20, 20,
	})

	out, err := InterleaveChannels(left, right, StyleNone)
	require.NoError(t, err)

	want := mat.NewDense(4, 3, []float64{
		1, 1, 1,
		10, 10, 10,
		2, 2, 2,
		20, 20, 20,
	})
	if diff := cmp.Diff(want.RawMatrix().Data, out.RawMatrix().Data); diff != "" {
		t.Errorf("interleaved data mismatch (-want +got):\n%s", diff)
	}

	rows, cols := out.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 3, cols)
}

func TestInterleaveChannelsShapeMismatch(t *testing.T) {
	left := mat.NewDense(2, 3, make([]float64, 6))
	right := mat.NewDense(3, 2, make([]float64, 6))

	_, err := InterleaveChannels(left, right, StyleNone)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestInterleaveChannelsSSR(t *testing.T) {
	left := mat.NewDense(360, 2, make([]float64, 720))
	right := mat.NewDense(360, 2, make([]float64, 720))

	out, err := InterleaveChannels(left, right, StyleSSR)
	require.NoError(t, err)

	rows, _ := out.Dims()
	require.Equal(t, 720, rows)
}

func TestInterleaveChannelsSSRWrongChannelCount(t *testing.T) {
	left := mat.NewDense(2, 3, make([]float64, 6))
	right := mat.NewDense(2, 3, make([]float64, 6))

	_, err := InterleaveChannels(left, right, StyleSSR)
	require.ErrorIs(t, err, ErrSSRChannelCount)
}
