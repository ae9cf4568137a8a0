package array

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Style names a channel-layout convention checked by InterleaveChannels.
type Style int

const (
	// StyleNone applies no layout constraint.
	StyleNone Style = iota
	// StyleSSR is the fixed 360-channel surround layout; inputs must carry
	// exactly 360 channels.
	StyleSSR
)

// ssrChannels is the channel count the SSR layout mandates.
const ssrChannels = 360

// InterleaveChannels merges two channels-by-samples matrices into one with
// twice the channel count: even output rows (0, 2, 4, ...) are the rows of
// left in order, odd rows the corresponding rows of right. Both inputs
// must have identical shape.
func InterleaveChannels(left, right mat.Matrix, style Style) (*mat.Dense, error) {
	lr, lc := left.Dims()
	rr, rc := right.Dims()
	if lr != rr || lc != rc {
		return nil, fmt.Errorf("%w: left %dx%d, right %dx%d", ErrShapeMismatch, lr, lc, rr, rc)
	}

	switch style {
	case StyleNone:
	case StyleSSR:
		if lr != ssrChannels {
			return nil, fmt.Errorf("%w: got %d", ErrSSRChannelCount, lr)
		}
	default:
		return nil, fmt.Errorf("array: unknown interleave style: %d", style)
	}

	out := mat.NewDense(2*lr, lc, nil)
	for i := 0; i < lr; i++ {
		for j := 0; j < lc; j++ {
			out.Set(2*i, j, left.At(i, j))
			out.Set(2*i+1, j, right.At(i, j))
		}
	}
	return out, nil
}
