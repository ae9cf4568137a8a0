package numeric

import "fmt"

// BroadcastLen returns the common length of the given operands, where each
// operand must have either that length or length 1 (in which case its single
// value applies to every element). Empty operands only broadcast against
// other empty operands, so empty inputs propagate to an empty result instead
// of silently succeeding.
func BroadcastLen(operands ...[]float64) (int, error) {
	n := 1
	for _, op := range operands {
		switch {
		case len(op) == 1 || len(op) == n:
		case n == 1:
			n = len(op)
		default:
			return 0, fmt.Errorf("operand lengths %d and %d do not broadcast", n, len(op))
		}
	}
	return n, nil
}

// At reads index i from a broadcast operand: a length-1 operand always
// yields its single element.
func At(op []float64, i int) float64 {
	if len(op) == 1 {
		return op[0]
	}
	return op[i]
}
