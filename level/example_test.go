package level_test

import (
	"fmt"

	"github.com/cwbudde/algo-spatial/level"
)

func ExampleToDB() {
	fmt.Printf("%.1f %.1f %.1f\n", level.ToDB(1), level.ToDB(0.5), level.ToDB(0))

	// Output:
	// 0.0 -6.0 -Inf
}

func ExampleRMS() {
	fmt.Printf("%.1f\n", level.RMS([]float64{1, -1, 1, -1}))

	// Output:
	// 1.0
}
