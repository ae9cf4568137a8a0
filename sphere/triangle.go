package sphere

import (
	"fmt"
	"math"
)

// TriangleArea returns the planar area of the triangle spanned by the three
// Cartesian points p1, p2, p3. Collinear points yield area 0; that is a
// valid degenerate triangle, not an error.
func TriangleArea(p1, p2, p3 []float64) (float64, error) {
	if len(p1) != 3 || len(p2) != 3 || len(p3) != 3 {
		return 0, fmt.Errorf("%w: corner points must be 3-vectors", ErrDimensionMismatch)
	}

	ux, uy, uz := p2[0]-p1[0], p2[1]-p1[1], p2[2]-p1[2]
	vx, vy, vz := p3[0]-p1[0], p3[1]-p1[1], p3[2]-p1[2]

	cx := uy*vz - uz*vy
	cy := uz*vx - ux*vz
	cz := ux*vy - uy*vx

	return 0.5 * math.Sqrt(cx*cx+cy*cy+cz*cz), nil
}
