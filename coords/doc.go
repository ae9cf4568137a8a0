// Package coords converts between Cartesian and spherical coordinates and
// between degree and radian angle representations.
//
// The primary spherical convention is azimuth/colatitude: azimuth is the
// horizontal angle around the vertical axis, colatitude the polar angle
// measured down from the positive pole. A second, elevation-based convention
// (angle up from the horizontal plane) is provided as separately named
// operations; the two differ by elevation = pi/2 - colatitude and must not
// be substituted for each other.
//
// # Usage
//
// Convert a direction and back:
//
//	azi, colat, r := coords.CartToSph(1, 1, 0, false)
//	x, y, z := coords.SphToCart(azi, colat, r)
//
// Batch conversion of loudspeaker positions:
//
//	dirs, err := coords.VecsToDirs(positions, true)
package coords
