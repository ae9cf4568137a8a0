// Package sphere computes angular metrics between directions: the angle
// between two vectors, great-circle (haversine) distance between points on
// a sphere, and the planar area of a triangle given its corner points.
package sphere
