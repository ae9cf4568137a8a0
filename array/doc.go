// Package array normalizes and composes the vector and channel-matrix
// shapes used by the spatial packages: squeezing array-like input down to
// one dimension, stacking two vectors along their shared dimension,
// interleaving left/right channel matrices, and a diagnostic comparator
// for element-wise differences.
//
// Matrices are gonum mat.Matrix values laid out channels-by-samples: each
// row is one channel, each column one time sample.
package array
