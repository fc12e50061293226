// SPDX-License-Identifier: MIT

// Package ccs: elementwise scaling kernel c = α·a.

package ccs

// ScaleInto computes c = alpha*a. The structure of a is copied verbatim
// (same column pointers, same row indices) and every stored value is
// multiplied by alpha. Scaling by zero keeps the structure and stores
// explicit zeros; run c.DropZeros(0) to compact afterwards.
//
// c must be non-nil with shape equal to a's and grows as needed. Aliasing is
// allowed: ScaleInto(alpha, a, a) scales in place without copying.
//
// Complexity: time O(cols + nnz), no allocation beyond destination growth.
func ScaleInto(alpha float64, a, c *Matrix) {
	if c != a {
		c.Reserve(a.nnz)
		c.nnz = a.nnz
		copy(c.colPtr[:a.cols+1], a.colPtr[:a.cols+1])
		copy(c.rowIdx[:a.nnz], a.rowIdx[:a.nnz])
	}
	for i := 0; i < a.nnz; i++ {
		c.values[i] = alpha * a.values[i]
	}
}
