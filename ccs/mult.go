// SPDX-License-Identifier: MIT

// Package ccs: sparse-sparse matrix multiplication (Gustavson's algorithm).

package ccs

import "sort"

// MultInto computes c = a*b with Gustavson's column-at-a-time scheme. For
// each column of b the kernel accumulates a sparse linear combination of a's
// columns into a dense float accumulator x, using an int marker array w to
// detect first touches: w[row] == col+1 means row already appears in the
// output column, so the product is added; otherwise the row is appended to
// c's structure and x[row] is assigned (not added), which removes any need
// to pre-zero x between columns.
//
// Gathered rows arrive in traversal order, not sorted order, so each
// finished column is sorted by row index before its values are flushed
// from x.
//
// Implementation:
//   - Stage 1: acquire (or validate) float and int workspaces of length
//     a.Rows() via FloatWorkspace and IntWorkspace; the marker array starts
//     zeroed. Short workspaces are rejected before c is touched.
//   - Stage 2: reset c (logical count zero, colPtr[0] = 0).
//   - Stage 3: per column col of b - for each entry b[k,col], walk column k
//     of a and scatter a[row,k]*b[k,col] into x, appending row to c on
//     first touch.
//   - Stage 4: sort the freshly gathered row range, flush values from x,
//     write the column boundary.
//
// Inputs:
//   - a, b : operands with a.Cols() == b.Rows() (documented precondition,
//     checked by the Mult facade). Both structurally valid.
//   - c    : destination with shape a.Rows() x b.Cols(). Previous contents
//     discarded; storage grows on demand. Must not alias a or b.
//   - x    : optional float scratch of length >= a.Rows(). nil allocates.
//   - w    : optional int scratch of length >= a.Rows(). nil allocates.
//     Non-nil w is zeroed by the kernel before use.
//
// Returns:
//   - nil on success.
//   - ErrWorkspaceTooSmall (wrapped) when a provided scratch is shorter
//     than a.Rows(); c is left unmodified in that case.
//
// Determinism:
//   - Traversal, sorting, and flush orders are fixed; identical inputs give
//     bit-for-bit identical results.
//
// Complexity:
//   - Time O(flops + Σ per-column sort), where flops is the number of
//     scalar products; Space O(rows) scratch.
func MultInto(a, b, c *Matrix, x []float64, w []int) error {
	// Stage 1: both scratch buffers validated up front.
	x, err := FloatWorkspace(a.rows, x)
	if err != nil {
		return ccsErrorf(opMultInto, err)
	}
	w, err = IntWorkspace(a.rows, w, true)
	if err != nil {
		return ccsErrorf(opMultInto, err)
	}

	// Stage 2: rebuild c from scratch.
	c.nnz = 0
	c.colPtr[0] = 0

	var i int
	for col := 0; col < b.cols; col++ {
		colStart := c.nnz
		mark := col + 1

		// Stage 3: scatter-accumulate column col = Σ_k b[k,col] * a[:,k].
		for jb := b.colPtr[col]; jb < b.colPtr[col+1]; jb++ {
			k := b.rowIdx[jb]
			bv := b.values[jb]
			for ja := a.colPtr[k]; ja < a.colPtr[k+1]; ja++ {
				row := a.rowIdx[ja]
				if w[row] != mark {
					// First touch this column: claim the row and assign.
					w[row] = mark
					c.Reserve(c.nnz + 1)
					c.rowIdx[c.nnz] = row
					c.nnz++
					x[row] = a.values[ja] * bv
				} else {
					x[row] += a.values[ja] * bv
				}
			}
		}

		// Stage 4: restore sorted row order, then flush values.
		sort.Ints(c.rowIdx[colStart:c.nnz])
		for i = colStart; i < c.nnz; i++ {
			c.values[i] = x[c.rowIdx[i]]
		}
		c.colPtr[col+1] = c.nnz
	}

	return nil
}
