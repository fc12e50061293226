// SPDX-License-Identifier: MIT

// Package ccs: the scaled-addition kernel c = α·a + β·b.

package ccs

// AddInto computes c = alpha*a + beta*b for matrices of identical shape.
// Each column is built in two phases over a dense accumulator x: a sorted
// two-pointer merge of a's and b's row indices emits the union structure into
// c (zeroing x only at emitted rows, so x never needs a full clear), then the
// actual scaled values of a and b are accumulated into x and flushed back
// into c's value array for that column.
//
// An entry whose scaled sum is exactly zero is still stored: the output
// structure is the union of the input structures regardless of value
// cancellation. Callers that want cancellations removed run
// c.DropZeros(0) afterwards.
//
// Implementation:
//   - Stage 1: acquire (or validate) a float workspace of length a.Rows()
//     via FloatWorkspace. Short workspaces are rejected before c is touched.
//   - Stage 2: reset c - logical count to zero, colPtr[0] = 0. Storage grows
//     on demand with doubling as entries are emitted.
//   - Stage 3: per column - merge row indices of a and b in sorted order,
//     emitting each union row once and setting x[row] = 0 at emission.
//   - Stage 4: per column - accumulate alpha*a then beta*b into x, write the
//     column boundary colPtr[col+1], and flush x back into c.values over the
//     freshly built range.
//
// Inputs:
//   - alpha, beta : scale factors. Both may be zero; structure is unioned
//     either way.
//   - a, b : operands. Must be non-nil, structurally valid, and of equal
//     shape (documented precondition, checked by the Add facade).
//   - c    : destination of the same shape. Previous contents discarded.
//     Must not alias a or b.
//   - x    : optional float scratch of length >= a.Rows(). nil allocates.
//     Contents on entry are irrelevant; the kernel zeroes lazily.
//
// Returns:
//   - nil on success.
//   - ErrWorkspaceTooSmall (wrapped) when x is non-nil and shorter than
//     a.Rows(); c is left unmodified in that case.
//
// Determinism:
//   - Merge order and accumulation order are fixed, so results are
//     bit-for-bit reproducible across runs.
//
// Complexity:
//   - Time O(cols + nnz(a) + nnz(b)), Space O(rows) scratch.
//
// Notes:
//   - Every column boundary is written, including boundaries of trailing
//     empty columns, so a reused c never retains stale pointers past the
//     last populated column.
func AddInto(alpha float64, a *Matrix, beta float64, b *Matrix, c *Matrix, x []float64) error {
	// Stage 1: workspace first - the short-buffer error must precede any
	// mutation of c.
	x, err := FloatWorkspace(a.rows, x)
	if err != nil {
		return ccsErrorf(opAddInto, err)
	}

	// Stage 2: rebuild c from scratch. The explicit colPtr[0] write keeps a
	// zero-column matrix well formed without entering the loop.
	c.nnz = 0
	c.colPtr[0] = 0

	var i int
	for col := 0; col < a.cols; col++ {
		idxA0, idxA1 := a.colPtr[col], a.colPtr[col+1]
		idxB0, idxB1 := b.colPtr[col], b.colPtr[col+1]
		colStart := c.nnz

		// Stage 3: structure merge. Row indices of both operands are sorted,
		// so a two-pointer walk yields the sorted union. x is zeroed exactly
		// at the rows this column will hold.
		ia, ib := idxA0, idxB0
		for ia < idxA1 || ib < idxB1 {
			rowA, rowB := a.rows, a.rows
			if ia < idxA1 {
				rowA = a.rowIdx[ia]
			}
			if ib < idxB1 {
				rowB = b.rowIdx[ib]
			}
			row := rowA
			switch {
			case rowA < rowB:
				ia++
			case rowA > rowB:
				row = rowB
				ib++
			default:
				ia++
				ib++
			}
			c.Reserve(c.nnz + 1)
			c.rowIdx[c.nnz] = row
			c.nnz++
			x[row] = 0
		}

		// Stage 4: value accumulation and flush.
		for i = idxA0; i < idxA1; i++ {
			x[a.rowIdx[i]] += alpha * a.values[i]
		}
		for i = idxB0; i < idxB1; i++ {
			x[b.rowIdx[i]] += beta * b.values[i]
		}
		c.colPtr[col+1] = c.nnz
		for i = colStart; i < c.nnz; i++ {
			c.values[i] = x[c.rowIdx[i]]
		}
	}

	return nil
}
