// SPDX-License-Identifier: MIT

// Package ccs: domain types for compressed-column sparse storage.
// This file intentionally contains ONLY the storage type and its cheap
// accessors. Errors and options live in dedicated files (errors.go,
// options.go) per the global conventions; kernels live in their own files.
package ccs

// Matrix is a sparse matrix in compressed-column (CC) form.
//
// Storage layout:
//   - colPtr has length cols+1; colPtr[j] is the inclusive start and
//     colPtr[j+1] the exclusive end of column j's run inside rowIdx/values.
//   - rowIdx holds the row index of every stored entry; values is parallel.
//   - nnz is the number of populated entries; len(rowIdx) == len(values) is
//     the backing capacity and may exceed nnz.
//
// Invariants (audited by Validate, relied upon by every kernel):
//   - rows >= 0, cols >= 0 (zero-dimension matrices are legal).
//   - colPtr[0] == 0, colPtr is monotonically non-decreasing,
//     colPtr[cols] == nnz.
//   - within each column's run, row indices are strictly increasing
//     (sorted, no duplicate rows).
//
// The zero value is NOT usable; construct through New, NewFromDense,
// NewFromRaw or Identity. Kernels never change rows/cols of an output,
// only colPtr, rowIdx, values and nnz.
type Matrix struct {
	rows, cols int

	colPtr []int
	rowIdx []int
	values []float64

	nnz int
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NonZeros returns the number of stored entries. Explicit zero values
// produced by cancellation still count until DropZeros removes them.
// Complexity: O(1).
func (m *Matrix) NonZeros() int { return m.nnz }

// Capacity returns the entry capacity of the backing storage. Reserve
// grows it; no operation ever shrinks it.
// Complexity: O(1).
func (m *Matrix) Capacity() int { return len(m.rowIdx) }

// Raw returns live views over the internal storage: the column-pointer
// slice (length cols+1) and the row-index/value slices trimmed to the
// populated prefix (length NonZeros).
//
// The returned slices ALIAS the matrix. Reading is always safe; writing
// through them is allowed for interop but the caller owns the invariants
// afterwards (Validate can audit the result).
// Complexity: O(1).
func (m *Matrix) Raw() (colPtr, rowIdx []int, values []float64) {
	return m.colPtr[:m.cols+1], m.rowIdx[:m.nnz], m.values[:m.nnz]
}
