// SPDX-License-Identifier: MIT

// Package ccs: construction and storage management for compressed-column
// matrices. This file owns the lifecycle surface: constructors, cloning,
// reshaping, the centralized growth primitive (Reserve) and the explicit
// compaction pass (DropZeros). Algebraic kernels live in their own files.

package ccs

import (
	"math"
	"sort"
)

// New returns an empty rows×cols matrix with every column empty.
// Implementation:
//   - Stage 1: validate rows/cols are non-negative (zero is legal, the
//     matrix is then empty in that dimension).
//   - Stage 2: resolve options and allocate colPtr (cols+1, zeroed) plus
//     the entry storage at the requested capacity.
//
// Inputs:
//   - rows, cols: dimensions, >= 0.
//   - opts: WithCapacity to preallocate entry storage.
//
// Returns:
//   - *Matrix: valid empty matrix (Validate holds by construction).
//   - error: ErrBadShape when a dimension is negative.
//
// Complexity:
//   - Time O(cols + capacity), Space O(cols + capacity).
//
// AI-Hints:
//   - Pass WithCapacity(expected nnz) when the fill size is known; the
//     append paths then never reallocate.
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ccsErrorf(opNew, ErrBadShape)
	}
	o := gatherOptions(opts...)

	return &Matrix{
		rows:   rows,
		cols:   cols,
		colPtr: make([]int, cols+1),
		rowIdx: make([]int, o.capacity),
		values: make([]float64, o.capacity),
	}, nil
}

// NewFromRaw adopts caller-owned compressed-column storage WITHOUT copying.
// The entry count is taken from colPtr[cols]; rowIdx/values beyond it are
// treated as spare capacity.
// Implementation:
//   - Stage 1: validate dimension signs and minimal slice lengths.
//   - Stage 2: wrap the slices and audit the full contract via Validate.
//
// Behavior highlights:
//   - Zero-copy adoption: the matrix ALIASES the input slices afterwards.
//   - Rejection is total: on error the inputs are untouched and unreferenced.
//
// Inputs:
//   - rows, cols: dimensions, >= 0.
//   - colPtr: len >= cols+1, colPtr[0] == 0, monotone, colPtr[cols] == nnz.
//   - rowIdx, values: equal lengths >= colPtr[cols]; rows strictly
//     increasing inside each column.
//
// Returns:
//   - *Matrix: the adopting matrix.
//   - error: ErrBadShape or ErrBadStructure (wrapped) on violations.
//
// Complexity:
//   - Time O(cols + nnz) for the audit, Space O(1).
func NewFromRaw(rows, cols int, colPtr, rowIdx []int, values []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ccsErrorf(opNewFromRaw, ErrBadShape)
	}
	if len(colPtr) < cols+1 {
		return nil, ccsErrorf(opNewFromRaw, ErrBadStructure)
	}
	if len(rowIdx) != len(values) {
		return nil, ccsErrorf(opNewFromRaw, ErrBadStructure)
	}

	m := &Matrix{
		rows:   rows,
		cols:   cols,
		colPtr: colPtr,
		rowIdx: rowIdx,
		values: values,
		nnz:    colPtr[cols],
	}
	if err := m.Validate(); err != nil {
		return nil, ccsErrorf(opNewFromRaw, err)
	}

	return m, nil
}

// Identity returns the n×n identity matrix (ones on the diagonal).
// Determinism: fixed i-loop; exactly one entry per column.
// Complexity: O(n) allocation and writes.
//
// AI-Hints: Use as the neutral element in Mult-based pipelines and tests.
func Identity(n int) (*Matrix, error) {
	if n < 0 {
		return nil, ccsErrorf(opIdentity, ErrBadShape)
	}

	m := &Matrix{
		rows:   n,
		cols:   n,
		colPtr: make([]int, n+1),
		rowIdx: make([]int, n),
		values: make([]float64, n),
		nnz:    n,
	}
	for i := 0; i < n; i++ { // fixed order guarantees reproducibility
		m.colPtr[i+1] = i + 1
		m.rowIdx[i] = i
		m.values[i] = 1.0
	}

	return m, nil
}

// Clone returns a deep copy of m, capacity included. The copy shares no
// storage with the original.
// Complexity: O(cols + capacity).
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		rows:   m.rows,
		cols:   m.cols,
		colPtr: make([]int, len(m.colPtr)),
		rowIdx: make([]int, len(m.rowIdx)),
		values: make([]float64, len(m.values)),
		nnz:    m.nnz,
	}
	copy(c.colPtr, m.colPtr)
	copy(c.rowIdx, m.rowIdx)
	copy(c.values, m.values)

	return c
}

// At returns the value stored at (r, c), or 0 when the position holds no
// entry. An explicit stored zero and an absent entry are indistinguishable
// here; inspect Raw for the structural view.
// Implementation:
//   - Stage 1: bounds-check r and c against the dimensions.
//   - Stage 2: binary-search the sorted row run of column c.
//
// Returns:
//   - float64: stored value or 0.
//   - error: ErrOutOfRange (wrapped) when (r, c) is outside the matrix.
//
// Complexity:
//   - Time O(log k) for k entries in the column, Space O(1).
func (m *Matrix) At(r, c int) (float64, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, ccsErrorf(opAt, ErrOutOfRange)
	}

	lo, hi := m.colPtr[c], m.colPtr[c+1]
	i := lo + sort.SearchInts(m.rowIdx[lo:hi], r)
	if i < hi && m.rowIdx[i] == r {
		return m.values[i], nil
	}

	return 0, nil
}

// Reserve grows the entry storage to hold at least n entries, preserving the
// populated prefix. Growth follows the doubling policy: the new capacity is
// max(n, 2*Capacity()), so repeated single-entry appends amortize to O(1).
// Reserve is the ONLY growth path in the package; it never shrinks.
//
// Complexity: O(nnz) copy when growth happens, O(1) otherwise.
func (m *Matrix) Reserve(n int) {
	if n <= len(m.rowIdx) {
		return
	}
	newCap := 2 * len(m.rowIdx)
	if newCap < n {
		newCap = n
	}

	rowIdx := make([]int, newCap)
	copy(rowIdx, m.rowIdx[:m.nnz])
	values := make([]float64, newCap)
	copy(values, m.values[:m.nnz])
	m.rowIdx, m.values = rowIdx, values
}

// Reshape redefines the dimensions of m, discards its entries (NonZeros
// becomes 0) and ensures storage for capacity entries. Backing arrays are
// reused when large enough; they are never shrunk.
// Implementation:
//   - Stage 1: validate the three sizes are non-negative.
//   - Stage 2: reset colPtr to a zeroed cols+1 slice (reusing capacity).
//   - Stage 3: reset nnz and delegate storage sizing to Reserve.
//
// Returns:
//   - error: ErrBadShape (wrapped) on a negative argument.
//
// Complexity:
//   - Time O(cols + growth), Space O(growth).
func (m *Matrix) Reshape(rows, cols, capacity int) error {
	if rows < 0 || cols < 0 || capacity < 0 {
		return ccsErrorf(opReshape, ErrBadShape)
	}

	m.rows, m.cols = rows, cols
	if cap(m.colPtr) < cols+1 {
		m.colPtr = make([]int, cols+1)
	} else {
		m.colPtr = m.colPtr[:cols+1]
		for j := range m.colPtr {
			m.colPtr[j] = 0
		}
	}
	m.nnz = 0
	m.Reserve(capacity)

	return nil
}

// DropZeros compacts m in place, removing every entry with |value| <= tol
// and returning how many were removed. Kernels never compact on their own:
// cancellation inside Add keeps explicit zero entries until this is called.
//
// Policy: a NaN or negative tol is treated as 0 (exact-zero compaction).
// NaN values are never dropped (their magnitude is not comparable).
//
// Complexity: O(cols + nnz), Space O(1), single left-to-right pass.
func (m *Matrix) DropZeros(tol float64) int {
	if math.IsNaN(tol) || tol < 0 {
		tol = 0
	}

	out := 0           // next write position of the compacted prefix
	lo := m.colPtr[0]  // original start of the current column
	var hi, i, j int   // loop bounds and iterators
	for j = 0; j < m.cols; j++ {
		hi = m.colPtr[j+1]
		m.colPtr[j] = out
		for i = lo; i < hi; i++ {
			if math.Abs(m.values[i]) <= tol {
				continue // dropped
			}
			m.rowIdx[out] = m.rowIdx[i]
			m.values[out] = m.values[i]
			out++
		}
		lo = hi
	}

	removed := m.nnz - out
	m.colPtr[m.cols] = out
	m.nnz = out

	return removed
}
