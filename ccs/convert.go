// SPDX-License-Identifier: MIT

// Package ccs: dense <-> compressed-column conversion adapters.
// Ingestion is strict about numeric policy (finite values only) and exact
// about structure: scanning column-major keeps every column's row run
// strictly increasing by construction, so no sort is ever needed.

package ccs

import "math"

// NewFromDense builds a compressed-column matrix from row-major dense cells.
// Entries with |v| <= drop tolerance are not stored (DefaultDropTolerance
// keeps everything except exact zeros).
// Implementation:
//   - Stage 1: validate rectangularity and finite values (fail before any
//     allocation decision is visible to the caller).
//   - Stage 2: count survivors per the tolerance to size storage exactly.
//   - Stage 3: fill column-major; row order inside each column is the scan
//     order, already strictly increasing.
//
// Behavior highlights:
//   - Deterministic: fixed j->i scan; no hashing, no reordering.
//   - The result never aliases cells.
//
// Inputs:
//   - cells: rectangular [][]float64; len(cells) rows, len(cells[0]) cols.
//     Zero rows (or zero columns) produce a legal empty matrix.
//   - opts: WithDropTolerance, WithCapacity (capacity acts as a floor).
//
// Returns:
//   - *Matrix: freshly allocated matrix.
//   - error: ErrBadShape on ragged input, ErrNaNInf on non-finite values.
//
// Complexity:
//   - Time O(rows*cols), Space O(nnz).
//
// AI-Hints:
//   - For tests and fixtures this is the canonical builder: the dense
//     literal documents the matrix far better than raw CC slices.
func NewFromDense(cells [][]float64, opts ...Option) (*Matrix, error) {
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}

	// Reject ragged and non-finite input up front.
	var i, j int
	for i = 0; i < rows; i++ {
		if len(cells[i]) != cols {
			return nil, ccsErrorf(opNewFromDense, ErrBadShape)
		}
		for j = 0; j < cols; j++ {
			if isNonFinite(cells[i][j]) {
				return nil, ccsErrorf(opNewFromDense, ErrNaNInf)
			}
		}
	}

	o := gatherOptions(opts...)

	// Count survivors so the fill pass never grows storage.
	nnz := 0
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			if math.Abs(cells[i][j]) > o.dropTol {
				nnz++
			}
		}
	}

	capacity := nnz
	if o.capacity > capacity {
		capacity = o.capacity
	}
	m := &Matrix{
		rows:   rows,
		cols:   cols,
		colPtr: make([]int, cols+1),
		rowIdx: make([]int, capacity),
		values: make([]float64, capacity),
	}

	// Column-major fill; ascending i keeps rows sorted per column.
	idx := 0
	var v float64
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			v = cells[i][j]
			if math.Abs(v) <= o.dropTol {
				continue
			}
			m.rowIdx[idx] = i
			m.values[idx] = v
			idx++
		}
		m.colPtr[j+1] = idx
	}
	m.nnz = idx

	return m, nil
}

// ToDense expands m into a freshly allocated row-major [][]float64.
// Explicit stored zeros and absent entries both read as 0 in the result.
// Complexity: O(rows*cols + nnz).
func (m *Matrix) ToDense() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
	}
	for j := 0; j < m.cols; j++ {
		for i := m.colPtr[j]; i < m.colPtr[j+1]; i++ {
			out[m.rowIdx[i]][j] = m.values[i]
		}
	}

	return out
}
