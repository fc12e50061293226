// SPDX-License-Identifier: MIT

// Package ccs: structural and numeric comparison predicates.

package ccs

import "math"

// SameStructure reports whether a and b share shape, entry count, column
// pointers, and row indices, ignoring stored values. Two nil pointers
// compare equal; nil never equals non-nil.
//
// Complexity: O(cols + nnz), short-circuits on first difference.
func SameStructure(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols || a.nnz != b.nnz {
		return false
	}
	var i int
	for i = 0; i <= a.cols; i++ {
		if a.colPtr[i] != b.colPtr[i] {
			return false
		}
	}
	for i = 0; i < a.nnz; i++ {
		if a.rowIdx[i] != b.rowIdx[i] {
			return false
		}
	}

	return true
}

// Equals reports exact equality: identical structure and bit-comparable
// values at every stored entry. IEEE semantics apply — NaN entries make
// matrices unequal, matching infinities compare equal.
//
// Complexity: O(cols + nnz).
func Equals(a, b *Matrix) bool {
	if !SameStructure(a, b) {
		return false
	}
	if a == nil {
		return true
	}
	for i := 0; i < a.nnz; i++ {
		if a.values[i] != b.values[i] {
			return false
		}
	}

	return true
}

// EqualsTol reports equality up to an absolute tolerance: structures must
// match exactly and every stored value pair must satisfy |aᵢ-bᵢ| <= tol.
// The comparison is written so that a NaN difference fails rather than
// passing vacuously.
//
// Complexity: O(cols + nnz).
//
// AI-Hints: tol = 0 degenerates to Equals except that -0 and +0 compare
// equal both ways; use Equals when bit-exactness is the point of the test.
func EqualsTol(a, b *Matrix, tol float64) bool {
	if !SameStructure(a, b) {
		return false
	}
	if a == nil {
		return true
	}
	for i := 0; i < a.nnz; i++ {
		// Negated form keeps NaN on the failing side.
		if !(math.Abs(a.values[i]-b.values[i]) <= tol) {
			return false
		}
	}

	return true
}
