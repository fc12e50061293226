// SPDX-License-Identifier: MIT
// Package: ccs
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap once more with the operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Validate is the one O(nnz) audit; everything else is O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil -> Shape).
//  - The hot *Into kernels do NOT call these (documented preconditions);
//    only the allocating facades and constructors validate.

package ccs

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Inputs: *Matrix value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m *Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	// Otherwise accept.
	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are non-nil (caller must ensure).
// Returns: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub facades and compatibility guards.
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) -> NotNil(b) -> SameShape.
//
// Errors: combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMultShape is the composite NotNil(a) -> NotNil(b) -> inner-dimension
// agreement (a.Cols() == b.Rows()).
//
// Errors: combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMultShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMultShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMultShape", err)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMultShape: Inner", ErrDimensionMismatch)
	}

	return nil
}

// Validate audits the full compressed-column contract of m: dimension signs,
// column-pointer head/tail and monotonicity, parallel-slice lengths, row
// bounds and the strictly-increasing row order inside every column.
//
// It is the authoritative check behind NewFromRaw and the recommended audit
// after writing through Raw.
//
// Returns:
//   - nil when every invariant holds.
//   - ErrNilMatrix, ErrBadShape or ErrBadStructure (wrapped with the failing
//     check's tag) otherwise.
//
// Complexity:
//   - Time O(cols + nnz), Space O(1).
func (m *Matrix) Validate() error {
	if m == nil {
		return validatorErrorf("Validate", ErrNilMatrix)
	}
	if m.rows < 0 || m.cols < 0 {
		return validatorErrorf("Validate: Dimensions", ErrBadShape)
	}
	if len(m.colPtr) < m.cols+1 {
		return validatorErrorf("Validate: ColPtrLength", ErrBadStructure)
	}
	if len(m.rowIdx) != len(m.values) {
		return validatorErrorf("Validate: ParallelSlices", ErrBadStructure)
	}
	if m.nnz < 0 || m.nnz > len(m.rowIdx) {
		return validatorErrorf("Validate: EntryCount", ErrBadStructure)
	}
	if m.colPtr[0] != 0 {
		return validatorErrorf("Validate: ColPtrHead", ErrBadStructure)
	}
	if m.colPtr[m.cols] != m.nnz {
		return validatorErrorf("Validate: ColPtrTail", ErrBadStructure)
	}

	// Per-column audit: monotone pointers, row bounds, strict row order.
	var lo, hi, prev, row int
	for j := 0; j < m.cols; j++ {
		lo, hi = m.colPtr[j], m.colPtr[j+1]
		if lo > hi || hi > m.nnz {
			return validatorErrorf("Validate: ColPtrOrder", ErrBadStructure)
		}
		prev = -1 // rows inside a column must strictly increase
		for i := lo; i < hi; i++ {
			row = m.rowIdx[i]
			if row < 0 || row >= m.rows {
				return validatorErrorf("Validate: RowBounds", ErrBadStructure)
			}
			if row <= prev {
				return validatorErrorf("Validate: RowOrder", ErrBadStructure)
			}
			prev = row
		}
	}

	return nil
}
