// SPDX-License-Identifier: MIT
// Package ccs — public API facades.
//
// Purpose:
//   - Provide allocating, validating entry points over the *Into kernels.
//   - Avoid any logic duplication — each facade sizes a destination and
//     delegates to the canonical kernel.
//   - Define operation tags and the shared error wrapper used across the
//     package.
//
// Determinism & Policy:
//   - Facades never change the traversal orders or numeric policy of the
//     underlying kernels; results are bit-for-bit identical to calling the
//     kernel directly with a fresh destination.
//   - Shape validation happens here; kernels only check workspace lengths.
//
// AI-Hints:
//   - Hot loops should call the *Into kernels directly with reused
//     destinations and scratch buffers; facades allocate per call.
//   - Facade capacity hints (nnz sums) avoid most mid-kernel growth but are
//     not bounds — kernels still grow on demand.

package ccs

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew            = "New"
	opNewFromRaw     = "NewFromRaw"
	opNewFromDense   = "NewFromDense"
	opIdentity       = "Identity"
	opAt             = "At"
	opReshape        = "Reshape"
	opIntWorkspace   = "IntWorkspace"
	opFloatWorkspace = "FloatWorkspace"
	opTranspose      = "Transpose"
	opTransposeInto  = "TransposeInto"
	opAdd            = "Add"
	opAddInto        = "AddInto"
	opSub            = "Sub"
	opScale          = "Scale"
	opMult           = "Mult"
	opMultInto       = "MultInto"
)

// ccsErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/errors.As keep matching the package sentinels.
// Call only with err != nil; wrapping a nil cause produces a non-nil error.
//
// Determinism:
//   - Fixed "<tag>: <underlying>" formatting; no data-dependent branches.
//
// AI-Hints:
//   - Keep tag to the package-level op* constants so error strings stay
//     grep-stable across the codebase.
func ccsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- Allocating facades (validate, size, delegate; no loop duplication) ----------

// Transpose returns a newly allocated aᵀ with sorted columns.
// Validates a, allocates a Cols(a)×Rows(a) destination with capacity for
// a's entries, and delegates to TransposeInto with kernel-owned scratch.
// Complexity: O(rows + cols + nnz).
//
// AI-Hints: for repeated transposes of same-shaped inputs, hold one
// destination and one []int scratch and call TransposeInto directly.
func Transpose(a *Matrix) (*Matrix, error) {
	// Validate the operand before any allocation.
	if err := ValidateNotNil(a); err != nil {
		return nil, ccsErrorf(opTranspose, err)
	}
	// Size the destination exactly: shape swaps, entry count is preserved.
	c, err := New(a.cols, a.rows, WithCapacity(a.nnz))
	if err != nil {
		return nil, ccsErrorf(opTranspose, err)
	}
	// Delegate; nil scratch makes the kernel allocate its own histogram.
	if err = TransposeInto(a, c, nil); err != nil {
		return nil, ccsErrorf(opTranspose, err)
	}

	return c, nil
}

// Add returns a newly allocated c = alpha*a + beta*b for same-shaped
// operands. The result structure is the union of the operand structures;
// value cancellations stay stored as explicit zeros (DropZeros compacts).
// Complexity: O(cols + nnz(a) + nnz(b)).
func Add(alpha float64, a *Matrix, beta float64, b *Matrix) (*Matrix, error) {
	// Both operands non-nil and of identical shape.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, ccsErrorf(opAdd, err)
	}
	// nnz(a)+nnz(b) over-provisions the union; no growth during the kernel.
	c, err := New(a.rows, a.cols, WithCapacity(a.nnz+b.nnz))
	if err != nil {
		return nil, ccsErrorf(opAdd, err)
	}
	if err = AddInto(alpha, a, beta, b, c, nil); err != nil {
		return nil, ccsErrorf(opAdd, err)
	}

	return c, nil
}

// Sub returns a newly allocated c = a - b. Thin composition over the scaled
// addition kernel with (alpha, beta) = (1, -1); same structure policy as Add.
// Complexity: O(cols + nnz(a) + nnz(b)).
func Sub(a, b *Matrix) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, ccsErrorf(opSub, err)
	}
	c, err := New(a.rows, a.cols, WithCapacity(a.nnz+b.nnz))
	if err != nil {
		return nil, ccsErrorf(opSub, err)
	}
	if err = AddInto(1, a, -1, b, c, nil); err != nil {
		return nil, ccsErrorf(opSub, err)
	}

	return c, nil
}

// Scale returns a newly allocated c = alpha*a with a's exact structure.
// Complexity: O(cols + nnz).
//
// AI-Hints: ScaleInto(alpha, a, a) scales in place with zero allocation.
func Scale(alpha float64, a *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, ccsErrorf(opScale, err)
	}
	c, err := New(a.rows, a.cols, WithCapacity(a.nnz))
	if err != nil {
		return nil, ccsErrorf(opScale, err)
	}
	// The copy kernel cannot fail once shapes are fixed.
	ScaleInto(alpha, a, c)

	return c, nil
}

// Mult returns a newly allocated c = a*b for a.Cols() == b.Rows().
// Validates the inner dimension, allocates a Rows(a)×Cols(b) destination
// with a heuristic capacity, and delegates to MultInto with kernel-owned
// scratch. Columns of the result are sorted by row index.
// Complexity: O(flops + per-column sorting).
func Mult(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMultShape(a, b); err != nil {
		return nil, ccsErrorf(opMult, err)
	}
	// The true output count is data-dependent; nnz(a)+nnz(b) is a cheap
	// starting guess and the kernel doubles from there.
	c, err := New(a.rows, b.cols, WithCapacity(a.nnz+b.nnz))
	if err != nil {
		return nil, ccsErrorf(opMult, err)
	}
	if err = MultInto(a, b, c, nil, nil); err != nil {
		return nil, ccsErrorf(opMult, err)
	}

	return c, nil
}
