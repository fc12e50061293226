// SPDX-License-Identifier: MIT
// Package ccs: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the ccs
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors (option constructors, violated
// kernel preconditions surfacing as bounds checks).

package ccs

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ccs: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with ccsErrorf(op, ErrX) at the
// call site - callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil matrix -> shape/structure -> dimension mismatch -> workspace sizing
// -> index range.

var (
	// ErrNilMatrix indicates that a nil *Matrix was passed where a value is
	// required. Facades and constructors MUST return this, never dereference.
	ErrNilMatrix = errors.New("ccs: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimension, ragged dense input, negative capacity). Zero dimensions are
	// legal for sparse storage and do NOT trigger this.
	ErrBadShape = errors.New("ccs: invalid shape")

	// ErrBadStructure signals that adopted or mutated storage violates the
	// compressed-column invariants (colPtr head/tail, monotonicity, sorted
	// rows, parallel-slice lengths). Validate reports it with a located tag.
	ErrBadStructure = errors.New("ccs: malformed compressed-column structure")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add over different shapes or Mult where a.Cols()
	// differs from b.Rows().
	ErrDimensionMismatch = errors.New("ccs: dimension mismatch")

	// ErrWorkspaceTooSmall is returned when a caller-supplied work buffer is
	// shorter than the required row count. It is raised BEFORE any output
	// mutation; retry with a longer buffer or nil is always safe.
	ErrWorkspaceTooSmall = errors.New("ccs: workspace shorter than row count")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("ccs: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (dense ingestion).
	ErrNaNInf = errors.New("ccs: NaN or Inf encountered")
)
