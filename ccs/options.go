// SPDX-License-Identifier: MIT

// Package ccs: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Options affect CONSTRUCTION only (New, NewFromDense). Kernels take no
//     options; their behavior is fixed by the storage contract.
//   - Capacity is a reservation hint, not a bound: storage still grows on
//     demand through Reserve's doubling policy.

package ccs

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity is the initial entry capacity of a freshly constructed
	// matrix. Zero means "allocate lazily on first growth".
	DefaultCapacity = 0

	// DefaultDropTolerance is the magnitude at or below which dense ingestion
	// drops an entry. Zero keeps everything except exact zeros.
	DefaultDropTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityNegative = "ccs: WithCapacity: capacity must be non-negative"
	panicToleranceInvalid = "ccs: WithDropTolerance: tolerance must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	capacity int     // DefaultCapacity; initial entry capacity
	dropTol  float64 // DefaultDropTolerance; dense-ingestion drop threshold
}

// ---------- Constructors (WithX) ----------

// WithCapacity reserves initial storage for n entries at construction.
// Implementation:
//   - Stage 1: validate n >= 0; panic with a stable message otherwise.
//   - Stage 2: return a setter that writes n into Options.
//
// Behavior highlights:
//   - Removes growth reallocations when the final entry count is known.
//   - Acts as a floor, never a ceiling: kernels still grow on demand.
//
// Inputs:
//   - n: non-negative entry count to preallocate.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when n is negative.
//
// Complexity:
//   - Time O(1), Space O(1) here; the reservation itself is O(n) at New.
//
// AI-Hints:
//   - Size to the expected nonzero count (e.g. a.NonZeros()+b.NonZeros()
//     before an addition) to make append paths allocation-free.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityNegative)
	}

	// Assign validated capacity.
	return func(o *Options) { o.capacity = n }
}

// WithDropTolerance sets the magnitude threshold for dense ingestion:
// entries with |v| <= tol are not stored.
// Implementation:
//   - Stage 1: validate tol is finite and >= 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - tol = 0 still drops exact zeros (and negative zero), nothing else.
//   - Applies to NewFromDense only; kernels never compact on their own.
//
// Inputs:
//   - tol: non-negative finite threshold.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when tol is NaN, infinite or negative.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Pair with DropZeros for post-hoc compaction of computed results.
func WithDropTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.dropTol = tol }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for all construction paths.
// Implementation:
//   - Stage 1: start from the Default* constants (single source of truth).
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		capacity: DefaultCapacity,
		dropTol:  DefaultDropTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
