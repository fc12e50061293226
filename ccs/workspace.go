// SPDX-License-Identifier: MIT

// Package ccs: work-buffer acquisition for the row-indexed scratch arrays
// the kernels lean on. Both helpers follow one contract: a nil buffer is
// allocated fresh (zero-valued), a short buffer is rejected BEFORE anything
// else happens, and a long-enough buffer is reused so repeated kernel calls
// stay allocation-free.

package ccs

// IntWorkspace returns an integer scratch buffer of length >= n, usable as
// per-row counters or write cursors.
// Implementation:
//   - Stage 1: nil w - allocate exactly n entries, zero-valued.
//   - Stage 2: len(w) < n - reject with ErrWorkspaceTooSmall; nothing is
//     written anywhere.
//   - Stage 3: long enough - when zero is set, reset exactly the first n
//     entries (excess stays untouched); otherwise return w unchanged.
//
// Behavior highlights:
//   - The returned slice ALIASES w whenever w was accepted; reuse across
//     calls is the whole point.
//   - Rejection happens before any mutation, so a failed kernel call leaves
//     every output bit-for-bit intact.
//
// Inputs:
//   - n: required length (a matrix's row count), >= 0.
//   - w: optional existing buffer, nil to allocate.
//   - zero: reset the first n entries of an accepted buffer.
//
// Returns:
//   - []int: buffer of length >= n.
//   - error: ErrWorkspaceTooSmall (wrapped) when w is non-nil and short.
//
// Complexity:
//   - Time O(n) on allocation or zeroing, O(1) otherwise. Space O(n) only
//     when allocating.
//
// AI-Hints:
//   - Allocate once per pipeline sized to the largest row count involved;
//     every kernel accepts a longer buffer.
func IntWorkspace(n int, w []int, zero bool) ([]int, error) {
	if w == nil {
		return make([]int, n), nil
	}
	if len(w) < n {
		return nil, ccsErrorf(opIntWorkspace, ErrWorkspaceTooSmall)
	}
	if zero {
		for i := 0; i < n; i++ {
			w[i] = 0
		}
	}

	return w, nil
}

// FloatWorkspace returns a floating-point scratch buffer of length >= n,
// usable as a dense per-row accumulator.
//
// Unlike IntWorkspace there is no zero-fill flag: the merge kernels reset
// every accumulator slot explicitly before its first use, so an accepted
// buffer is always returned as-is (stale contents are harmless). A nil
// buffer is allocated fresh and therefore zero-valued.
//
// Returns:
//   - []float64: buffer of length >= n.
//   - error: ErrWorkspaceTooSmall (wrapped) when x is non-nil and short.
//
// Complexity:
//   - Time O(n) on allocation, O(1) otherwise.
func FloatWorkspace(n int, x []float64) ([]float64, error) {
	if x == nil {
		return make([]float64, n), nil
	}
	if len(x) < n {
		return nil, ccsErrorf(opFloatWorkspace, ErrWorkspaceTooSmall)
	}

	return x, nil
}
