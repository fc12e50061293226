// SPDX-License-Identifier: MIT

// Package ccs: the histogram -> column-pointer prefix-sum routine shared by
// the counting-sort style kernels.

package ccs

// BuildColumnPointers converts per-column entry counts into c's column
// pointers via a running prefix sum, then overwrites the histogram in place
// with a copy of colPtr[0:cols] - turning "count per column" into
// "next-write cursor per column", ready for a scatter pass.
//
// The dual use of one array (counts, then cursors) is deliberate: it keeps
// the two-pass kernels at a single O(rows) scratch allocation.
// Implementation:
//   - Stage 1: colPtr[0] = 0; colPtr[i] = colPtr[i-1] + histogram[i-1] for
//     i = 1..cols (running sum, single pass).
//   - Stage 2: copy colPtr[0:cols] back over histogram[0:cols].
//
// Preconditions (documented, not checked - this sits on the hot path):
//   - c is non-nil with len(c.colPtr) >= c.Cols()+1.
//   - len(histogram) >= c.Cols().
//
// Determinism:
//   - Single fixed-order pass; no allocation.
//
// Complexity:
//   - Time O(cols), Space O(1).
//
// AI-Hints:
//   - After this call the histogram IS the cursor array: scattering entry k
//     of column j writes at cursor histogram[j] and post-increments it.
func BuildColumnPointers(c *Matrix, histogram []int) {
	c.colPtr[0] = 0
	index := 0
	for i := 1; i <= c.cols; i++ {
		index += histogram[i-1]
		c.colPtr[i] = index
	}
	copy(histogram[:c.cols], c.colPtr[:c.cols])
}
