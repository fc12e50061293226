// SPDX-License-Identifier: MIT
// Package ccs_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities for the
//     compressed-column kernels.
//   • Keep all data finite and integer-valued so exact (==) comparisons stay
//     legitimate: sums and products of small integers are exact in float64,
//     which makes "sparse result equals dense reference" a bitwise check.

package ccs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmat/ccs"
)

// Deterministic seed shared by randomized property tests.
const testSeed = 42

// MustFromDense BUILDS a compressed-column matrix from a dense literal or
// fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call ccs.NewFromDense(cells, opts...).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Behavior highlights:
//   - The dense literal documents the fixture better than raw CC slices.
//
// Inputs:
//   - cells: rectangular row-major values; opts: construction options.
//
// Returns:
//   - *ccs.Matrix with exact-zero cells absent from the structure.
//
// Errors:
//   - Fatal test failure on ragged or non-finite input.
//
// Complexity:
//   - Time O(rows*cols), Space O(nnz).
func MustFromDense(t *testing.T, cells [][]float64, opts ...ccs.Option) *ccs.Matrix {
	t.Helper()
	m, err := ccs.NewFromDense(cells, opts...)
	if err != nil {
		t.Fatalf("NewFromDense: %v", err)
	}

	return m
}

// MustNew ALLOCATES an empty rows×cols matrix or fails the test.
//
// AI-Hints:
//   - Pair with ccs.WithCapacity(0) to exercise the growth paths from a
//     zero-capacity start.
func MustNew(t *testing.T, rows, cols int, opts ...ccs.Option) *ccs.Matrix {
	t.Helper()
	m, err := ccs.New(rows, cols, opts...)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t *testing.T, n int) *ccs.Matrix {
	t.Helper()
	m, err := ccs.Identity(n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// CompareDense ASSERTS that m expands exactly to the dense reference.
// Implementation:
//   - Stage 1: m.ToDense() and shape check.
//   - Stage 2: cell-by-cell exact (==) comparison, fatal on first mismatch.
//
// Notes:
//   - Exactness is intentional: fixtures are integer-valued and kernels are
//     deterministic, so any difference is a real defect, not float noise.
func CompareDense(t *testing.T, tag string, m *ccs.Matrix, want [][]float64) {
	t.Helper()
	got := m.ToDense()
	if len(got) != len(want) {
		t.Fatalf("%s: rows: got %d, want %d", tag, len(got), len(want))
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("%s: row %d length: got %d, want %d", tag, i, len(got[i]), len(want[i]))
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("%s: cell (%d,%d): got %v, want %v", tag, i, j, got[i][j], want[i][j])
			}
		}
	}
}

// CompareRaw ASSERTS the exact compressed-column layout of m: column
// pointers, row indices and values, in storage order. Use it when the test
// cares about STRUCTURE (explicit zeros, entry order), which CompareDense
// cannot see.
func CompareRaw(t *testing.T, tag string, m *ccs.Matrix, wantColPtr, wantRowIdx []int, wantValues []float64) {
	t.Helper()
	colPtr, rowIdx, values := m.Raw()
	if len(colPtr) != len(wantColPtr) {
		t.Fatalf("%s: colPtr length: got %d, want %d", tag, len(colPtr), len(wantColPtr))
	}
	for i := range wantColPtr {
		if colPtr[i] != wantColPtr[i] {
			t.Fatalf("%s: colPtr[%d]: got %d, want %d", tag, i, colPtr[i], wantColPtr[i])
		}
	}
	if len(rowIdx) != len(wantRowIdx) || len(values) != len(wantValues) {
		t.Fatalf("%s: entry count: got (%d,%d), want (%d,%d)",
			tag, len(rowIdx), len(values), len(wantRowIdx), len(wantValues))
	}
	for i := range wantRowIdx {
		if rowIdx[i] != wantRowIdx[i] {
			t.Fatalf("%s: rowIdx[%d]: got %d, want %d", tag, i, rowIdx[i], wantRowIdx[i])
		}
		if values[i] != wantValues[i] {
			t.Fatalf("%s: values[%d]: got %v, want %v", tag, i, values[i], wantValues[i])
		}
	}
}

// AssertErrorIs FAILS the test unless errors.Is(err, want) holds.
func AssertErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("expected errors.Is(%v, %v)", err, want)
	}
}

// ExpectPanic RUNS fn and fails the test unless it panics with exactly the
// given message. Used for option-constructor contracts.
func ExpectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		if msg, ok := r.(string); !ok || msg != want {
			t.Fatalf("panic message: got %v, want %q", r, want)
		}
	}()
	fn()
}

// ---------- Dense reference harnesses (independent of the package) ----------

// denseTranspose returns the dense transpose of cells.
func denseTranspose(cells [][]float64) [][]float64 {
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}
	out := make([][]float64, cols)
	for j := range out {
		out[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = cells[i][j]
		}
	}

	return out
}

// denseAddScaled returns alpha*a + beta*b computed cell-wise. With
// integer-valued fixtures the result is exact, so sparse output may be
// compared with ==.
func denseAddScaled(alpha float64, a [][]float64, beta float64, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			out[i][j] = alpha*a[i][j] + beta*b[i][j]
		}
	}

	return out
}

// denseMult returns a*b with the j→k→i accumulation order, which mirrors the
// per-cell product order of the sparse kernel. Integer fixtures make the
// match exact regardless.
func denseMult(a, b [][]float64) [][]float64 {
	rows := len(a)
	inner := 0
	if rows > 0 {
		inner = len(a[0])
	}
	cols := 0
	if inner > 0 {
		cols = len(b[0])
	}
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	for j := 0; j < cols; j++ {
		for k := 0; k < inner; k++ {
			for i := 0; i < rows; i++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// randomSparseDense fills a rows×cols dense sheet at the given density with
// nonzero integers in [-9,-1] ∪ [1,9]. Integer values keep all downstream
// arithmetic exact in float64.
func randomSparseDense(rng *rand.Rand, rows, cols int, density float64) [][]float64 {
	cells := make([][]float64, rows)
	for i := range cells {
		cells[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if rng.Float64() >= density {
				continue
			}
			v := float64(rng.Intn(9) + 1)
			if rng.Intn(2) == 0 {
				v = -v
			}
			cells[i][j] = v
		}
	}

	return cells
}
