// Package lvlmat is your in-memory toolkit for sparse linear algebra —
// compressed-column matrices with allocation-conscious kernels for
// transpose, scaled addition, scaling and multiplication.
//
// 🚀 What is lvlmat?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Compressed-column storage: colPtr/rowIdx/values with sorted columns
//		• Two-pass counting-sort transpose (sorted output, no sort step)
//		• Scaled addition c = αa + βb over union structure
//		• Gustavson sparse-sparse multiplication
//		• Dense bridges, structural validation, explicit-zero compaction
//
// ✨ Why choose lvlmat?
//
//   - Predictable hot paths – every kernel has a *Into form that reuses
//     destinations and scratch buffers, so steady state allocates nothing
//   - Deterministic – fixed traversal orders, bit-for-bit reproducible runs
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors, errors.Is-friendly wrapping,
//     reject-before-mutation on undersized workspaces
//
// Under the hood, everything is organized under one subpackage:
//
//	ccs/ — the Matrix type, kernels, facades, validators and options
//
// Quick ASCII example:
//
//	    | 1 0 4 |        colPtr: [0 2 3 5]
//	    | 0 2 0 |   ⇒    rowIdx: [0 2 1 0 2]
//	    | 3 0 5 |        values: [1 3 2 4 5]   (column-major, rows sorted)
//
// Next up: triangular solves, symbolic factorization reuse and beyond.
//
//	go get github.com/katalvlaran/lvlmat/ccs
package lvlmat
