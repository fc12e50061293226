// Package ccs implements compressed-column (CSC) sparse matrices over
// float64 with allocation-conscious kernels for transpose, scaled addition,
// scaling, and multiplication.
//
// 🚀 Why compressed columns?
//
//	A rows×cols matrix with nnz stored entries costs O(cols + nnz) memory
//	instead of O(rows·cols). Column-major compression fits algorithms that
//	consume whole columns at a time:
//	  • graph adjacency with per-vertex neighbor scans
//	  • normal-equation assembly and iterative solvers
//	  • feature matrices with few active features per sample
//
// ✨ Key features:
//   - Matrix: colPtr/rowIdx/values triplet with sorted, duplicate-free
//     columns and amortized-doubling growth (Reserve)
//   - two call styles per operation: an allocating facade (Transpose, Add,
//     Sub, Scale, Mult) and a zero-allocation kernel (TransposeInto,
//     AddInto, ScaleInto, MultInto) that reuses destinations and scratch
//   - counting-sort transpose that yields sorted columns with no sort step
//   - union-structure addition c = αa + βb over a lazily zeroed accumulator
//   - Gustavson multiplication with marker-based structure discovery
//   - dense bridges (NewFromDense, ToDense), structural validation
//     (Validate), and explicit-zero compaction (DropZeros)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmat/ccs"
//
//	a, _ := ccs.NewFromDense([][]float64{
//	  {1, 0, 0},
//	  {0, 3, 0},
//	  {2, 0, 0},
//	})
//
//	at, _ := ccs.Transpose(a)          // fresh aᵀ
//	s, _ := ccs.Add(2, a, -1, a)       // fresh 2a - a
//
//	// hot path: reuse one destination and scratch across iterations
//	c, _ := ccs.New(3, 3, ccs.WithCapacity(a.NonZeros()))
//	work := make([]int, a.Rows())
//	_ = ccs.TransposeInto(a, c, work)
//
// Error policy:
//
//	Facades validate operands (nil, shape) and return wrapped package
//	sentinels (ErrNilMatrix, ErrDimensionMismatch, ...). Kernels check only
//	what they cannot document away: a caller-provided scratch buffer shorter
//	than the row count yields ErrWorkspaceTooSmall before any output
//	mutation, so destinations stay intact on rejection.
//
// Performance:
//
//   - Transpose: O(rows + cols + nnz), O(rows) scratch
//   - Add/Sub:   O(cols + nnz(a) + nnz(b)), O(rows) scratch
//   - Mult:      O(flops + per-column sorting), O(rows) scratch
//   - All kernels are deterministic: fixed traversal orders, bit-for-bit
//     reproducible results.
//
// See example_test.go for runnable scenarios.
package ccs
