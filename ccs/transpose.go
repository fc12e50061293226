// SPDX-License-Identifier: MIT

// Package ccs: the two-pass counting-sort transpose kernel.

package ccs

// TransposeInto computes c = aᵀ using a two-pass counting sort over a's
// entries. Pass one histograms a's row indices; BuildColumnPointers turns the
// histogram into c's column pointers and per-row write cursors; pass two
// walks a column by column and scatters each entry into its destination row
// of c. Because the scatter visits a in column order, every column of c comes
// out sorted by row index with no explicit sort step.
//
// Implementation:
//   - Stage 1: acquire (or validate) an int workspace of length a.Rows(),
//     zeroed, via IntWorkspace.
//   - Stage 2: grow c to hold a.NonZeros() entries and set c's logical count.
//   - Stage 3: histogram a.rowIdx into the workspace.
//   - Stage 4: BuildColumnPointers(c, work) - the workspace now holds
//     next-write cursors per destination column.
//   - Stage 5: scatter - for each entry (row, col, v) of a, write col and v
//     at cursor work[row] and post-increment the cursor.
//
// Inputs:
//   - a    : source matrix. Must be non-nil and structurally valid.
//   - c    : destination. Must be non-nil with shape a.Cols() x a.Rows();
//     storage grows as needed, previous contents are discarded.
//   - work : optional scratch of length >= a.Rows(). nil allocates.
//
// Returns:
//   - nil on success; c holds aᵀ with sorted columns.
//   - ErrWorkspaceTooSmall (wrapped) when work is non-nil and shorter than
//     a.Rows(). c is not touched in that case.
//
// Determinism:
//   - Fully deterministic: identical inputs produce identical c, bit for bit.
//
// Complexity:
//   - Time O(rows + cols + nnz), Space O(rows) scratch.
//
// Notes:
//   - The shape of c is a documented precondition, not a checked one; the
//     allocating facade Transpose handles sizing for callers that do not
//     manage destinations themselves.
func TransposeInto(a, c *Matrix, work []int) error {
	// Stage 1: workspace acquisition rejects short buffers before any write.
	work, err := IntWorkspace(a.rows, work, true)
	if err != nil {
		return ccsErrorf(opTransposeInto, err)
	}

	// Stage 2: size the destination. Reserve preserves nothing we need here;
	// the logical count becomes exactly a's.
	c.Reserve(a.nnz)
	c.nnz = a.nnz

	// Stage 3: histogram source row indices. Each row of a is a column of c.
	var i, j int
	idx0 := a.colPtr[0]
	for j = 1; j <= a.cols; j++ {
		idx1 := a.colPtr[j]
		for i = idx0; i < idx1; i++ {
			work[a.rowIdx[i]]++
		}
		idx0 = idx1
	}

	// Stage 4: counts -> column pointers of c, histogram -> write cursors.
	BuildColumnPointers(c, work)

	// Stage 5: scatter. Column-order traversal of a keeps each destination
	// column sorted by row index.
	idx0 = a.colPtr[0]
	for j = 1; j <= a.cols; j++ {
		col := j - 1
		idx1 := a.colPtr[j]
		for i = idx0; i < idx1; i++ {
			index := work[a.rowIdx[i]]
			work[a.rowIdx[i]]++
			c.rowIdx[index] = col
			c.values[index] = a.values[i]
		}
		idx0 = idx1
	}

	return nil
}
