// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the row/column reductions the vectorizer derives its statistics from:
//     document lengths (row sums), document frequencies (non-zero counts per column)
//     and L2 row normalization (cosine similarity).
//   - Keep tight loops centralized in ew* where it improves reuse and consistency.
//
// Exposed API (see api.go):
//   - RowSums(X)             -> sums    // Σ_j X[i,j] per row
//   - ColumnNonZeroCounts(X) -> counts  // #{i : X[i,j] > 0} per column
//   - NormalizeRowsL2(X)     -> (Y, norms) // unit-length rows for cosine similarity
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At and operate on row-major flat buffers.
//   - Zero-size matrices (0×N or N×0) are legal and produce empty/zero results.

package matrix

import "math"

// rowSums returns Σ_j X[i,j] for every row i.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Accumulate each row left to right (Dense fast-path; At fallback).
//
// Behavior highlights:
//   - A row with zero columns sums to 0.
//   - Fixed summation order makes results bit-identical across runs.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func rowSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, r)

	var i, j int
	var s float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0.0
			base := i * c
			for j = 0; j < c; j++ {
				s += d.data[base+j]
			}
			sums[i] = s
		}
		return sums, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			s += v
		}
		sums[i] = s
	}
	return sums, nil
}

// columnNonZeroCounts returns, for every column j, the number of rows whose
// entry is strictly greater than zero.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Single i→j pass incrementing counts[j] on X[i,j] > 0.
//
// Behavior highlights:
//   - Negative entries never count; a 0×N matrix yields N zeros.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func columnNonZeroCounts(X Matrix) ([]int, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnNonZeroCounts, err)
	}
	r, c := X.Rows(), X.Cols()
	counts := make([]int, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				if d.data[base+j] > 0 {
					counts[j]++
				}
			}
		}
		return counts, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opColumnNonZeroCounts, err)
			}
			if v > 0 {
				counts[j]++
			}
		}
	}
	return counts, nil
}

// normalizeRowsL2 scales each row to have L2-norm == 1 when possible.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-row L2 norms sqrt(Σ_j x_ij²) deterministically.
//   - Stage 3: Divide every row by its norm via ewDivRows.
//
// Behavior highlights:
//   - Degenerate rows (norm==0) are left unchanged, so all-zero rows stay all-zero.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(r) auxiliary slices).
func normalizeRowsL2(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)

	var i, j int
	var s, v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0.0
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				s += v * v
			}
			norms[i] = math.Sqrt(s)
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			s = 0.0
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
				}
				s += v * v
			}
			norms[i] = math.Sqrt(s)
		}
	}

	Y, err := ewDivRows(X, norms)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}

	return Y, norms, nil
}
