// SPDX-License-Identifier: MIT
// Package: matrix (public API facades)
//
// Purpose:
//   - Provide thin, well-documented entry points over the private kernels.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only forward.
//   - Every facade returns a fresh matrix/vector; operands are never mutated.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDivRows             = "DivideRows"
	opScaleCols           = "ScaleCols"
	opAllClose            = "AllClose"
	opRowSums             = "RowSums"
	opColumnNonZeroCounts = "ColumnNonZeroCounts"
	opNormalizeRowsL2     = "NormalizeRowsL2"
	opMul                 = "Mul"
	opTranspose           = "Transpose"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- Reductions (O(rc)) ----------

// RowSums returns Σ_j X[i,j] for every row i (len = Rows()).
// Complexity: O(rc).
func RowSums(X Matrix) ([]float64, error) { return rowSums(X) }

// ColumnNonZeroCounts returns #{i : X[i,j] > 0} for every column j (len = Cols()).
// Complexity: O(rc).
func ColumnNonZeroCounts(X Matrix) ([]int, error) { return columnNonZeroCounts(X) }

// NormalizeRowsL2 divides each row by its Euclidean norm; zero-norm rows are copied unchanged.
// Returns the normalized copy and the original norms.
// Complexity: O(rc).
func NormalizeRowsL2(X Matrix) (*Dense, []float64, error) { return normalizeRowsL2(X) }

// ---------- Broadcast kernels (O(rc)) ----------

// DivideRows returns out[i,j] = X[i,j] / div[i]; rows with div[i] == 0 are copied unchanged.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(div) != Rows()).
func DivideRows(X Matrix, div []float64) (*Dense, error) { return ewDivRows(X, div) }

// ScaleCols returns out[i,j] = X[i,j] * scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Cols()).
func ScaleCols(X Matrix, scale []float64) (*Dense, error) { return ewScaleCols(X, scale) }

// ---------- Comparison ----------

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tolerances).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }
