// SPDX-License-Identifier: MIT

package vectorize

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tfidf/matrix"
)

const (
	opTF      = "TF"
	opIDF     = "IDF"
	opCombine = "Combine"
)

// TF converts a count matrix into term frequencies.
//
// Each cell becomes count / (sum of its row), so every row sums to 1 (within
// floating-point tolerance). Rows are independent.
//
// Contract:
//   - counts must be non-nil; cells must be finite and >= 0 (ErrInvalidCount).
//   - A zero-sum row (a document with no tokens) is handled by policy:
//     EmptyDocumentError returns ErrEmptyDocument naming the row,
//     EmptyDocumentZero leaves the row all-zero.
//   - counts is never mutated; a fresh *matrix.Dense is returned.
//
// Complexity: O(r·c) time, O(r·c) extra memory.
func TF(counts matrix.Matrix, policy EmptyDocumentPolicy) (*matrix.Dense, error) {
	if !policy.valid() {
		return nil, fmt.Errorf("%s: %v: %w", opTF, policy, ErrUnknownPolicy)
	}
	if err := validateCounts(opTF, counts); err != nil {
		return nil, err
	}

	lengths, err := matrix.RowSums(counts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTF, err)
	}
	if policy == EmptyDocumentError {
		for i, n := range lengths {
			if n == 0 {
				return nil, fmt.Errorf("%s: document %d: %w", opTF, i, ErrEmptyDocument)
			}
		}
	}

	// Zero-length rows are copied, so they stay all-zero.
	tf, err := matrix.DivideRows(counts, lengths)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTF, err)
	}

	return tf, nil
}

// IDF computes smoothed inverse document frequencies, one per column:
//
//	idf(t) = ln((N + 1) / (df(t) + 1)) + 1
//
// where N = counts.Rows() and df(t) is the number of rows whose count for t
// is > 0. Every weight is >= 1; a term present in all documents gets exactly 1.
// For N = 0 every column weight is 1; a 0×0 input yields an empty vector.
//
// Complexity: O(r·c) time, O(c) memory.
func IDF(counts matrix.Matrix) ([]float64, error) {
	if err := validateCounts(opIDF, counts); err != nil {
		return nil, err
	}

	df, err := matrix.ColumnNonZeroCounts(counts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIDF, err)
	}

	n := float64(counts.Rows())
	idf := make([]float64, len(df))
	for j, d := range df {
		idf[j] = math.Log((n+1)/(float64(d)+1)) + 1
	}

	return idf, nil
}

// Combine multiplies every column j of tf by idf[j].
//
// Errors:
//   - ErrNilMatrix when tf is nil.
//   - ErrDimensionMismatch when len(idf) != tf.Cols().
//   - matrix.ErrNaNInf when idf holds NaN or ±Inf.
//
// Neither input is mutated.
func Combine(tf matrix.Matrix, idf []float64) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(tf); err != nil {
		return nil, fmt.Errorf("%s: %w", opCombine, err)
	}
	if len(idf) != tf.Cols() {
		return nil, fmt.Errorf("%s: tf has %d columns, idf has %d weights: %w",
			opCombine, tf.Cols(), len(idf), ErrDimensionMismatch)
	}
	if err := matrix.ValidateFiniteVec(idf); err != nil {
		return nil, fmt.Errorf("%s: %w", opCombine, err)
	}

	out, err := matrix.ScaleCols(tf, idf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCombine, err)
	}

	return out, nil
}

// validateCounts rejects nil matrices and cells that are negative or non-finite.
func validateCounts(op string, counts matrix.Matrix) error {
	if err := matrix.ValidateNotNil(counts); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if d, ok := counts.(*matrix.Dense); ok {
		var bad error
		d.Do(func(i, j int, v float64) bool {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				bad = fmt.Errorf("%s: cell (%d,%d)=%g: %w", op, i, j, v, ErrInvalidCount)
				return false
			}
			return true
		})

		return bad
	}

	r, c := counts.Rows(), counts.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := counts.At(i, j)
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s: cell (%d,%d)=%g: %w", op, i, j, v, ErrInvalidCount)
			}
		}
	}

	return nil
}
