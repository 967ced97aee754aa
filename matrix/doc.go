// SPDX-License-Identifier: MIT

// Package matrix offers the dense numeric storage behind every weighted table
// produced by the vectorizer.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking). Zero-sized shapes (0×N, N×0) are legal so
//     that an empty corpus maps to an empty matrix rather than an error.
//   - Row/column reductions (RowSums, ColumnNonZeroCounts, NormalizeRowsL2)
//     used to derive document lengths, document frequencies and unit-length rows.
//   - Broadcast kernels (DivideRows for term frequency, ScaleCols for idf
//     weighting) that always return a fresh matrix and never mutate their
//     operands.
//   - Mul and Transpose, enough linear algebra for row-to-row similarity.
//   - Central validators and sentinel errors matched with errors.Is.
//
// All loops run in a fixed i→j order, so results are bit-identical across runs.
//
// See example_test.go for usage patterns.
package matrix
