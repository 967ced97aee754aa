// SPDX-License-Identifier: MIT

package vectorize

import (
	"errors"

	"github.com/katalvlaran/tfidf/matrix"
)

var (
	// ErrEmptyDocument indicates a document with zero tokens (a zero-sum count
	// row) under the EmptyDocumentError policy; its term frequency is undefined.
	ErrEmptyDocument = errors.New("vectorize: empty document has undefined term frequency")

	// ErrInvalidCount indicates a count matrix with a negative or non-finite cell.
	ErrInvalidCount = errors.New("vectorize: count matrix cells must be finite and >= 0")

	// ErrUnknownPolicy indicates an EmptyDocumentPolicy outside the defined set.
	ErrUnknownPolicy = errors.New("vectorize: unknown empty-document policy")
)

// ErrDimensionMismatch is matrix.ErrDimensionMismatch, re-exported so callers
// can match Combine failures without importing the matrix package.
var ErrDimensionMismatch = matrix.ErrDimensionMismatch

// ErrNilMatrix is matrix.ErrNilMatrix, re-exported for the same reason.
var ErrNilMatrix = matrix.ErrNilMatrix
