// SPDX-License-Identifier: MIT

package vectorize

import (
	"fmt"

	"github.com/katalvlaran/tfidf/matrix"
)

const opSimilarity = "Similarity"

// Similarity returns the D×D cosine-similarity matrix of the rows of m
// (typically a TF-IDF matrix): S[i,k] = <m_i, m_k> / (|m_i|·|m_k|).
//
// Rows are L2-normalized first and S = Y·Yᵀ. A zero row (empty document under
// EmptyDocumentZero) is similar to nothing, itself included: its row and
// column of S are 0.
func Similarity(m matrix.Matrix) (*matrix.Dense, error) {
	Y, _, err := matrix.NormalizeRowsL2(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSimilarity, err)
	}
	Yt, err := matrix.Transpose(Y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSimilarity, err)
	}
	S, err := matrix.Mul(Y, Yt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSimilarity, err)
	}

	return S, nil
}
