// SPDX-License-Identifier: MIT

package vectorize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tfidf/matrix"
	"github.com/katalvlaran/tfidf/vectorize"
)

func TestSimilarity(t *testing.T) {
	v := vectorize.NewTfidfVectorizer(vectorize.WithEmptyDocumentPolicy(vectorize.EmptyDocumentZero))
	m, err := v.FitTransform([]string{"red fish", "red fish", "blue whale", ""})
	require.NoError(t, err)

	S, err := vectorize.Similarity(m)
	require.NoError(t, err)
	require.Equal(t, 4, S.Rows())
	require.Equal(t, 4, S.Cols())

	at := func(i, k int) float64 {
		x, err := S.At(i, k)
		require.NoError(t, err)
		return x
	}
	assert.InDelta(t, 1.0, at(0, 0), eps)
	assert.InDelta(t, 1.0, at(0, 1), eps, "identical documents")
	assert.Equal(t, 0.0, at(0, 2), "no shared terms")
	assert.Equal(t, 0.0, at(3, 3), "empty document")
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			assert.Equal(t, at(i, k), at(k, i), "symmetric at (%d,%d)", i, k)
		}
	}
}

func TestSimilarity_EmptyAndNil(t *testing.T) {
	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	S, err := vectorize.Similarity(m)
	require.NoError(t, err)
	assert.Equal(t, 0, S.Rows())

	_, err = vectorize.Similarity(nil)
	assert.ErrorIs(t, err, vectorize.ErrNilMatrix)
}
