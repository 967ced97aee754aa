// SPDX-License-Identifier: MIT

package vectorize

import (
	"fmt"

	"github.com/katalvlaran/tfidf/matrix"
	"github.com/katalvlaran/tfidf/tokenize"
	"github.com/katalvlaran/tfidf/vocab"
)

const opCount = "CountVectorizer.FitTransform"

// CountVectorizer converts documents into a dense token-count matrix.
// It owns its vocabulary: no other component can mutate it, and it persists
// across FitTransform calls until Reset.
//
// Not safe for concurrent fitting; see the package documentation.
type CountVectorizer struct {
	vocab    *vocab.Vocabulary
	tokenize tokenize.Func
}

// NewCountVectorizer returns a vectorizer with an empty vocabulary.
func NewCountVectorizer() *CountVectorizer {
	return &CountVectorizer{
		vocab:    vocab.New(),
		tokenize: tokenize.Fields,
	}
}

// FitTransform learns the vocabulary of documents and returns their counts.
//
// Algorithm:
//  1. Tokenize every document (tokenize.Fields).
//  2. For each document in order, for each token in order, add unseen tokens
//     to the vocabulary (next free index).
//  3. With the vocabulary now final for this call, build one row per document
//     of width Len() and increment the cell of every token occurrence.
//
// Returns:
//   - *matrix.Dense: len(documents) × vocabulary size; cell = raw count.
//     An empty corpus yields a 0×Len() matrix (0×0 on a fresh instance).
//
// Complexity:
//
//	Time   = O(T + D·V) for T tokens, D documents, V vocabulary size
//	Memory = O(D·V)
func (cv *CountVectorizer) FitTransform(documents []string) (*matrix.Dense, error) {
	tokens := cv.tokenizeAll(documents)
	cv.fit(tokens)

	return cv.count(tokens)
}

// FeatureNames returns the vocabulary in column order (a copy).
// Before any fit it returns an empty slice.
func (cv *CountVectorizer) FeatureNames() []string {
	return cv.vocab.FeatureNames()
}

// VocabularySize returns the number of distinct tokens seen so far.
func (cv *CountVectorizer) VocabularySize() int {
	return cv.vocab.Len()
}

// Index returns the column assigned to token, if any.
func (cv *CountVectorizer) Index(token string) (int, bool) {
	return cv.vocab.Index(token)
}

// Reset forgets the learned vocabulary.
func (cv *CountVectorizer) Reset() {
	cv.vocab.Reset()
}

// tokenizeAll splits every document; the result is indexed like documents.
func (cv *CountVectorizer) tokenizeAll(documents []string) [][]string {
	out := make([][]string, len(documents))
	for i, doc := range documents {
		out[i] = cv.tokenize(doc)
	}

	return out
}

// fit grows the vocabulary in first-seen order (document by document,
// token by token).
func (cv *CountVectorizer) fit(tokens [][]string) {
	for _, doc := range tokens {
		cv.vocab.AddAll(doc)
	}
}

// count builds the count matrix against the current (final) vocabulary.
// Tokens missing from the vocabulary are ignored; after fit that cannot happen.
func (cv *CountVectorizer) count(tokens [][]string) (*matrix.Dense, error) {
	width := cv.vocab.Len()
	counts, err := matrix.NewDense(len(tokens), width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCount, err)
	}

	for i, doc := range tokens {
		row := make([]float64, width)
		for _, tok := range doc {
			if j, ok := cv.vocab.Index(tok); ok {
				row[j]++
			}
		}
		for j, c := range row {
			if c == 0 {
				continue
			}
			if err = counts.Set(i, j, c); err != nil {
				return nil, fmt.Errorf("%s: %w", opCount, err)
			}
		}
	}

	return counts, nil
}
