// SPDX-License-Identifier: MIT

package vectorize

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tfidf/matrix"
)

const opTfidf = "TfidfVectorizer.FitTransform"

// TfidfVectorizer runs the whole pipeline: tokenize, count, TF, IDF, combine.
//
// The vocabulary lives in the embedded CountVectorizer and persists across
// FitTransform calls (new terms are appended); the IDF weights reflect the
// most recent successful fit only. Reset clears both.
type TfidfVectorizer struct {
	counter *CountVectorizer
	opts    Options
	idf     []float64
	docs    int
}

// NewTfidfVectorizer returns an unfitted vectorizer configured by opts.
func NewTfidfVectorizer(opts ...Option) *TfidfVectorizer {
	return &TfidfVectorizer{
		counter: NewCountVectorizer(),
		opts:    gatherOptions(opts...),
	}
}

// FitTransform returns the TF-IDF matrix of documents
// (len(documents) × vocabulary size).
//
// Steps:
//  1. Validate the configured empty-document policy.
//  2. Tokenize; under EmptyDocumentError a document without tokens fails the
//     call before the vocabulary is touched.
//  3. Fit the vocabulary and build the count matrix.
//  4. TF and IDF are independent reads of the counts and run concurrently.
//  5. Combine multiplies column j of TF by idf[j].
//
// On error the stored IDF weights are left as they were.
func (v *TfidfVectorizer) FitTransform(documents []string) (*matrix.Dense, error) {
	if !v.opts.EmptyDocuments.valid() {
		return nil, fmt.Errorf("%s: %v: %w", opTfidf, v.opts.EmptyDocuments, ErrUnknownPolicy)
	}

	tokens := v.counter.tokenizeAll(documents)
	if v.opts.EmptyDocuments == EmptyDocumentError {
		for i, doc := range tokens {
			if len(doc) == 0 {
				return nil, fmt.Errorf("%s: document %d: %w", opTfidf, i, ErrEmptyDocument)
			}
		}
	}

	v.counter.fit(tokens)
	counts, err := v.counter.count(tokens)
	if err != nil {
		return nil, err
	}

	var (
		tf  *matrix.Dense
		idf []float64
		g   errgroup.Group
	)
	g.Go(func() error {
		var e error
		tf, e = TF(counts, v.opts.EmptyDocuments)
		return e
	})
	g.Go(func() error {
		var e error
		idf, e = IDF(counts)
		return e
	})
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opTfidf, err)
	}

	out, err := Combine(tf, idf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTfidf, err)
	}
	v.idf = idf
	v.docs = len(documents)

	return out, nil
}

// FeatureNames returns the vocabulary in column order (a copy); empty before
// the first fit.
func (v *TfidfVectorizer) FeatureNames() []string {
	return v.counter.FeatureNames()
}

// IDFWeights returns a copy of the weights from the last successful fit,
// or nil if there has been none.
func (v *TfidfVectorizer) IDFWeights() []float64 {
	if v.idf == nil {
		return nil
	}
	out := make([]float64, len(v.idf))
	copy(out, v.idf)

	return out
}

// Options returns the configuration the vectorizer was built with.
func (v *TfidfVectorizer) Options() Options { return v.opts }

// Reset forgets the vocabulary and the fitted IDF weights.
func (v *TfidfVectorizer) Reset() {
	v.counter.Reset()
	v.idf = nil
	v.docs = 0
}
