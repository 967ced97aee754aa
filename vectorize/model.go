// SPDX-License-Identifier: MIT

package vectorize

import "errors"

// ErrNotFitted indicates a Snapshot request before any successful fit.
var ErrNotFitted = errors.New("vectorize: vectorizer has not been fitted")

// Model is a serializable view of a fitted TfidfVectorizer.
// FeatureNames[j] and IDF[j] describe column j of the last TF-IDF matrix.
type Model struct {
	FeatureNames []string  `json:"feature_names"`
	IDF          []float64 `json:"idf"`
	Documents    int       `json:"documents"`
	EmptyPolicy  string    `json:"empty_documents"`
}

// Snapshot captures the fitted state. The returned Model owns its slices.
func (v *TfidfVectorizer) Snapshot() (Model, error) {
	if v.idf == nil {
		return Model{}, ErrNotFitted
	}

	return Model{
		FeatureNames: v.FeatureNames(),
		IDF:          v.IDFWeights(),
		Documents:    v.docs,
		EmptyPolicy:  v.opts.EmptyDocuments.String(),
	}, nil
}
