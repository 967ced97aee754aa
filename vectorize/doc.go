// SPDX-License-Identifier: MIT

// Package vectorize turns an ordered corpus of documents into bag-of-words
// count, term-frequency (TF), inverse-document-frequency (IDF) and TF-IDF
// matrices.
//
// 🚀 Pipeline
//
//	documents ──► tokenize.Fields ──► CountVectorizer ──┬──► TF  ──┐
//	                                  (vocab + counts)  │          ├──► Combine ──► TF-IDF
//	                                                    └──► IDF ──┘
//
// Every stage is a standalone, pure function over the data it is given:
//
//   - CountVectorizer.FitTransform: grows the vocabulary in first-seen order,
//     then counts every document against the final vocabulary, so all rows
//     share the same width.
//   - TF      : count / document length, per row.
//   - IDF     : ln((N+1)/(df+1)) + 1, per column (smoothed, always ≥ 1).
//   - Combine : tf[i][j] * idf[j], rejecting mismatched widths.
//   - Similarity: cosine similarity between rows (documents) of a weight matrix.
//
// TfidfVectorizer composes the stages; TF and IDF only read the count matrix,
// so the facade computes them concurrently.
//
// ⚙️ Usage:
//
//	v := vectorize.NewTfidfVectorizer()
//	weights, err := v.FitTransform([]string{"Crock Pot Pasta", "Pasta Pomodoro"})
//	names := v.FeatureNames() // column labels of weights
//
// Empty documents:
//
//	A document without tokens has an all-zero count row whose length is 0, so its
//	term frequency is undefined. By default TF (and therefore FitTransform)
//	fails with ErrEmptyDocument; WithEmptyDocumentPolicy(EmptyDocumentZero)
//	defines such rows as all-zero instead.
//
// Concurrency:
//
//	The stage functions are safe for concurrent use. CountVectorizer and
//	TfidfVectorizer are NOT thread-safe during a fit: the vocabulary is mutated
//	without locks, so callers must serialize FitTransform/Reset on one instance.
//
// Re-fitting:
//
//	Calling FitTransform again on the same instance keeps the existing
//	vocabulary, reuses known columns and appends unseen tokens. Matrices always
//	have one column per token seen so far. Call Reset to start from scratch.
package vectorize
