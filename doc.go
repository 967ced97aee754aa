// Package tfidf is an in-memory bag-of-words toolkit: it turns an ordered
// corpus of raw documents into count, term-frequency, inverse-document-frequency
// and TF-IDF matrices.
//
// What is inside?
//
//   - Tokenizer: whitespace split + lowercase, punctuation kept
//   - Vocabulary: first-seen ordered, duplicate-free token → column mapping
//   - Count matrix: documents × vocabulary, raw occurrence counts
//   - TF: counts divided by document length (rows sum to 1)
//   - IDF: smoothed ln((N+1)/(df+1)) + 1, one weight per term
//   - TF-IDF: column-wise product of TF and IDF
//   - Similarity: cosine similarity of the TF-IDF rows
//
// Pipeline:
//
//	documents ──tokenize──▶ tokens ──vocab──▶ counts ─┬─▶ TF  ─┐
//	                                                   └─▶ IDF ─┴─▶ TF-IDF
//
// Everything is organized under a few small packages:
//
//	matrix/    dense row-major float64 matrix, reductions and broadcast kernels
//	tokenize/  document → tokens
//	vocab/     ordered token ↔ index mapping
//	vectorize/ CountVectorizer, TF, IDF, Combine, Similarity, TfidfVectorizer
//	cmd/tfidf  command-line front end (table / JSON / CSV output, `tfidf serve` JSON API)
//
// Quick example:
//
//	v := vectorize.NewTfidfVectorizer()
//	m, err := v.FitTransform([]string{
//		"Crock Pot Pasta Never boil pasta again",
//		"Pasta Pomodoro Fresh ingredients Parmesan to taste",
//	})
//	// m is 2×12; v.FeatureNames() lists the columns.
//
//	go install github.com/katalvlaran/tfidf/cmd/tfidf@latest
package tfidf
