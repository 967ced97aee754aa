// SPDX-License-Identifier: MIT

package vocab

// Vocabulary maps tokens to stable zero-based column indices.
//   - index holds token → column.
//   - names holds column → token, so names[index[t]] == t for every token t.
type Vocabulary struct {
	index map[string]int // token → column
	names []string       // column → token, in first-seen order
}

// New returns an empty Vocabulary.
func New() *Vocabulary {
	return &Vocabulary{
		index: make(map[string]int),
		names: make([]string, 0),
	}
}

// Add returns the column of token, assigning the next free index
// (== Len() before the call) when the token is unseen.
// Complexity: O(1) amortized.
func (v *Vocabulary) Add(token string) int {
	if idx, ok := v.index[token]; ok {
		return idx
	}
	idx := len(v.names)
	v.index[token] = idx
	v.names = append(v.names, token)

	return idx
}

// AddAll adds tokens in order and returns how many were previously unseen.
func (v *Vocabulary) AddAll(tokens []string) int {
	before := len(v.names)
	for _, tok := range tokens {
		v.Add(tok)
	}

	return len(v.names) - before
}

// Index returns the column of token and whether it is known.
// Complexity: O(1).
func (v *Vocabulary) Index(token string) (int, bool) {
	idx, ok := v.index[token]

	return idx, ok
}

// Token returns the token stored at column i and whether i is in range.
// Complexity: O(1).
func (v *Vocabulary) Token(i int) (string, bool) {
	if i < 0 || i >= len(v.names) {
		return "", false
	}

	return v.names[i], true
}

// Len returns the number of distinct tokens.
func (v *Vocabulary) Len() int { return len(v.names) }

// FeatureNames returns the tokens in column order.
// The slice is a copy: callers may modify it without affecting the vocabulary.
// An empty vocabulary yields an empty, non-nil slice.
// Complexity: O(Len()).
func (v *Vocabulary) FeatureNames() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)

	return out
}

// Reset forgets every token.
func (v *Vocabulary) Reset() {
	v.index = make(map[string]int)
	v.names = make([]string, 0)
}
