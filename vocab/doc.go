// SPDX-License-Identifier: MIT

// Package vocab provides the ordered, duplicate-free token→index mapping that
// fixes the column order of every vectorizer matrix.
//
// Indices are assigned in first-seen order starting at zero: the first token
// ever added gets column 0, the next unseen token column 1, and so on. The
// order is never rearranged (no alphabetical sort), so column j of a matrix
// always carries the label FeatureNames()[j].
//
// A Vocabulary is owned by a single vectorizer instance. It is not safe for
// concurrent mutation; concurrent readers are fine once adds have stopped.
package vocab
