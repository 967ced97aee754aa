// SPDX-License-Identifier: MIT

// Package tokenize splits raw documents into lowercase tokens.
//
// Tokenization is deliberately minimal:
//
//   - split on runs of Unicode whitespace (no configurable delimiter);
//   - drop empty fragments;
//   - fold every fragment to lowercase.
//
// There is no stemming, no stop-word removal, no punctuation stripping and no
// Unicode normalization beyond case folding, so "Pasta," and "pasta" are
// different tokens while "Pasta" and "pasta" are the same one.
//
// HTMLText is an optional pre-step for HTML input: it reduces a page to its
// visible text, which is then tokenized with Fields like any other document.
//
// Fields is a pure function: deterministic, allocation-bounded by the output,
// and safe for concurrent use.
package tokenize
