// SPDX-License-Identifier: MIT

package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Func is the signature of a document tokenizer.
// Fields is the only implementation shipped; the type exists so callers can
// name the dependency without importing a concrete function.
type Func func(document string) []string

// Fields lowercases document and splits it on runs of whitespace.
//
// Whitespace is unicode.IsSpace plus the ASCII separators U+001C..U+001F,
// the same set Python's str.split() uses. Lowercasing follows the full
// Unicode mapping rather than strings.ToLower: a word-final capital sigma
// becomes ς and İ becomes "i̇" (i + U+0307), matching Python's str.lower().
//
// An empty or whitespace-only document yields an empty, non-nil slice.
//
// Complexity: O(len(document)).
func Fields(document string) []string {
	// A Caser keeps state between calls, so each call gets its own.
	lower := cases.Lower(language.Und).String(document)
	parts := strings.FieldsFunc(lower, isSeparator)
	if parts == nil {
		return []string{}
	}

	return parts
}

// isSeparator reports whether r splits tokens.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
