// SPDX-License-Identifier: MIT

package tokenize

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLText returns the visible text of an HTML document, whitespace-collapsed.
// Text inside <script>, <style> and <noscript> is dropped; tag boundaries
// become word boundaries, so "<b>crock</b><i>pot</i>" yields "crock pot".
func HTMLText(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)
	var sb strings.Builder
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return strings.Join(strings.Fields(sb.String()), " "), nil
			}
			return "", z.Err()

		case html.StartTagToken:
			if hidden(z) {
				skip++
			}

		case html.EndTagToken:
			if hidden(z) && skip > 0 {
				skip--
			}

		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

// hidden reports whether the current tag encloses non-rendered text.
func hidden(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "script", "style", "noscript":
		return true
	default:
		return false
	}
}
