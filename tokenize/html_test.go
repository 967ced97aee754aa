// SPDX-License-Identifier: MIT

package tokenize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tfidf/tokenize"
)

func TestHTMLText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "<p>Crock Pot Pasta</p>", "Crock Pot Pasta"},
		{"adjacent tags split words", "<b>crock</b><i>pot</i>", "crock pot"},
		{"script and style dropped", "<html><head><style>p{}</style><script>var x=1;</script></head><body>pasta</body></html>", "pasta"},
		{"nested hidden", "<noscript><script>a</script>b</noscript>c", "c"},
		{"entities decoded", "<p>fish &amp; chips</p>", "fish & chips"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tokenize.HTMLText(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHTMLText_FeedsFields(t *testing.T) {
	text, err := tokenize.HTMLText(strings.NewReader("<h1>Pasta</h1><p>PASTA pomodoro</p>"))
	require.NoError(t, err)
	assert.Equal(t, []string{"pasta", "pasta", "pomodoro"}, tokenize.Fields(text))
}
