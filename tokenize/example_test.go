// SPDX-License-Identifier: MIT

package tokenize_test

import (
	"fmt"

	"github.com/katalvlaran/tfidf/tokenize"
)

// ExampleFields shows case folding and whitespace splitting.
func ExampleFields() {
	fmt.Println(tokenize.Fields("Crock Pot Pasta  Never boil pasta again"))
	// Output:
	// [crock pot pasta never boil pasta again]
}
