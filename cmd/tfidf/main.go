// SPDX-License-Identifier: MIT

// Command tfidf prints bag-of-words count, TF, IDF and TF-IDF matrices for a
// corpus read one document per line (or one CSV column) from files or stdin.
package main

import (
	"os"
)

func main() {
	cmd := createRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
