// SPDX-License-Identifier: MIT

package vectorize_test

import (
	"fmt"

	"github.com/katalvlaran/tfidf/vectorize"
)

func ExampleCountVectorizer_FitTransform() {
	cv := vectorize.NewCountVectorizer()
	counts, err := cv.FitTransform([]string{
		"Crock Pot Pasta Never boil pasta again",
		"Pasta Pomodoro Fresh ingredients Parmesan to taste",
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(cv.FeatureNames())
	fmt.Print(counts)
	// Output:
	// [crock pot pasta never boil again pomodoro fresh ingredients parmesan to taste]
	// [1, 1, 2, 1, 1, 1, 0, 0, 0, 0, 0, 0]
	// [0, 0, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1]
}

func ExampleTfidfVectorizer_FitTransform() {
	v := vectorize.NewTfidfVectorizer()
	m, err := v.FitTransform([]string{
		"Crock Pot Pasta Never boil pasta again",
		"Pasta Pomodoro Fresh ingredients Parmesan to taste",
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	row, _ := m.Row(0)
	for j, name := range v.FeatureNames()[:3] {
		fmt.Printf("%s=%.4f\n", name, row[j])
	}
	// Output:
	// crock=0.2008
	// pot=0.2008
	// pasta=0.2857
}

func ExampleIDF() {
	cv := vectorize.NewCountVectorizer()
	counts, _ := cv.FitTransform([]string{"red fish", "blue fish"})

	idf, _ := vectorize.IDF(counts)
	for j, name := range cv.FeatureNames() {
		fmt.Printf("%s %.4f\n", name, idf[j])
	}
	// Output:
	// red 1.4055
	// fish 1.0000
	// blue 1.4055
}
