// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tfidf/matrix"
)

// benchCounts builds a deterministic r×c table of small non-negative counts.
func benchCounts(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = m.Set(i, j, float64(rng.Intn(4))); err != nil {
				b.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}

func BenchmarkDivideRows(b *testing.B) {
	X := benchCounts(b, 256, 2048)
	lengths, err := matrix.RowSums(X)
	if err != nil {
		b.Fatalf("RowSums: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.DivideRows(X, lengths); err != nil {
			b.Fatalf("DivideRows: %v", err)
		}
	}
}

func BenchmarkColumnNonZeroCounts(b *testing.B) {
	X := benchCounts(b, 256, 2048)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.ColumnNonZeroCounts(X); err != nil {
			b.Fatalf("ColumnNonZeroCounts: %v", err)
		}
	}
}

func BenchmarkScaleCols(b *testing.B) {
	X := benchCounts(b, 256, 2048)
	scale := make([]float64, X.Cols())
	for j := range scale {
		scale[j] = 1 + float64(j%7)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.ScaleCols(X, scale); err != nil {
			b.Fatalf("ScaleCols: %v", err)
		}
	}
}
