// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/tfidf/matrix"
)

const epsTight = 1e-12

// ------------------------------
// RowSums / ColumnNonZeroCounts
// ------------------------------

func TestRowSums_FastAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 3, []float64{1, 2, 3, 0, 0, 0, 4, 0, 1})

	fast, err := matrix.RowSums(X)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	slow, err := matrix.RowSums(hide{X})
	if err != nil {
		t.Fatalf("slow: %v", err)
	}
	sliceClose(t, fast, []float64{6, 0, 5}, 0, 0)
	sliceClose(t, slow, fast, 0, 0)
}

func TestRowSums_ZeroSize(t *testing.T) {
	t.Parallel()

	s, err := matrix.RowSums(MustDense(t, 3, 0))
	if err != nil {
		t.Fatalf("3x0: %v", err)
	}
	sliceClose(t, s, []float64{0, 0, 0}, 0, 0)

	s, err = matrix.RowSums(MustDense(t, 0, 3))
	if err != nil {
		t.Fatalf("0x3: %v", err)
	}
	if len(s) != 0 {
		t.Fatalf("0x3: want empty sums, got %v", s)
	}
}

func TestColumnNonZeroCounts_FastAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 4, []float64{
		1, 0, 2, -1,
		0, 0, 3, 0,
		5, 0, 1, 0,
	})
	want := []int{2, 0, 3, 0} // negatives never count

	for name, in := range map[string]matrix.Matrix{"fast": X, "slow": hide{X}} {
		got, err := matrix.ColumnNonZeroCounts(in)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(got) != len(want) {
			t.Fatalf("%s: len %d want %d", name, len(got), len(want))
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("%s: col %d got %d want %d", name, j, got[j], want[j])
			}
		}
	}
}

func TestReductions_NilMatrix(t *testing.T) {
	t.Parallel()

	if _, err := matrix.RowSums(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("RowSums(nil): want ErrNilMatrix, got %v", err)
	}
	var typedNil *matrix.Dense
	if _, err := matrix.ColumnNonZeroCounts(typedNil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("ColumnNonZeroCounts(typed nil): want ErrNilMatrix, got %v", err)
	}
	if _, _, err := matrix.NormalizeRowsL2(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("NormalizeRowsL2(nil): want ErrNilMatrix, got %v", err)
	}
}

// ------------------------------
// Term frequency: DivideRows over RowSums
// ------------------------------

func TestDivideRowsByRowSums_RowsSumToOne(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 3, []float64{1, 1, 2, 0, 0, 0, 3, 0, 4})

	lengths, err := matrix.RowSums(X)
	if err != nil {
		t.Fatalf("RowSums: %v", err)
	}
	Yf, err := matrix.DivideRows(X, lengths)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	Ys, err := matrix.DivideRows(hide{X}, lengths)
	if err != nil {
		t.Fatalf("slow: %v", err)
	}
	sliceClose(t, lengths, []float64{4, 0, 7}, 0, 0)
	CompareClose(t, Yf, Ys, 0, 0)

	// Degenerate row stays all-zero, others sum to 1.
	sums, _ := matrix.RowSums(Yf)
	if math.Abs(sums[0]-1) > epsTight || math.Abs(sums[2]-1) > epsTight {
		t.Fatalf("rows not normalized: %v", sums)
	}
	if sums[1] != 0 {
		t.Fatalf("zero row changed: %v", sums[1])
	}
	// True division: 3/7 exactly as a naive loop computes it.
	if got := MustAt(t, Yf, 2, 0); got != 3.0/7.0 {
		t.Fatalf("Y[2,0]=%v want %v", got, 3.0/7.0)
	}
}

// ------------------------------
// NormalizeRowsL2
// ------------------------------

func TestNormalizeRowsL2_UnitRowsStatistics(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{3, 4, 0, 0})
	Y, norms, err := matrix.NormalizeRowsL2(X)
	if err != nil {
		t.Fatalf("NormalizeRowsL2: %v", err)
	}
	sliceClose(t, norms, []float64{5, 0}, 0, 0)
	CompareClose(t, Y, NewFilledDense(t, 2, 2, []float64{0.6, 0.8, 0, 0}), 0, epsTight)
	if MustAt(t, X, 0, 0) != 3 {
		t.Fatalf("input mutated: %v", X)
	}
}
