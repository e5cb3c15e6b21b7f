package sample

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewValidation(t *testing.T) {
	z := mat.NewDense(3, 1, []float64{1, 2, 3})

	if _, err := New([]float64{1, 2}, []float64{1, 2, 3}, z); err != ErrLengthMismatch {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}
	if _, err := New(nil, nil, mat.NewDense(1, 1, nil)); err != ErrEmpty {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}
	if _, err := New([]float64{1, 2, 3}, []float64{4, 5, 6}, z); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestNewUnivariate(t *testing.T) {
	smp, err := NewUnivariate([]float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9})
	if err != nil {
		t.Fatalf("Failed to build sample: %v", err)
	}
	if smp.Len() != 3 {
		t.Errorf("Expected length 3, got %d", smp.Len())
	}
	if smp.Dim() != 1 {
		t.Errorf("Expected dimension 1, got %d", smp.Dim())
	}
	if got := smp.Covariate(1); got[0] != 8 {
		t.Errorf("Expected covariate 8, got %f", got[0])
	}
	col := smp.CovariateColumn(0)
	if len(col) != 3 || col[2] != 9 {
		t.Errorf("Unexpected covariate column: %v", col)
	}
}

func TestSubset(t *testing.T) {
	z := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})
	smp, err := New([]float64{1, 2, 3, 4}, []float64{5, 6, 7, 8}, z)
	if err != nil {
		t.Fatalf("Failed to build sample: %v", err)
	}

	sub := smp.Subset([]int{3, 1})
	if sub.Len() != 2 {
		t.Fatalf("Expected subset length 2, got %d", sub.Len())
	}
	if sub.X1[0] != 4 || sub.X2[0] != 8 {
		t.Errorf("Subset did not preserve index order: %v %v", sub.X1, sub.X2)
	}
	if sub.Z.At(1, 1) != 20 {
		t.Errorf("Expected Z[1,1]=20, got %f", sub.Z.At(1, 1))
	}
	if sub.Dim() != 2 {
		t.Errorf("Expected subset dimension 2, got %d", sub.Dim())
	}
}

func TestSummary(t *testing.T) {
	smp, err := NewUnivariate(
		[]float64{1, 2, 3, 4, 5},
		[]float64{2, 4, 6, 8, 10},
		[]float64{0, 0.25, 0.5, 0.75, 1},
	)
	if err != nil {
		t.Fatalf("Failed to build sample: %v", err)
	}

	summ := smp.Summary()
	if len(summ) != 3 {
		t.Fatalf("Expected 3 summaries, got %d", len(summ))
	}
	if summ[0].Name != "X1" || summ[2].Name != "Z" {
		t.Errorf("Unexpected names: %s, %s", summ[0].Name, summ[2].Name)
	}
	if math.Abs(summ[0].Mean-3) > 1e-12 {
		t.Errorf("Expected X1 mean 3, got %f", summ[0].Mean)
	}
	if math.Abs(summ[2].Median-0.5) > 1e-12 {
		t.Errorf("Expected Z median 0.5, got %f", summ[2].Median)
	}
}
