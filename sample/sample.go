// Package sample provides data structures for paired observations with covariates.
package sample

import (
	"errors"
	"strconv"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// ErrLengthMismatch is returned when X1, X2 and the covariate rows do not
// all have the same length.
var ErrLengthMismatch = errors.New("sample: X1, X2 and covariates must have the same length")

// ErrEmpty is returned when a sample is constructed from no observations.
var ErrEmpty = errors.New("sample: empty sample")

// Sample represents n paired observations (X1, X2) together with an n×d
// matrix of conditioning covariates Z.
type Sample struct {
	X1 []float64
	X2 []float64
	Z  *mat.Dense
}

// New creates a sample from paired observations and a covariate matrix.
func New(x1, x2 []float64, z *mat.Dense) (*Sample, error) {
	if len(x1) == 0 {
		return nil, ErrEmpty
	}
	rows, _ := z.Dims()
	if len(x1) != len(x2) || len(x1) != rows {
		return nil, ErrLengthMismatch
	}
	return &Sample{X1: x1, X2: x2, Z: z}, nil
}

// NewUnivariate creates a sample with a single conditioning covariate.
func NewUnivariate(x1, x2, z []float64) (*Sample, error) {
	if len(z) == 0 {
		return nil, ErrEmpty
	}
	m := mat.NewDense(len(z), 1, nil)
	for i, v := range z {
		m.Set(i, 0, v)
	}
	return New(x1, x2, m)
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.X1)
}

// Dim returns the number of conditioning covariates.
func (s *Sample) Dim() int {
	_, d := s.Z.Dims()
	return d
}

// Covariate returns a copy of the i-th covariate row.
func (s *Sample) Covariate(i int) []float64 {
	row := make([]float64, s.Dim())
	mat.Row(row, i, s.Z)
	return row
}

// CovariateColumn returns a copy of the j-th covariate column.
func (s *Sample) CovariateColumn(j int) []float64 {
	col := make([]float64, s.Len())
	mat.Col(col, j, s.Z)
	return col
}

// Subset returns a new sample restricted to the given observation indices.
// The indices are not required to be sorted; order is preserved.
func (s *Sample) Subset(indices []int) *Sample {
	n := len(indices)
	d := s.Dim()
	x1 := make([]float64, n)
	x2 := make([]float64, n)
	z := mat.NewDense(n, d, nil)
	for k, i := range indices {
		x1[k] = s.X1[i]
		x2[k] = s.X2[i]
		for j := 0; j < d; j++ {
			z.Set(k, j, s.Z.At(i, j))
		}
	}
	return &Sample{X1: x1, X2: x2, Z: z}
}

// VariableSummary holds descriptive statistics for one variable.
type VariableSummary struct {
	Name   string
	Mean   float64
	Std    float64
	Min    float64
	Median float64
	Max    float64
}

// Summary computes descriptive statistics for X1, X2 and each covariate column.
func (s *Sample) Summary() []VariableSummary {
	out := make([]VariableSummary, 0, 2+s.Dim())
	out = append(out, describe("X1", s.X1), describe("X2", s.X2))
	for j := 0; j < s.Dim(); j++ {
		name := "Z"
		if s.Dim() > 1 {
			name = "Z" + strconv.Itoa(j+1)
		}
		out = append(out, describe(name, s.CovariateColumn(j)))
	}
	return out
}

func describe(name string, v []float64) VariableSummary {
	mean, _ := stats.Mean(v)
	std, _ := stats.StandardDeviation(v)
	min, _ := stats.Min(v)
	med, _ := stats.Median(v)
	max, _ := stats.Max(v)
	return VariableSummary{Name: name, Mean: mean, Std: std, Min: min, Median: med, Max: max}
}
