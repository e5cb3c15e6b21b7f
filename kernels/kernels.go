// Package kernels computes smoothing kernel weights for covariate points.
package kernels

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Kernel identifies a smoothing kernel shape.
type Kernel int

const (
	// Gaussian is the unbounded-support kernel exp(-u²).
	Gaussian Kernel = iota
	// Epanechnikov is the compact-support kernel 0.75·(1-u²) on |u| ≤ 1.
	Epanechnikov
)

// String returns the canonical kernel name.
func (k Kernel) String() string {
	switch k {
	case Gaussian:
		return "Gaussian"
	case Epanechnikov:
		return "Epanechnikov"
	}
	return "unknown"
}

// Valid reports whether k is a supported kernel.
func (k Kernel) Valid() bool {
	return k == Gaussian || k == Epanechnikov
}

// Parse returns the kernel named by s. Accepted names are "Gaussian" and
// "Epanechnikov" (case-insensitive; "Epa" is accepted as a short form).
func Parse(s string) (Kernel, error) {
	switch {
	case strings.EqualFold(s, "Gaussian"):
		return Gaussian, nil
	case strings.EqualFold(s, "Epanechnikov"), strings.EqualFold(s, "Epa"):
		return Epanechnikov, nil
	}
	return Kernel(-1), ErrUnknownKernel
}

// value evaluates the kernel shape at the scaled distance u.
func (k Kernel) value(u float64) float64 {
	switch k {
	case Gaussian:
		return math.Exp(-u * u)
	case Epanechnikov:
		if u < -1 || u > 1 {
			return 0
		}
		return 0.75 * (1 - u*u)
	}
	return math.NaN()
}

// Weights computes the kernel weight of the query point against each
// observed covariate value: w_i = K((z_i - point)/h). If normalize is
// true the weights are scaled to sum to one; a zero weight sum yields
// ErrDegenerateWeights rather than a silent division by zero.
func Weights(z []float64, point, h float64, k Kernel, normalize bool) ([]float64, error) {
	if !k.Valid() {
		return nil, ErrUnknownKernel
	}
	if h <= 0 {
		return nil, ErrInvalidBandwidth
	}
	w := make([]float64, len(z))
	for i, zi := range z {
		w[i] = k.value((zi - point) / h)
	}
	if normalize {
		sum := floats.Sum(w)
		if sum == 0 {
			return nil, ErrDegenerateWeights
		}
		floats.Scale(1/sum, w)
	}
	return w, nil
}

// ProductWeights computes normalized multivariate kernel weights of the
// query point against the rows of z, using a product kernel across the d
// coordinates. subset restricts the computation to the given row indices;
// a nil subset means all rows.
//
// The returned indices are row indices into z for which the weight is
// structurally nonzero, and w holds their weights, normalized to sum to
// one. For the Epanechnikov kernel, rows outside the axis-aligned
// hypercube |z_i - point| ≤ h are filtered out before any weight is
// computed; both slices come from this one shared filtering step so that
// callers can index a sign matrix and the weight vector consistently.
//
// Returns ErrDegenerateWeights when no row carries positive weight.
func ProductWeights(z *mat.Dense, subset []int, point []float64, h float64, k Kernel) ([]int, []float64, error) {
	if !k.Valid() {
		return nil, nil, ErrUnknownKernel
	}
	if h <= 0 {
		return nil, nil, ErrInvalidBandwidth
	}
	n, d := z.Dims()
	if len(point) != d {
		return nil, nil, ErrDimensionMismatch
	}
	if subset == nil {
		subset = make([]int, n)
		for i := range subset {
			subset[i] = i
		}
	}

	// Compact-support prefilter: keep only rows inside the bandwidth
	// hypercube, so the weight loop touches no structurally zero row.
	rows := subset
	if k == Epanechnikov {
		rows = make([]int, 0, len(subset))
		for _, i := range subset {
			inside := true
			for j := 0; j < d; j++ {
				if diff := math.Abs(z.At(i, j) - point[j]); diff > h {
					inside = false
					break
				}
			}
			if inside {
				rows = append(rows, i)
			}
		}
		if len(rows) == 0 {
			return nil, nil, ErrDegenerateWeights
		}
	}

	w := make([]float64, len(rows))
	for a, i := range rows {
		wi := 1.0
		for j := 0; j < d; j++ {
			wi *= k.value((z.At(i, j) - point[j]) / h)
		}
		w[a] = wi
	}
	sum := floats.Sum(w)
	if sum == 0 {
		return nil, nil, ErrDegenerateWeights
	}
	floats.Scale(1/sum, w)
	return rows, w, nil
}
