package kendall

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Rutgervdspek/CondCopulas/kernels"
)

// Pointwise estimates the conditional Kendall's tau at a single covariate
// point, combining the precomputed sign matrix with normalized kernel
// weights of the point against the observed covariates zObs (n×d).
//
// A query point carrying no kernel weight mass yields
// kernels.ErrDegenerateWeights. The corrected estimator additionally
// reports degenerate weights when the whole mass concentrates on a single
// observation, where its effective-sample-size denominator vanishes.
func Pointwise(signs *mat.SymDense, zObs *mat.Dense, point []float64, h float64, k kernels.Kernel, est EstimatorType) (float64, error) {
	if err := checkDims(signs, zObs, est); err != nil {
		return 0, err
	}
	n, d := zObs.Dims()
	if len(point) != d {
		return 0, ErrDimensionMismatch
	}

	if d == 1 {
		col := make([]float64, n)
		mat.Col(col, 0, zObs)
		w, err := kernels.Weights(col, point[0], h, k, true)
		if err != nil {
			return 0, err
		}
		wv := mat.NewVecDense(n, w)
		return combine(est, mat.Inner(wv, signs, wv), floats.Dot(w, w))
	}

	idx, w, err := kernels.ProductWeights(zObs, nil, point, h, k)
	if err != nil {
		return 0, err
	}
	return combineSubset(signs, idx, w, est)
}

// PointwiseSubset is Pointwise restricted to the observations whose
// indices appear in subset, without copying the sign matrix. It is used
// by cross-validation to estimate from training rows only.
func PointwiseSubset(signs *mat.SymDense, zObs *mat.Dense, subset []int, point []float64, h float64, k kernels.Kernel, est EstimatorType) (float64, error) {
	if err := checkDims(signs, zObs, est); err != nil {
		return 0, err
	}
	_, d := zObs.Dims()
	if len(point) != d {
		return 0, ErrDimensionMismatch
	}
	if len(subset) == 0 {
		return 0, ErrEmptySample
	}

	if d == 1 {
		z := make([]float64, len(subset))
		for a, i := range subset {
			z[a] = zObs.At(i, 0)
		}
		w, err := kernels.Weights(z, point[0], h, k, true)
		if err != nil {
			return 0, err
		}
		return combineSubset(signs, subset, w, est)
	}

	idx, w, err := kernels.ProductWeights(zObs, subset, point, h, k)
	if err != nil {
		return 0, err
	}
	return combineSubset(signs, idx, w, est)
}

// combineSubset evaluates the quadratic form wᵀSw over the given index
// subset. Only the O(k) weight vector is allocated; the sign matrix is
// indexed in place.
func combineSubset(signs *mat.SymDense, idx []int, w []float64, est EstimatorType) (float64, error) {
	var sum float64
	for a := range idx {
		// Diagonal entries are zero; off-diagonal terms come in
		// symmetric pairs.
		for b := a + 1; b < len(idx); b++ {
			sum += 2 * w[a] * w[b] * signs.At(idx[a], idx[b])
		}
	}
	return combine(est, sum, floats.Dot(w, w))
}

// combine applies the estimator-specific formula to the weighted pair sum
// m = Σ(W⊙S) and the weight concentration Σw².
func combine(est EstimatorType, m, sumW2 float64) (float64, error) {
	switch est {
	case EstConcordance:
		return 4*m - 1, nil
	case EstSign:
		return m, nil
	case EstDiscordance:
		return 1 - 4*m, nil
	case EstCorrected:
		denom := 1 - sumW2
		if denom <= 0 {
			return 0, kernels.ErrDegenerateWeights
		}
		return m / denom, nil
	}
	return 0, ErrUnknownEstimator
}

func checkDims(signs *mat.SymDense, zObs *mat.Dense, est EstimatorType) error {
	if !est.Valid() {
		return ErrUnknownEstimator
	}
	n, _ := zObs.Dims()
	if signs.SymmetricDim() != n {
		return ErrDimensionMismatch
	}
	return nil
}
