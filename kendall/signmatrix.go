package kendall

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ComputeSignMatrix builds the n×n matrix of pairwise concordance values
// for the given estimator type. The matrix is symmetric with a zero
// diagonal, is built once per sample, and is shared read-only by every
// downstream pointwise evaluation.
//
// For EstSign and EstCorrected the entry (i, j) is the concordance sign
// sign((X1_i−X1_j)(X2_i−X2_j)) in {-1, 0, +1}, ties giving 0. For
// EstConcordance and EstDiscordance the entry is the symmetrized
// orientation indicator (0 or 1/2), whose weighted mean feeds the biased
// 4m−1 and 1−4m combination formulas.
func ComputeSignMatrix(x1, x2 []float64, est EstimatorType) (*mat.SymDense, error) {
	if !est.Valid() {
		return nil, ErrUnknownEstimator
	}
	if len(x1) != len(x2) {
		return nil, ErrLengthMismatch
	}
	n := len(x1)
	if n == 0 {
		return nil, ErrEmptySample
	}

	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := (x1[i] - x1[j]) * (x2[i] - x2[j])
			var v float64
			switch est {
			case EstConcordance:
				if p > 0 {
					v = 0.5
				}
			case EstDiscordance:
				if p < 0 {
					v = 0.5
				}
			default: // EstSign, EstCorrected
				switch {
				case p > 0:
					v = 1
				case p < 0:
					v = -1
				}
			}
			s.SetSym(i, j, v)
		}
	}
	return s, nil
}

// Tau returns the unconditional (marginal) Kendall's tau of the sample,
// the flat-kernel limit of the conditional estimator.
func Tau(x1, x2 []float64) float64 {
	return stat.Kendall(x1, x2, nil)
}
