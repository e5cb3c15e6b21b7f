// Package bandwidth selects kernel bandwidths by cross-validation.
package bandwidth

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Rutgervdspek/CondCopulas/kendall"
	"github.com/Rutgervdspek/CondCopulas/sample"
)

// Result holds the outcome of a bandwidth selection.
type Result struct {
	// Bandwidth is the selected candidate: the first one attaining the
	// minimum criterion value.
	Bandwidth float64
	// Criteria holds the criterion value of each candidate, in candidate
	// order. A candidate whose kernel weights degenerated on some
	// evaluation carries +Inf.
	Criteria []float64
}

// Selector chooses a bandwidth from a candidate grid using the sample and
// its precomputed sign matrix. Implementations must not mutate the sign
// matrix, which is shared read-only with the caller.
type Selector interface {
	Select(signs *mat.SymDense, smp *sample.Sample, candidates []float64) (*Result, error)
}

// predictedPair maps a tau estimate to the expected value of a stored
// pair entry under the estimator's sign-matrix convention, so the
// cross-validation criterion compares like with like for all four
// estimator variants.
func predictedPair(est kendall.EstimatorType, tau float64) float64 {
	switch est {
	case kendall.EstConcordance:
		return (1 + tau) / 4
	case kendall.EstDiscordance:
		return (1 - tau) / 4
	default:
		return tau
	}
}

// argmin returns the index of the first finite minimum, or -1 when every
// value is +Inf.
func argmin(values []float64) int {
	best, bestIdx := math.Inf(1), -1
	for i, v := range values {
		if v < best {
			best, bestIdx = v, i
		}
	}
	return bestIdx
}
