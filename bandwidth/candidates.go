package bandwidth

import (
	"math"

	"github.com/montanaflynn/stats"
)

// RuleOfThumb returns Silverman's rule-of-thumb bandwidth for the
// covariate values: 1.06 · min(σ, IQR/1.349) · n^(-1/5).
func RuleOfThumb(z []float64) (float64, error) {
	sigma, err := stats.StandardDeviation(z)
	if err != nil {
		return 0, err
	}
	iqr, err := stats.InterQuartileRange(z)
	if err != nil {
		return 0, err
	}
	spread := sigma
	if iqr > 0 && iqr/1.349 < spread {
		spread = iqr / 1.349
	}
	return 1.06 * spread * math.Pow(float64(len(z)), -0.2), nil
}

// DefaultCandidates returns a geometric grid of nine bandwidths around
// the rule-of-thumb value, from a quarter of it to four times it. The
// grid is ordered, which makes tie-breaking in selection deterministic.
func DefaultCandidates(z []float64) ([]float64, error) {
	h0, err := RuleOfThumb(z)
	if err != nil {
		return nil, err
	}
	if h0 <= 0 {
		return nil, ErrNoCandidates
	}
	grid := make([]float64, 0, 9)
	for k := -4; k <= 4; k++ {
		grid = append(grid, h0*math.Pow(2, float64(k)/2))
	}
	return grid, nil
}
