// Package kendall estimates the conditional Kendall's tau by kernel smoothing.
package kendall

// EstimatorType selects one of the four pointwise combination formulas.
// The numeric values match the historical typeEstCKT codes 1-4.
type EstimatorType int

const (
	// EstConcordance estimates tau as 4·Σ(W⊙S) − 1 from concordance
	// indicators. Negatively biased in finite samples; kept for
	// comparison studies.
	EstConcordance EstimatorType = 1

	// EstSign estimates tau as the weighted mean of pair signs, Σ(W⊙S).
	// Does not attain the full [-1, 1] range.
	EstSign EstimatorType = 2

	// EstDiscordance estimates tau as 1 − 4·Σ(W⊙S) from discordance
	// indicators. Positively biased in finite samples.
	EstDiscordance EstimatorType = 3

	// EstCorrected estimates tau as Σ(W⊙S) / (1 − Σw²), the
	// effective-sample-size corrected variant recommended for practical
	// use.
	EstCorrected EstimatorType = 4
)

// Valid reports whether t is one of the four supported estimator types.
func (t EstimatorType) Valid() bool {
	return t >= EstConcordance && t <= EstCorrected
}

// String returns a short name for the estimator type.
func (t EstimatorType) String() string {
	switch t {
	case EstConcordance:
		return "concordance"
	case EstSign:
		return "sign"
	case EstDiscordance:
		return "discordance"
	case EstCorrected:
		return "corrected"
	}
	return "unknown"
}
