// Package kendall estimates the conditional Kendall's tau by kernel smoothing.
//
// The conditional Kendall's tau of (X1, X2) given Z = z is the
// probability of concordance minus the probability of discordance between
// two independent conditional draws, a value in [-1, 1]. The estimators
// in this package combine a precomputed matrix of pairwise concordance
// values with kernel weights of the query point against the observed
// covariates.
//
// # Sign Matrix
//
// The pairwise matrix is the sufficient statistic for every kernel-based
// estimator. It is built once per sample and shared read-only afterward:
//
//	signs, err := kendall.ComputeSignMatrix(x1, x2, kendall.EstCorrected)
//
// # Pointwise Estimation
//
// Estimate at a single covariate point:
//
//	tau, err := kendall.Pointwise(signs, zObs, []float64{0.5}, 0.1,
//	    kernels.Epanechnikov, kendall.EstCorrected)
//
// # Batched Estimation
//
// Estimate at each row of a query matrix, sharing the sign matrix and
// running query points concurrently:
//
//	taus, err := kendall.Evaluate(signs, zObs, []float64{0.1}, zQuery,
//	    kernels.Gaussian, kendall.EstCorrected, nil)
//
// # Estimator Variants
//
// Four combination formulas are supported, selected by EstimatorType.
// EstCorrected divides by the effective-sample-size term 1 − Σw² and is
// the recommended variant; EstConcordance and EstDiscordance are
// intentionally biased reference variants, and EstSign does not attain
// the full [-1, 1] range. Biased variants may return values outside
// [-1, 1] near boundaries or at low effective sample size; this is a
// documented property, not an error.
package kendall
