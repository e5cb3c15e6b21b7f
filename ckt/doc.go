// Package ckt is the top-level entry point for conditional Kendall's tau estimation.
//
// ckt.Kernel wires the estimation pipeline together: it builds the
// pairwise sign matrix once, selects a bandwidth by cross-validation when
// several candidates are supplied, and evaluates the kernel estimator at
// the requested query points.
//
// # Estimation
//
//	smp, _ := sample.NewUnivariate(x1, x2, z)
//	opts := ckt.DefaultOptions()
//	opts.Bandwidths = []float64{0.05, 0.1, 0.2, 0.4}
//	opts.Kernel = kernels.Epanechnikov
//
//	result, err := ckt.Kernel(smp, zQuery, opts)
//	// result.Estimates, result.Bandwidth, result.Criteria
//
// Passing a single bandwidth skips cross-validation entirely:
//
//	opts.Bandwidths = []float64{0.1}
//
// # The Estimator Contract
//
// KernelEstimator implements the Estimator interface (Fit on a sample,
// Predict at query covariates). Alternative estimation back ends for the
// same quantity can satisfy the same contract and be used
// interchangeably by callers.
package ckt
