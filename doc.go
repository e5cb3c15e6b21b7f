// Package condcopulas provides estimation of conditional dependence for bivariate data.
//
// CondCopulas estimates the conditional Kendall's tau between two variables
// X1 and X2 given a conditioning covariate Z (univariate or multivariate),
// using kernel smoothing with data-driven bandwidth selection, and builds
// fitted conditional copula models from the estimated dependence structure.
//
// # Features
//
//   - Kernel-based conditional Kendall's tau estimation (Gaussian and
//     Epanechnikov kernels, univariate and multivariate covariates)
//   - Four estimator variants, including the effective-sample-size
//     corrected estimator recommended for practical use
//   - Bandwidth selection by K-fold or leave-one-out cross-validation
//   - Rule-of-thumb bandwidths and default candidate grids
//   - Parametric copula families (Clayton, Gumbel, Frank, Gaussian):
//     fitting from Kendall's tau and simulation
//
// # Quick Start
//
// Estimate the conditional Kendall's tau on a query grid:
//
//	smp, _ := sample.NewUnivariate(x1, x2, z)
//	opts := ckt.DefaultOptions()
//	opts.Bandwidths, _ = bandwidth.DefaultCandidates(z)
//	result, _ := ckt.Kernel(smp, zQuery, opts)
//	// result.Estimates, result.Bandwidth
//
// Fit a conditional copula from the estimates:
//
//	models, _ := copula.FitConditional(copula.Clayton, result.Estimates)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - sample: Paired-observation data structures and CSV loading
//   - kernels: Kernel weight computation
//   - kendall: Sign matrices and pointwise/batched tau estimation
//   - bandwidth: Cross-validated bandwidth selection
//   - ckt: Top-level estimation entry point
//   - copula: Parametric copula families
//
// # References
//
//   - Derumigny, A., & Fermanian, J.-D. (2019). A classification point of view
//     about conditional Kendall's tau
//   - Veraverbeke, N., Omelka, M., & Gijbels, I. (2011). Estimation of a
//     conditional copula and association measures
package condcopulas
