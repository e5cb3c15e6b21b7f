// Package kernels computes smoothing kernel weights for covariate points.
//
// Two kernel shapes are supported: the Gaussian kernel exp(-u²) and the
// compact-support Epanechnikov kernel 0.75·(1-u²) on |u| ≤ 1.
//
// # Univariate Weights
//
// Compute normalized weights of a query point against observed values:
//
//	w, err := kernels.Weights(z, point, h, kernels.Gaussian, true)
//
// # Multivariate Weights
//
// For a d-dimensional covariate matrix the two shapes are applied
// coordinate-wise and combined as a product kernel. The Epanechnikov
// kernel first filters the rows inside the bandwidth hypercube, and the
// surviving row indices are returned together with their weights:
//
//	indices, w, err := kernels.ProductWeights(z, nil, point, h, kernels.Epanechnikov)
//
// # Degenerate Weights
//
// A query point with zero total weight mass (for example, an isolated
// Epanechnikov query point with no observation within the window) yields
// ErrDegenerateWeights instead of a silent NaN.
package kernels
