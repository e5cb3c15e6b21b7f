package kernels

import "errors"

var (
	// ErrUnknownKernel is returned when a kernel name or value is not one
	// of the supported kernels.
	ErrUnknownKernel = errors.New("kernels: unknown kernel")

	// ErrDegenerateWeights is returned when the kernel weight mass at a
	// query point is zero: no observation falls inside an Epanechnikov
	// window, or all Gaussian weights underflow. Callers decide whether to
	// skip the point, widen the bandwidth, or abort.
	ErrDegenerateWeights = errors.New("kernels: zero weight mass at query point")

	// ErrDimensionMismatch is returned when a query point and the observed
	// covariates disagree on the number of coordinates.
	ErrDimensionMismatch = errors.New("kernels: query point dimension does not match covariates")

	// ErrInvalidBandwidth is returned for a non-positive bandwidth.
	ErrInvalidBandwidth = errors.New("kernels: bandwidth must be positive")
)
