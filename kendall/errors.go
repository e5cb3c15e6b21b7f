package kendall

import "errors"

var (
	// ErrUnknownEstimator is returned for an EstimatorType outside the four
	// supported variants.
	ErrUnknownEstimator = errors.New("kendall: unknown estimator type")

	// ErrLengthMismatch is returned when X1 and X2 differ in length.
	ErrLengthMismatch = errors.New("kendall: X1 and X2 must have the same length")

	// ErrEmptySample is returned when no observations are supplied.
	ErrEmptySample = errors.New("kendall: empty sample")

	// ErrDimensionMismatch is returned when the sign matrix, observed
	// covariates and query points disagree on their dimensions.
	ErrDimensionMismatch = errors.New("kendall: dimension mismatch")

	// ErrBandwidthCount is returned when the number of bandwidths is
	// neither one nor the number of query points.
	ErrBandwidthCount = errors.New("kendall: bandwidth count must be 1 or the number of query points")
)
