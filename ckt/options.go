// Package ckt is the top-level entry point for conditional Kendall's tau estimation.
package ckt

import (
	"errors"

	"github.com/Rutgervdspek/CondCopulas/bandwidth"
	"github.com/Rutgervdspek/CondCopulas/kendall"
	"github.com/Rutgervdspek/CondCopulas/kernels"
)

// CVMethod selects the cross-validation strategy used when several
// candidate bandwidths are supplied.
type CVMethod int

const (
	// CVKFolds partitions observations into folds (see bandwidth.KFold).
	CVKFolds CVMethod = iota
	// CVLeaveOneOut scores sampled pairs against the rest of the sample
	// (see bandwidth.LeaveOneOut).
	CVLeaveOneOut
)

// String returns the cross-validation method name.
func (m CVMethod) String() string {
	switch m {
	case CVKFolds:
		return "kfolds"
	case CVLeaveOneOut:
		return "leave-one-out"
	}
	return "unknown"
}

// ErrUnknownCV is returned for a CVMethod outside the supported strategies.
var ErrUnknownCV = errors.New("ckt: unknown cross-validation method")

// ErrNotFitted is returned when Predict is called before Fit.
var ErrNotFitted = errors.New("ckt: estimator is not fitted")

// Options holds configuration for kernel-based estimation.
type Options struct {
	// Bandwidths is the candidate grid. A single value is used directly;
	// several values trigger cross-validation.
	Bandwidths []float64
	// Kernel is the smoothing kernel shape (default: Gaussian).
	Kernel kernels.Kernel
	// Estimator is the combination formula (default: EstCorrected).
	Estimator kendall.EstimatorType
	// CV is the bandwidth selection strategy (default: CVKFolds).
	CV CVMethod
	// Kfolds is the fold count for CVKFolds (default: 5).
	Kfolds int
	// NPairs is the sampled pair count for CVLeaveOneOut (default: 3000).
	NPairs int
	// Seed drives fold assignment and pair sampling (default: 1).
	Seed int64
	// Progress optionally observes batched evaluation and
	// cross-validation progress. It has no effect on results.
	Progress kendall.Progress
}

// DefaultOptions returns the default estimation configuration.
func DefaultOptions() *Options {
	return &Options{
		Kernel:    kernels.Gaussian,
		Estimator: kendall.EstCorrected,
		CV:        CVKFolds,
		Kfolds:    5,
		NPairs:    3000,
		Seed:      1,
	}
}

// selector builds the configured bandwidth selection strategy.
func (o *Options) selector() (bandwidth.Selector, error) {
	switch o.CV {
	case CVKFolds:
		return &bandwidth.KFold{
			Folds:     o.Kfolds,
			Seed:      o.Seed,
			Kernel:    o.Kernel,
			Estimator: o.Estimator,
			Progress:  o.Progress,
		}, nil
	case CVLeaveOneOut:
		return &bandwidth.LeaveOneOut{
			NPairs:    o.NPairs,
			Seed:      o.Seed,
			Kernel:    o.Kernel,
			Estimator: o.Estimator,
			Progress:  o.Progress,
		}, nil
	}
	return nil, ErrUnknownCV
}
