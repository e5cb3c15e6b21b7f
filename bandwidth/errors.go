package bandwidth

import "errors"

var (
	// ErrNoCandidates is returned when selection is attempted over an
	// empty candidate grid.
	ErrNoCandidates = errors.New("bandwidth: empty candidate set")

	// ErrInvalidFolds is returned when the fold count leaves a fold with
	// fewer than two observations, so no held-out pair exists to score.
	ErrInvalidFolds = errors.New("bandwidth: fold count must be at least 2 and leave at least 2 observations per fold")

	// ErrAllDegenerate is returned when every candidate bandwidth produced
	// degenerate kernel weights on every evaluation, leaving nothing to
	// select from.
	ErrAllDegenerate = errors.New("bandwidth: all candidate bandwidths degenerate")
)
