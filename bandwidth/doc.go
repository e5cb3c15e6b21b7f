// Package bandwidth selects kernel bandwidths by cross-validation.
//
// Two interchangeable selection strategies implement the Selector
// interface, both scoring each candidate bandwidth by an out-of-sample
// prediction criterion over the precomputed sign matrix and picking the
// first candidate attaining the minimum.
//
// # K-Fold Selection
//
//	sel := &bandwidth.KFold{
//	    Folds:     5,
//	    Seed:      1,
//	    Kernel:    kernels.Gaussian,
//	    Estimator: kendall.EstCorrected,
//	}
//	result, err := sel.Select(signs, smp, candidates)
//	// result.Bandwidth, result.Criteria
//
// # Leave-Pair-Out Selection
//
//	sel := &bandwidth.LeaveOneOut{NPairs: 3000, Seed: 1,
//	    Kernel: kernels.Gaussian, Estimator: kendall.EstCorrected}
//
// Both strategies are reproducible for a fixed seed: the fold assignment
// (or sampled pair set) is drawn once from a seeded source and shared by
// every candidate.
//
// # Candidate Grids
//
// When no candidate grid is available, build one around Silverman's
// rule-of-thumb bandwidth:
//
//	grid, err := bandwidth.DefaultCandidates(z)
//
// # Degenerate Candidates
//
// A candidate whose kernel weights degenerate on some evaluation (for
// example, an Epanechnikov bandwidth too small to catch any neighbor)
// carries a +Inf criterion and is never selected; if every candidate
// degenerates, selection fails with ErrAllDegenerate.
package bandwidth
