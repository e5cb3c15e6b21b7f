package bandwidth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/Rutgervdspek/CondCopulas/kendall"
	"github.com/Rutgervdspek/CondCopulas/kernels"
	"github.com/Rutgervdspek/CondCopulas/sample"
)

// LeaveOneOut selects a bandwidth by leave-pair-out cross-validation: it
// works at the level of the pairwise sign matrix rather than observation
// folds. For each scored pair (i, j) the conditional tau is estimated at
// the covariate midpoint of the pair from all other observations, and the
// candidate criterion accumulates the squared prediction error against
// the stored pair entry.
//
// This uses more of the data per evaluation than K-fold selection at a
// higher computational cost.
type LeaveOneOut struct {
	// NPairs is the number of pairs to sample (with replacement, from a
	// seeded source). When NPairs is zero or at least n(n-1)/2, all pairs
	// are enumerated instead.
	NPairs    int
	Seed      int64
	Kernel    kernels.Kernel
	Estimator kendall.EstimatorType
	Progress  kendall.Progress
}

// Select picks the candidate minimizing the leave-pair-out criterion.
// The pair set is drawn once and reused for every candidate, so a fixed
// seed yields an identical selection on every call.
func (s *LeaveOneOut) Select(signs *mat.SymDense, smp *sample.Sample, candidates []float64) (*Result, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	n := smp.Len()
	if n < 3 {
		return nil, sample.ErrEmpty
	}

	pairs := s.drawPairs(n)
	d := smp.Dim()

	criteria := make([]float64, len(candidates))
	total := len(candidates) * len(pairs)
	var done atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for ci, h := range candidates {
		ci, h := ci, h
		g.Go(func() error {
			crit := 0.0
			subset := make([]int, n-2)
			mid := make([]float64, d)
			for _, p := range pairs {
				excludePair(subset, n, p.i, p.j)
				for c := 0; c < d; c++ {
					mid[c] = (smp.Z.At(p.i, c) + smp.Z.At(p.j, c)) / 2
				}
				tau, err := kendall.PointwiseSubset(signs, smp.Z, subset, mid, h, s.Kernel, s.Estimator)
				if errors.Is(err, kernels.ErrDegenerateWeights) {
					criteria[ci] = math.Inf(1)
					return nil
				}
				if err != nil {
					return fmt.Errorf("bandwidth: candidate %g pair (%d,%d): %w", h, p.i, p.j, err)
				}
				diff := signs.At(p.i, p.j) - predictedPair(s.Estimator, tau)
				crit += diff * diff
				if s.Progress != nil {
					s.Progress(int(done.Add(1)), total)
				}
			}
			criteria[ci] = crit / float64(len(pairs))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := argmin(criteria)
	if best < 0 {
		return nil, ErrAllDegenerate
	}
	return &Result{Bandwidth: candidates[best], Criteria: criteria}, nil
}

type indexPair struct {
	i, j int
}

// drawPairs enumerates all pairs i<j, or samples NPairs of them with
// replacement from a seeded source when that is fewer.
func (s *LeaveOneOut) drawPairs(n int) []indexPair {
	all := n * (n - 1) / 2
	if s.NPairs <= 0 || s.NPairs >= all {
		pairs := make([]indexPair, 0, all)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, indexPair{i, j})
			}
		}
		return pairs
	}
	rng := rand.New(rand.NewSource(s.Seed))
	pairs := make([]indexPair, s.NPairs)
	for k := range pairs {
		i := rng.Intn(n)
		j := rng.Intn(n - 1)
		if j >= i {
			j++
		}
		if i > j {
			i, j = j, i
		}
		pairs[k] = indexPair{i, j}
	}
	return pairs
}

// excludePair fills dst with 0..n-1 minus the two excluded indices.
// Requires i < j and len(dst) == n-2.
func excludePair(dst []int, n, i, j int) {
	k := 0
	for v := 0; v < n; v++ {
		if v == i || v == j {
			continue
		}
		dst[k] = v
		k++
	}
}
