package kendall

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/Rutgervdspek/CondCopulas/kernels"
)

// Progress observes incremental progress of a batched computation. It is
// invoked once after each completed unit of work with the number of units
// done so far and the total. Implementations must be safe for concurrent
// use and must not influence the computed results.
type Progress func(done, total int)

// Evaluate estimates the conditional Kendall's tau at each query point
// (the rows of zQuery), sharing one sign matrix across all points.
//
// h holds either a single bandwidth, broadcast to every query point, or
// one bandwidth per query point. Query points are independent and are
// evaluated concurrently; the first failing point (for example a
// degenerate Epanechnikov window) aborts the whole batch and its error is
// returned, so degenerate points are never silently reported as NaN.
func Evaluate(signs *mat.SymDense, zObs *mat.Dense, h []float64, zQuery *mat.Dense, k kernels.Kernel, est EstimatorType, progress Progress) ([]float64, error) {
	if err := checkDims(signs, zObs, est); err != nil {
		return nil, err
	}
	_, d := zObs.Dims()
	m, dq := zQuery.Dims()
	if dq != d {
		return nil, ErrDimensionMismatch
	}
	if len(h) != 1 && len(h) != m {
		return nil, ErrBandwidthCount
	}

	estimates := make([]float64, m)
	var done atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for qi := 0; qi < m; qi++ {
		qi := qi
		g.Go(func() error {
			point := make([]float64, d)
			mat.Row(point, qi, zQuery)
			hq := h[0]
			if len(h) == m {
				hq = h[qi]
			}
			v, err := Pointwise(signs, zObs, point, hq, k, est)
			if err != nil {
				return fmt.Errorf("kendall: query point %d: %w", qi, err)
			}
			estimates[qi] = v
			if progress != nil {
				progress(int(done.Add(1)), m)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return estimates, nil
}
