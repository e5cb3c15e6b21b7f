package bandwidth

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Rutgervdspek/CondCopulas/copula"
	"github.com/Rutgervdspek/CondCopulas/kendall"
	"github.com/Rutgervdspek/CondCopulas/kernels"
	"github.com/Rutgervdspek/CondCopulas/sample"
)

func fixture(t *testing.T, n int, seed int64) (*sample.Sample, *mat.SymDense) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	x1, x2, z, err := copula.SimulateConditionalSample(n, copula.Gaussian,
		func(zv float64) float64 { return 0.1 + 0.6*zv }, rng)
	require.NoError(t, err)
	smp, err := sample.NewUnivariate(x1, x2, z)
	require.NoError(t, err)
	signs, err := kendall.ComputeSignMatrix(x1, x2, kendall.EstCorrected)
	require.NoError(t, err)
	return smp, signs
}

func TestKFoldSelect(t *testing.T) {
	smp, signs := fixture(t, 300, 21)
	sel := &KFold{Folds: 5, Seed: 1, Kernel: kernels.Gaussian, Estimator: kendall.EstCorrected}

	candidates := []float64{0.02, 0.1, 0.3, 0.8}
	res, err := sel.Select(signs, smp, candidates)
	require.NoError(t, err)
	require.Len(t, res.Criteria, len(candidates))
	assert.Contains(t, candidates, res.Bandwidth)

	best := math.Inf(1)
	for _, c := range res.Criteria {
		assert.False(t, math.IsNaN(c))
		if c < best {
			best = c
		}
	}
	for i, h := range candidates {
		if res.Criteria[i] == best {
			assert.Equal(t, h, res.Bandwidth, "first minimizer wins")
			break
		}
	}
}

func TestKFoldDeterminism(t *testing.T) {
	smp, signs := fixture(t, 200, 33)
	candidates := []float64{0.05, 0.1, 0.2, 0.4}

	sel := &KFold{Folds: 4, Seed: 99, Kernel: kernels.Epanechnikov, Estimator: kendall.EstCorrected}
	first, err := sel.Select(signs, smp, candidates)
	require.NoError(t, err)
	second, err := sel.Select(signs, smp, candidates)
	require.NoError(t, err)

	assert.Equal(t, first.Bandwidth, second.Bandwidth)
	assert.Equal(t, first.Criteria, second.Criteria)
}

func TestKFoldValidation(t *testing.T) {
	smp, signs := fixture(t, 100, 4)
	sel := &KFold{Folds: 5, Seed: 1, Kernel: kernels.Gaussian, Estimator: kendall.EstCorrected}

	_, err := sel.Select(signs, smp, nil)
	require.ErrorIs(t, err, ErrNoCandidates)

	bad := &KFold{Folds: 1, Seed: 1, Kernel: kernels.Gaussian, Estimator: kendall.EstCorrected}
	_, err = bad.Select(signs, smp, []float64{0.1})
	require.ErrorIs(t, err, ErrInvalidFolds)
}

func TestKFoldDegenerateCandidates(t *testing.T) {
	smp, signs := fixture(t, 120, 8)
	sel := &KFold{Folds: 4, Seed: 1, Kernel: kernels.Epanechnikov, Estimator: kendall.EstCorrected}

	// A bandwidth far too small catches no training neighbor and must be
	// marked +Inf, never selected over a workable candidate.
	res, err := sel.Select(signs, smp, []float64{1e-9, 0.3})
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Criteria[0], 1))
	assert.Equal(t, 0.3, res.Bandwidth)

	// All candidates degenerate: nothing to select.
	_, err = sel.Select(signs, smp, []float64{1e-9, 1e-8})
	require.ErrorIs(t, err, ErrAllDegenerate)
}

func TestPartitionCoversAllIndices(t *testing.T) {
	folds := partition(23, 5, 7)
	require.Len(t, folds, 5)

	seen := make(map[int]bool)
	for _, fold := range folds {
		for _, i := range fold {
			assert.False(t, seen[i], "index %d assigned twice", i)
			seen[i] = true
		}
	}
	assert.Len(t, seen, 23)

	// Balanced sizes: 23 = 5+5+5+4+4.
	assert.Len(t, folds[0], 5)
	assert.Len(t, folds[4], 4)
}
