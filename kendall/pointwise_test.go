package kendall

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/Rutgervdspek/CondCopulas/copula"
	"github.com/Rutgervdspek/CondCopulas/kernels"
)

func univariateMatrix(z []float64) *mat.Dense {
	m := mat.NewDense(len(z), 1, nil)
	for i, v := range z {
		m.Set(i, 0, v)
	}
	return m
}

func TestPointwiseFlatKernelMatchesUnconditionalTau(t *testing.T) {
	// With a huge bandwidth the Gaussian weights are flat, and the
	// corrected estimator reduces to the unconditional Kendall's tau
	// (1/n²)ΣS / (1 - 1/n).
	x1 := []float64{0.3, 1.2, 0.7, 2.5, 1.9, 0.1, 3.3, 2.2}
	x2 := []float64{0.5, 1.1, 1.4, 2.2, 1.2, 0.2, 2.9, 3.0}
	z := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}

	s, err := ComputeSignMatrix(x1, x2, EstCorrected)
	if err != nil {
		t.Fatalf("Failed to build sign matrix: %v", err)
	}

	got, err := Pointwise(s, univariateMatrix(z), []float64{0.45}, 1e9, kernels.Gaussian, EstCorrected)
	if err != nil {
		t.Fatalf("Pointwise failed: %v", err)
	}

	want := Tau(x1, x2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Flat-kernel estimate %f, unconditional tau %f", got, want)
	}
}

func TestPointwiseKnownConstantTau(t *testing.T) {
	// Data from a copula with conditional tau 0.5 for every Z: the
	// estimate at an interior point must come close.
	rng := rand.New(rand.NewSource(42))
	x1, x2, z, err := copula.SimulateConditionalSample(2000, copula.Clayton,
		func(float64) float64 { return 0.5 }, rng)
	if err != nil {
		t.Fatalf("Failed to simulate: %v", err)
	}

	s, err := ComputeSignMatrix(x1, x2, EstCorrected)
	if err != nil {
		t.Fatalf("Failed to build sign matrix: %v", err)
	}

	zObs := univariateMatrix(z)
	for _, point := range []float64{0.3, 0.5, 0.7} {
		got, err := Pointwise(s, zObs, []float64{point}, 0.1, kernels.Epanechnikov, EstCorrected)
		if err != nil {
			t.Fatalf("Pointwise at %f failed: %v", point, err)
		}
		t.Logf("tau-hat(%.1f) = %.4f", point, got)
		if math.Abs(got-0.5) > 0.1 {
			t.Errorf("Estimate at %f is %f, want within 0.1 of 0.5", point, got)
		}
	}
}

func TestPointwiseEstimatorVariants(t *testing.T) {
	// On tie-free strongly dependent data, all four variants land on the
	// same side; the biased ones may leave [-1, 1].
	rng := rand.New(rand.NewSource(7))
	x1, x2, z, err := copula.SimulateConditionalSample(400, copula.Gaussian,
		func(float64) float64 { return 0.6 }, rng)
	if err != nil {
		t.Fatalf("Failed to simulate: %v", err)
	}
	zObs := univariateMatrix(z)

	for _, est := range []EstimatorType{EstConcordance, EstSign, EstDiscordance, EstCorrected} {
		s, err := ComputeSignMatrix(x1, x2, est)
		if err != nil {
			t.Fatalf("Failed to build sign matrix: %v", err)
		}
		got, err := Pointwise(s, zObs, []float64{0.5}, 0.2, kernels.Gaussian, est)
		if err != nil {
			t.Fatalf("Pointwise (%v) failed: %v", est, err)
		}
		t.Logf("%v: %.4f", est, got)
		if got < 0.2 {
			t.Errorf("Estimator %v gave %f, expected positive dependence", est, got)
		}
	}
}

func TestPointwiseBiasOrdering(t *testing.T) {
	// The concordance variant underestimates and the discordance variant
	// overestimates relative to the corrected one, with the plain sign
	// variant shrunk toward zero.
	rng := rand.New(rand.NewSource(7))
	x1, x2, z, err := copula.SimulateConditionalSample(400, copula.Gaussian,
		func(float64) float64 { return 0.6 }, rng)
	if err != nil {
		t.Fatalf("Failed to simulate: %v", err)
	}
	zObs := univariateMatrix(z)

	est := make(map[EstimatorType]float64)
	for _, ty := range []EstimatorType{EstConcordance, EstSign, EstDiscordance, EstCorrected} {
		s, err := ComputeSignMatrix(x1, x2, ty)
		if err != nil {
			t.Fatalf("Failed to build sign matrix: %v", err)
		}
		est[ty], err = Pointwise(s, zObs, []float64{0.5}, 0.2, kernels.Gaussian, ty)
		if err != nil {
			t.Fatalf("Pointwise (%v) failed: %v", ty, err)
		}
	}

	if !(est[EstConcordance] < est[EstCorrected] && est[EstCorrected] < est[EstDiscordance]) {
		t.Errorf("Expected concordance < corrected < discordance, got %v", est)
	}
	if !(est[EstSign] < est[EstCorrected]) {
		t.Errorf("Expected sign variant %f below corrected %f", est[EstSign], est[EstCorrected])
	}
}

func TestPointwiseDegenerateWindow(t *testing.T) {
	x1 := []float64{1, 2, 3}
	x2 := []float64{1, 2, 3}
	z := []float64{0.1, 0.2, 0.3}

	s, err := ComputeSignMatrix(x1, x2, EstCorrected)
	if err != nil {
		t.Fatalf("Failed to build sign matrix: %v", err)
	}

	_, err = Pointwise(s, univariateMatrix(z), []float64{5}, 0.1, kernels.Epanechnikov, EstCorrected)
	if !errors.Is(err, kernels.ErrDegenerateWeights) {
		t.Errorf("Expected ErrDegenerateWeights, got %v", err)
	}
}

func TestPointwiseSingleEffectiveObservation(t *testing.T) {
	// All weight mass on one observation: the corrected denominator
	// 1 - Σw² vanishes and must surface as degenerate weights.
	x1 := []float64{1, 2, 3}
	x2 := []float64{1, 2, 3}
	z := []float64{0.0, 10.0, 20.0}

	s, err := ComputeSignMatrix(x1, x2, EstCorrected)
	if err != nil {
		t.Fatalf("Failed to build sign matrix: %v", err)
	}

	_, err = Pointwise(s, univariateMatrix(z), []float64{0}, 0.5, kernels.Epanechnikov, EstCorrected)
	if !errors.Is(err, kernels.ErrDegenerateWeights) {
		t.Errorf("Expected ErrDegenerateWeights, got %v", err)
	}
}

func TestPointwiseSubsetMatchesSubsample(t *testing.T) {
	// Estimating on a subset through the full sign matrix must equal
	// estimating on the subsample directly.
	rng := rand.New(rand.NewSource(3))
	x1, x2, z, err := copula.SimulateConditionalSample(60, copula.Frank,
		func(zv float64) float64 { return 0.4 * zv }, rng)
	if err != nil {
		t.Fatalf("Failed to simulate: %v", err)
	}

	subset := []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30}
	sx1 := make([]float64, len(subset))
	sx2 := make([]float64, len(subset))
	sz := make([]float64, len(subset))
	for a, i := range subset {
		sx1[a], sx2[a], sz[a] = x1[i], x2[i], z[i]
	}

	full, err := ComputeSignMatrix(x1, x2, EstCorrected)
	if err != nil {
		t.Fatalf("Failed to build full sign matrix: %v", err)
	}
	small, err := ComputeSignMatrix(sx1, sx2, EstCorrected)
	if err != nil {
		t.Fatalf("Failed to build subsample sign matrix: %v", err)
	}

	got, err := PointwiseSubset(full, univariateMatrix(z), subset, []float64{0.5}, 0.3, kernels.Gaussian, EstCorrected)
	if err != nil {
		t.Fatalf("PointwiseSubset failed: %v", err)
	}
	want, err := Pointwise(small, univariateMatrix(sz), []float64{0.5}, 0.3, kernels.Gaussian, EstCorrected)
	if err != nil {
		t.Fatalf("Pointwise on subsample failed: %v", err)
	}

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Subset estimate %f differs from subsample estimate %f", got, want)
	}
}

func TestPointwiseMultivariate(t *testing.T) {
	// Constant tau 0.5 with a synthetic second covariate: both kernels
	// must recover it in the bivariate covariate space.
	rng := rand.New(rand.NewSource(9))
	x1, x2, z1, err := copula.SimulateConditionalSample(1500, copula.Clayton,
		func(float64) float64 { return 0.5 }, rng)
	if err != nil {
		t.Fatalf("Failed to simulate: %v", err)
	}
	zObs := mat.NewDense(len(z1), 2, nil)
	for i := range z1 {
		zObs.Set(i, 0, z1[i])
		zObs.Set(i, 1, rng.Float64())
	}

	s, err := ComputeSignMatrix(x1, x2, EstCorrected)
	if err != nil {
		t.Fatalf("Failed to build sign matrix: %v", err)
	}

	for _, k := range []kernels.Kernel{kernels.Gaussian, kernels.Epanechnikov} {
		got, err := Pointwise(s, zObs, []float64{0.5, 0.5}, 0.25, k, EstCorrected)
		if err != nil {
			t.Fatalf("Pointwise (%v) failed: %v", k, err)
		}
		t.Logf("%v: %.4f", k, got)
		if math.Abs(got-0.5) > 0.15 {
			t.Errorf("Multivariate %v estimate %f, want within 0.15 of 0.5", k, got)
		}
	}
}
