// Package copula provides parametric bivariate copula families fitted from Kendall's tau.
//
// Four one-parameter families are supported: Clayton, Gumbel, Frank and
// Gaussian. Each family maps between its parameter and Kendall's tau, so
// a copula can be fitted directly from an estimated (conditional) tau.
//
// # Fitting
//
//	m, err := copula.Fit(copula.Clayton, 0.5)
//	// m.Parameter == 2.0
//
// Fit one copula per query point from a vector of estimated conditional
// taus:
//
//	models, err := copula.FitConditional(copula.Frank, result.Estimates)
//
// # Simulation
//
// Draw pairs with uniform margins from a fitted copula:
//
//	rng := rand.New(rand.NewSource(1))
//	u1, u2, err := m.Simulate(1000, rng)
//
// Generate a full conditional sample for a simulation study, with the
// conditional tau varying with the covariate:
//
//	x1, x2, z, err := copula.SimulateConditionalSample(2000, copula.Clayton,
//	    func(z float64) float64 { return 0.3 + 0.4*z }, rng)
package copula
