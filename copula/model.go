package copula

import "math"

// Model represents a fitted bivariate copula.
type Model struct {
	Family    Family
	Parameter float64
	// Tau is the Kendall's tau the model was fitted from.
	Tau float64
}

// Fit fits a copula of the given family to a Kendall's tau value.
func Fit(f Family, tau float64) (*Model, error) {
	if !f.Valid() {
		return nil, ErrUnknownFamily
	}
	theta, err := TauToParameter(f, tau)
	if err != nil {
		return nil, err
	}
	return &Model{Family: f, Parameter: theta, Tau: tau}, nil
}

// FitConditional fits one copula per estimated conditional tau, producing
// a conditional copula model over the query points the taus were
// estimated at. Estimates outside the family's attainable range are
// clamped to it before fitting, since biased estimator variants may
// transiently leave [-1, 1] near boundaries.
func FitConditional(f Family, taus []float64) ([]*Model, error) {
	if !f.Valid() {
		return nil, ErrUnknownFamily
	}
	models := make([]*Model, len(taus))
	for i, tau := range taus {
		m, err := Fit(f, clampTau(f, tau))
		if err != nil {
			return nil, err
		}
		models[i] = m
	}
	return models, nil
}

// clampTau pulls a tau estimate into the family's attainable range.
func clampTau(f Family, tau float64) float64 {
	var lo, hi float64
	switch f {
	case Clayton, Gumbel:
		lo, hi = 0, 1-1e-6
	case Frank:
		lo, hi = -(frankTauLimit - 1e-6), frankTauLimit - 1e-6
	default:
		lo, hi = -1, 1
	}
	return math.Min(hi, math.Max(lo, tau))
}
