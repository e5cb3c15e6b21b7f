// Package copula provides parametric bivariate copula families fitted from Kendall's tau.
package copula

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Family identifies a parametric copula family.
type Family int

const (
	Clayton Family = iota
	Gumbel
	Frank
	Gaussian
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Clayton:
		return "Clayton"
	case Gumbel:
		return "Gumbel"
	case Frank:
		return "Frank"
	case Gaussian:
		return "Gaussian"
	}
	return "unknown"
}

// Valid reports whether f is a supported family.
func (f Family) Valid() bool {
	return f >= Clayton && f <= Gaussian
}

var (
	// ErrUnknownFamily is returned for a Family outside the supported set.
	ErrUnknownFamily = errors.New("copula: unknown family")

	// ErrTauOutOfRange is returned when a Kendall's tau value cannot be
	// attained by the requested family.
	ErrTauOutOfRange = errors.New("copula: tau outside the range attainable by this family")

	// ErrInvalidParameter is returned for a parameter outside the
	// family's domain.
	ErrInvalidParameter = errors.New("copula: parameter outside the family domain")
)

// frankTauLimit bounds the |tau| invertible for the Frank family before
// the parameter search overflows; taus this extreme have no practical
// Frank representation.
const frankTauLimit = 0.9999

// TauToParameter converts a Kendall's tau value to the copula parameter
// of the family: theta = 2tau/(1-tau) for Clayton, theta = 1/(1-tau) for
// Gumbel, rho = sin(pi*tau/2) for Gaussian, and the numerical inverse of
// the Debye relation for Frank.
func TauToParameter(f Family, tau float64) (float64, error) {
	switch f {
	case Clayton:
		if tau < 0 || tau >= 1 {
			return 0, ErrTauOutOfRange
		}
		return 2 * tau / (1 - tau), nil
	case Gumbel:
		if tau < 0 || tau >= 1 {
			return 0, ErrTauOutOfRange
		}
		return 1 / (1 - tau), nil
	case Frank:
		if math.Abs(tau) >= frankTauLimit {
			return 0, ErrTauOutOfRange
		}
		return frankTheta(tau)
	case Gaussian:
		if tau < -1 || tau > 1 {
			return 0, ErrTauOutOfRange
		}
		return math.Sin(math.Pi * tau / 2), nil
	}
	return 0, ErrUnknownFamily
}

// ParameterToTau converts a copula parameter back to Kendall's tau.
func ParameterToTau(f Family, theta float64) (float64, error) {
	switch f {
	case Clayton:
		if theta < 0 {
			return 0, ErrInvalidParameter
		}
		return theta / (theta + 2), nil
	case Gumbel:
		if theta < 1 {
			return 0, ErrInvalidParameter
		}
		return 1 - 1/theta, nil
	case Frank:
		return frankTau(theta), nil
	case Gaussian:
		if theta < -1 || theta > 1 {
			return 0, ErrInvalidParameter
		}
		return 2 / math.Pi * math.Asin(theta), nil
	}
	return 0, ErrUnknownFamily
}

// debye1 computes the first Debye function (1/x)∫₀ˣ t/(eᵗ-1) dt for x > 0.
func debye1(x float64) float64 {
	integral := quad.Fixed(func(t float64) float64 {
		return t / math.Expm1(t)
	}, 0, x, 60, nil, 0)
	return integral / x
}

// frankTau evaluates tau(theta) = 1 - 4/theta·(1 - D1(theta)), extended
// by oddness to negative theta and by continuity to theta = 0.
func frankTau(theta float64) float64 {
	if theta == 0 {
		return 0
	}
	a := math.Abs(theta)
	tau := 1 - 4/a*(1-debye1(a))
	return math.Copysign(tau, theta)
}

// frankTheta inverts frankTau by bracketed bisection. tau(theta) is odd
// and strictly increasing, so the positive branch suffices.
func frankTheta(tau float64) (float64, error) {
	if tau == 0 {
		return 0, nil
	}
	target := math.Abs(tau)

	lo, hi := 1e-12, 1.0
	for frankTau(hi) < target {
		hi *= 2
		if hi > 1e8 {
			return 0, ErrTauOutOfRange
		}
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if frankTau(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return math.Copysign((lo+hi)/2, tau), nil
}
