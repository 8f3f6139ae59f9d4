// Package euler integrates a scalar ODE with the explicit Euler method,
// recovering sin(x) from samples of its derivative cos(x). It is
// independent of the diffusion core and shares no code with it.
package euler

import (
	"errors"
	"math"
)

// ErrInvalidStep indicates a sample spacing that produces no usable grid.
var ErrInvalidStep = errors.New("euler: sample spacing must be positive and smaller than the domain")

// domainLength is the integration interval.
const domainLength = 2 * 3.16

// Result holds the sampled curves from one explicit-Euler pass.
type Result struct {
	X   []float64 // sample coordinates
	F   []float64 // Euler estimate of the antiderivative of cos
	G   []float64 // integrand samples cos(x)
	Ref []float64 // exact sin(x), for accuracy comparison
}

// Integrate samples cos on a grid with spacing h and accumulates it into
// the approximate sin curve via f[i+1] = f[i] + h*g[i], starting from
// f[0] = sin(0). Global error is first order in h.
func Integrate(h float64) (*Result, error) {
	if h <= 0 {
		return nil, ErrInvalidStep
	}

	nx := int(domainLength / h)
	if nx < 2 {
		return nil, ErrInvalidStep
	}

	r := &Result{
		X:   make([]float64, nx),
		F:   make([]float64, nx),
		G:   make([]float64, nx),
		Ref: make([]float64, nx),
	}

	xn := 0.0
	for i := 0; i < nx; i++ {
		r.G[i] = math.Cos(xn)
		r.Ref[i] = math.Sin(xn)
		r.X[i] = xn
		xn += h
	}

	r.F[0] = math.Sin(0)
	for i := 0; i < nx-1; i++ {
		r.F[i+1] = r.F[i] + h*r.G[i]
	}

	return r, nil
}

// MaxError returns the largest pointwise deviation of the Euler curve
// from the exact reference.
func (r *Result) MaxError() float64 {
	max := 0.0
	for i := range r.F {
		if d := math.Abs(r.F[i] - r.Ref[i]); d > max {
			max = d
		}
	}
	return max
}
