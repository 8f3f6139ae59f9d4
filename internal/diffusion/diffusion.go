package diffusion

import (
	"errors"
	"math"

	"github.com/san-kum/diffsim/internal/grid"
)

// ErrInvalidStep indicates a non-positive time step, which would either
// never terminate or never advance the clock.
var ErrInvalidStep = errors.New("diffusion: time step must be positive")

// MaxStableStep is the largest explicit-Euler step for which the scheme is
// stable (dx²/2 with dx = 1). Integrate does not enforce it.
const MaxStableStep = grid.Dx * grid.Dx / 2

// Init returns a Gaussian pulse of length l centered at the domain
// midpoint, with width scaling with l. Each entry is exp(-(i-l/2)²/l).
func Init(l int) (grid.Field, error) {
	if l <= 0 {
		return nil, grid.ErrInvalidDomain
	}

	f := make(grid.Field, l)
	c := float64(l) / 2
	for i := range f {
		d := float64(i) - c
		f[i] = math.Exp(-d * d / float64(l))
	}
	return f, nil
}

// Integrate advances f from time 0 until the clock reaches finalTime,
// one sweep per step of dt. The field is mutated in place and the same
// slice is returned.
//
// Each sweep updates entries in index order, writing immediately: later
// indices see earlier in-sweep updates. The clock is a plain float
// accumulator, so runs whose finalTime is an exact multiple of dt may
// take one extra sweep.
func Integrate(f grid.Field, dt, finalTime float64) (grid.Field, error) {
	if len(f) == 0 {
		return f, grid.ErrInvalidDomain
	}
	if dt <= 0 {
		return f, ErrInvalidStep
	}

	for t := 0.0; t < finalTime; t += dt {
		if err := Sweep(f, dt); err != nil {
			return f, err
		}
	}
	return f, nil
}

// IntegrateBuffered is the Jacobi variant of Integrate: every sweep reads
// a snapshot of the field taken before the sweep, so updates within one
// sweep never see each other. Kept as a separate entry point; it does not
// reproduce Integrate's output.
func IntegrateBuffered(f grid.Field, dt, finalTime float64) (grid.Field, error) {
	if len(f) == 0 {
		return f, grid.ErrInvalidDomain
	}
	if dt <= 0 {
		return f, ErrInvalidStep
	}

	prev := make(grid.Field, len(f))
	for t := 0.0; t < finalTime; t += dt {
		copy(prev, f)
		if err := sweepFrom(prev, f, dt); err != nil {
			return f, err
		}
	}
	return f, nil
}

// Sweep applies one in-place explicit step of size dt to every entry of f
// in index order. Exported so callers that need per-step granularity (the
// live view) share the exact update order with Integrate.
func Sweep(f grid.Field, dt float64) error {
	l := len(f)
	for i := 0; i < l; i++ {
		lap, err := grid.Laplacian(f, i, l)
		if err != nil {
			return err
		}
		f[i] = f[i] + dt*lap
	}
	return nil
}

// SweepBuffered applies one buffered (Jacobi) step of size dt.
func SweepBuffered(f grid.Field, dt float64) error {
	prev := f.Clone()
	return sweepFrom(prev, f, dt)
}

func sweepFrom(prev, dst grid.Field, dt float64) error {
	l := len(prev)
	for i := 0; i < l; i++ {
		lap, err := grid.Laplacian(prev, i, l)
		if err != nil {
			return err
		}
		dst[i] = prev[i] + dt*lap
	}
	return nil
}
