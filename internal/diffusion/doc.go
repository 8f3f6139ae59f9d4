// Package diffusion integrates the 1-D heat equation on a periodic grid
// with explicit time stepping.
//
// [Init] builds the canonical Gaussian initial condition and [Integrate]
// marches it forward to a target time, mutating the field in place and
// returning the same slice.
//
// # Update order
//
// Integrate sweeps the field index by index and writes each update
// immediately, so later indices within a sweep see the already-updated
// values of earlier ones. This is a Gauss–Seidel-flavored variant of
// explicit Euler, kept for compatibility with existing output.
// [IntegrateBuffered] is the conventional alternative that freezes the
// field before each sweep; the two produce measurably different results
// and Integrate never substitutes one for the other.
//
// # Stability
//
// The explicit scheme requires dt <= dx²/2 ([MaxStableStep]). Integrate
// performs no check; callers choosing a larger step get unbounded growth.
package diffusion
