// Package grid provides the spatial discretization primitives for 1-D
// periodic scalar fields:
//
//   - [Field]: sampled scalar values on a unit-spaced periodic grid
//   - [Wrap]: periodic index normalization into [0, l)
//   - [Laplacian]: central-difference second-derivative estimate
//
// The grid spacing is fixed at dx = 1, so the Laplacian reduces to the
// three-point stencil f[i+1] + f[i-1] - 2*f[i] with wrapped neighbors.
//
// Wrap only normalizes indices at most one step outside the domain. Callers
// only ever request immediate neighbors, so the single-correction formula
// is sufficient; anything further out is rejected as a contract violation.
package grid
