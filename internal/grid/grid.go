package grid

// Dx is the grid spacing. The discretization is derived with dx fixed at 1;
// it is named here so the stencil reads as the usual f''/dx² estimate.
const Dx = 1.0

// Wrap maps index x onto the periodic domain [0, l). It handles indices at
// most one step outside the domain (x in [-1, l]), which covers every
// neighbor lookup the stencil performs; anything further out returns
// ErrIndexOutOfContract.
func Wrap(x, l int) (int, error) {
	if l <= 0 {
		return 0, ErrInvalidDomain
	}
	if x < -1 || x > l {
		return 0, ErrIndexOutOfContract
	}
	return wrap(x, l), nil
}

// wrap applies the single periodic correction. Inputs are assumed to
// satisfy the Wrap contract.
func wrap(x, l int) int {
	if x >= l {
		x -= l
	}
	if x < 0 {
		x += l
	}
	return x
}

// Laplacian returns the central-difference second-derivative estimate of f
// at index i, with periodic neighbor wraparound. It is a pure read of f.
func Laplacian(f Field, i, l int) (float64, error) {
	if l <= 0 || l != len(f) {
		return 0, ErrInvalidDomain
	}
	if i < 0 || i >= l {
		return 0, ErrIndexOutOfContract
	}
	hi := wrap(i+1, l)
	lo := wrap(i-1, l)
	return (f[hi] + f[lo] - 2*f[i]) / (Dx * Dx), nil
}
