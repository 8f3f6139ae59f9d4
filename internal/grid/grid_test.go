package grid

import (
	"errors"
	"math"
	"testing"
)

func TestWrapBoundaries(t *testing.T) {
	tests := []struct {
		x, l, want int
	}{
		{5, 5, 0},
		{-1, 5, 4},
		{0, 5, 0},
		{4, 5, 4},
		{3, 3, 0},
		{-1, 1, 0},
	}

	for _, tt := range tests {
		got, err := Wrap(tt.x, tt.l)
		if err != nil {
			t.Fatalf("Wrap(%d, %d) failed: %v", tt.x, tt.l, err)
		}
		if got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.x, tt.l, got, tt.want)
		}
	}
}

func TestWrapIdempotent(t *testing.T) {
	l := 7
	for x := -1; x <= l; x++ {
		once, err := Wrap(x, l)
		if err != nil {
			t.Fatalf("Wrap(%d, %d) failed: %v", x, l, err)
		}
		twice, err := Wrap(once, l)
		if err != nil {
			t.Fatalf("Wrap(%d, %d) failed: %v", once, l, err)
		}
		if once != twice {
			t.Errorf("Wrap not idempotent at x=%d: %d then %d", x, once, twice)
		}
	}
}

func TestWrapIdentityInRange(t *testing.T) {
	l := 5
	for k := 0; k < l; k++ {
		got, err := Wrap(k, l)
		if err != nil {
			t.Fatalf("Wrap(%d, %d) failed: %v", k, l, err)
		}
		if got != k {
			t.Errorf("Wrap(%d, %d) = %d, want identity", k, l, got)
		}
	}
}

func TestWrapInvalidDomain(t *testing.T) {
	if _, err := Wrap(0, 0); !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("expected ErrInvalidDomain for l=0, got %v", err)
	}
	if _, err := Wrap(0, -3); !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("expected ErrInvalidDomain for l=-3, got %v", err)
	}
}

func TestWrapOutOfContract(t *testing.T) {
	// The single-correction formula only covers [-1, l]; indices further
	// out are a precondition violation, not a wraparound case.
	if _, err := Wrap(-2, 5); !errors.Is(err, ErrIndexOutOfContract) {
		t.Errorf("expected ErrIndexOutOfContract for x=-2, got %v", err)
	}
	if _, err := Wrap(6, 5); !errors.Is(err, ErrIndexOutOfContract) {
		t.Errorf("expected ErrIndexOutOfContract for x=6, got %v", err)
	}
}

func TestLaplacianConstantField(t *testing.T) {
	f := Field{3.5, 3.5, 3.5, 3.5, 3.5, 3.5}
	for i := range f {
		lap, err := Laplacian(f, i, len(f))
		if err != nil {
			t.Fatalf("Laplacian failed at i=%d: %v", i, err)
		}
		if math.Abs(lap) > 1e-15 {
			t.Errorf("constant field laplacian at i=%d: got %g, want 0", i, lap)
		}
	}
}

func TestLaplacianConcrete(t *testing.T) {
	f := Field{1, 2, 1, 2, 1}

	lap, err := Laplacian(f, 0, 5)
	if err != nil {
		t.Fatalf("Laplacian failed: %v", err)
	}
	// neighbors wrap: f[1] + f[4] - 2*f[0] = 2 + 1 - 2 = 1
	if lap != 1.0 {
		t.Errorf("Laplacian(f, 0, 5) = %g, want 1.0", lap)
	}
}

func TestLaplacianPureRead(t *testing.T) {
	f := Field{1, 2, 1, 2, 1}
	orig := f.Clone()

	for i := range f {
		if _, err := Laplacian(f, i, len(f)); err != nil {
			t.Fatalf("Laplacian failed at i=%d: %v", i, err)
		}
	}

	for i := range f {
		if f[i] != orig[i] {
			t.Errorf("Laplacian mutated f[%d]: %g -> %g", i, orig[i], f[i])
		}
	}
}

func TestLaplacianInvalid(t *testing.T) {
	f := Field{1, 2, 3}

	if _, err := Laplacian(f, 0, 0); !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("expected ErrInvalidDomain for l=0, got %v", err)
	}
	if _, err := Laplacian(f, 0, 5); !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("expected ErrInvalidDomain for l != len(f), got %v", err)
	}
	if _, err := Laplacian(f, 3, 3); !errors.Is(err, ErrIndexOutOfContract) {
		t.Errorf("expected ErrIndexOutOfContract for i=l, got %v", err)
	}
	if _, err := Laplacian(f, -1, 3); !errors.Is(err, ErrIndexOutOfContract) {
		t.Errorf("expected ErrIndexOutOfContract for i=-1, got %v", err)
	}
}
