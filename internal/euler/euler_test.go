package euler

import (
	"errors"
	"math"
	"testing"
)

func TestIntegrateAccuracy(t *testing.T) {
	r, err := Integrate(0.01)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	if len(r.F) != 632 {
		t.Errorf("expected 632 samples for h=0.01, got %d", len(r.F))
	}

	// Explicit Euler is first order: error stays around h over this
	// interval.
	if maxErr := r.MaxError(); maxErr > 2*0.01 {
		t.Errorf("max error %g too large for h=0.01", maxErr)
	}
}

func TestIntegrateFirstOrderConvergence(t *testing.T) {
	coarse, err := Integrate(0.02)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	fine, err := Integrate(0.002)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}

	ratio := coarse.MaxError() / fine.MaxError()
	// Halving h ten times over should shrink the error ~10x.
	if ratio < 5 || ratio > 20 {
		t.Errorf("error ratio %g not consistent with first-order convergence", ratio)
	}
}

func TestIntegrateBoundaryCondition(t *testing.T) {
	r, err := Integrate(0.1)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	if r.F[0] != 0 {
		t.Errorf("f[0] = %g, want sin(0) = 0", r.F[0])
	}
	if r.X[0] != 0 {
		t.Errorf("x[0] = %g, want 0", r.X[0])
	}
}

func TestIntegrateInvalidStep(t *testing.T) {
	if _, err := Integrate(0); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("expected ErrInvalidStep for h=0, got %v", err)
	}
	if _, err := Integrate(-0.1); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("expected ErrInvalidStep for h<0, got %v", err)
	}
	if _, err := Integrate(10); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("expected ErrInvalidStep for h larger than the domain, got %v", err)
	}
}

func TestIntegrateGridSpacing(t *testing.T) {
	h := 0.1
	r, err := Integrate(h)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	for i := 1; i < len(r.X); i++ {
		if math.Abs(r.X[i]-r.X[i-1]-h) > 1e-12 {
			t.Fatalf("uneven spacing at i=%d: %g", i, r.X[i]-r.X[i-1])
		}
	}
}
