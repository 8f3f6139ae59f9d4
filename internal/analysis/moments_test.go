package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/diffsim/internal/diffusion"
	"github.com/san-kum/diffsim/internal/grid"
)

func TestComputeGaussian(t *testing.T) {
	f, err := diffusion.Init(50)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	m := Compute(f)

	if math.Abs(m.Centroid-25) > 0.01 {
		t.Errorf("centroid = %g, want ~25", m.Centroid)
	}
	// exp(-d²/l) has variance l/2.
	if math.Abs(m.Variance-25) > 0.1 {
		t.Errorf("variance = %g, want ~25", m.Variance)
	}
	if m.Mass <= 0 {
		t.Errorf("mass = %g, want positive", m.Mass)
	}
}

func TestComputeZeroField(t *testing.T) {
	m := Compute(grid.Field{0, 0, 0})
	if m.Mass != 0 || m.Centroid != 0 || m.Variance != 0 {
		t.Errorf("zero field moments should be zero, got %+v", m)
	}
}

func TestSpreadingUnderDiffusion(t *testing.T) {
	f, err := diffusion.Init(50)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	before := Compute(f)

	if _, err := diffusion.Integrate(f, 0.1, 1.0); err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	after := Compute(f)

	growth := Spreading(before, after)
	if growth <= 0 {
		t.Fatalf("variance should grow under diffusion, got %g", growth)
	}
	// 11 sweeps of dt=0.1 → effective time 1.1; growth sits near 2t with
	// a scheme-dependent offset.
	if growth < 1.5 || growth > 3.5 {
		t.Errorf("variance growth %g far from 2t expectation", growth)
	}
}
