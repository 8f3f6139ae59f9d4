package grid

import (
	"math"
	"testing"
)

func TestFieldClone(t *testing.T) {
	f := Field{1, 2, 3}
	c := f.Clone()

	c[0] = 99
	if f[0] != 1 {
		t.Error("clone shares backing array with original")
	}
	if len(c) != len(f) {
		t.Errorf("clone length %d, want %d", len(c), len(f))
	}
}

func TestFieldIsValid(t *testing.T) {
	if !(Field{0, 1, -2.5}).IsValid() {
		t.Error("finite field reported invalid")
	}
	if (Field{0, math.NaN()}).IsValid() {
		t.Error("NaN field reported valid")
	}
	if (Field{math.Inf(1), 0}).IsValid() {
		t.Error("Inf field reported valid")
	}
}

func TestFieldSum(t *testing.T) {
	f := Field{0.5, 1.5, -1.0}
	if got := f.Sum(); math.Abs(got-1.0) > 1e-15 {
		t.Errorf("Sum = %g, want 1.0", got)
	}
}

func TestFieldExtrema(t *testing.T) {
	f := Field{0.2, 1.7, -0.3, 0.9}

	if got := f.Min(); got != -0.3 {
		t.Errorf("Min = %g, want -0.3", got)
	}
	if got := f.Max(); got != 1.7 {
		t.Errorf("Max = %g, want 1.7", got)
	}

	idx, val := f.Peak()
	if idx != 1 || val != 1.7 {
		t.Errorf("Peak = (%d, %g), want (1, 1.7)", idx, val)
	}
}

func TestFieldEmpty(t *testing.T) {
	var f Field
	if idx, _ := f.Peak(); idx != -1 {
		t.Errorf("empty Peak index = %d, want -1", idx)
	}
	if f.Sum() != 0 || f.Min() != 0 || f.Max() != 0 {
		t.Error("empty field aggregates should be zero")
	}
}
