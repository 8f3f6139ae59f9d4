// Package metrics computes scalar summaries of a diffusion run from its
// initial and final profiles. The stepper retains no intermediate states,
// so every observable is a before/after comparison.
package metrics

import "github.com/san-kum/diffsim/internal/grid"

// Mass returns the total of the field samples. The periodic Laplacian sums
// to ~0, so diffusion should preserve this up to rounding.
func Mass(f grid.Field) float64 {
	return f.Sum()
}

// MassDrift returns the relative change in total mass, or the absolute
// change when the initial mass is zero.
func MassDrift(initial, final grid.Field) float64 {
	before := initial.Sum()
	after := final.Sum()
	if before == 0 {
		return after
	}
	drift := (after - before) / before
	if drift < 0 {
		drift = -drift
	}
	return drift
}

// PeakDecay returns the fraction of the initial peak lost to smoothing.
func PeakDecay(initial, final grid.Field) float64 {
	_, before := initial.Peak()
	_, after := final.Peak()
	if before == 0 {
		return 0
	}
	return (before - after) / before
}

// Entries bundles the run summary written into run metadata.
func Entries(initial, final grid.Field) map[string]float64 {
	_, peakBefore := initial.Peak()
	_, peakAfter := final.Peak()
	return map[string]float64{
		"mass_initial": initial.Sum(),
		"mass_final":   final.Sum(),
		"mass_drift":   MassDrift(initial, final),
		"peak_initial": peakBefore,
		"peak_final":   peakAfter,
		"peak_decay":   PeakDecay(initial, final),
		"min_initial":  initial.Min(),
		"min_final":    final.Min(),
	}
}
