package grid

import "math"

// Field is a scalar field sampled on a periodic 1-D grid with unit spacing.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sum returns the total mass of the field.
func (f Field) Sum() float64 {
	sum := 0.0
	for _, v := range f {
		sum += v
	}
	return sum
}

func (f Field) Min() float64 {
	if len(f) == 0 {
		return 0
	}
	min := f[0]
	for _, v := range f[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func (f Field) Max() float64 {
	if len(f) == 0 {
		return 0
	}
	max := f[0]
	for _, v := range f[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Peak returns the index and value of the largest sample.
func (f Field) Peak() (int, float64) {
	if len(f) == 0 {
		return -1, 0
	}
	idx, max := 0, f[0]
	for i, v := range f {
		if v > max {
			idx, max = i, v
		}
	}
	return idx, max
}
