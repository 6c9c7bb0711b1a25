package gamemath

import "math"

// Lerp moves from a toward b by fraction t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// DecayToZero counts a frame counter down by one, stopping at zero.
func DecayToZero(v int) int {
	if v > 0 {
		return v - 1
	}
	return 0
}

// DecayFloatToZero is DecayToZero for float counters such as glow.
func DecayFloatToZero(v float64) float64 {
	if v > 1 {
		return v - 1
	}
	return 0
}

// Dist returns the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
