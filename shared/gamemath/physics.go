package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Direction returns 1 when delta is strictly positive and -1 otherwise.
func Direction(delta float64) float64 {
	if delta > 0 {
		return 1
	}
	return -1
}

// Decay scales an impulse by factor and reports whether it has died out,
// i.e. its magnitude dropped below cutoff.
func Decay(v, factor, cutoff float64) (float64, bool) {
	v *= factor
	if math.Abs(v) < cutoff {
		return 0, true
	}
	return v, false
}
