package wave

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Smootherstep is the quintic ease 6x⁵-15x⁴+10x³ on x clamped to [0,1]. Its
// first and second derivatives vanish at both ends.
func Smootherstep(x float64) float64 {
	x = Clamp(x, 0, 1)
	return x * x * x * (x*(x*6-15) + 10)
}

// Mix interpolates linearly from a to b.
func Mix(a, b, t float64) float64 {
	return a + (b-a)*t
}
