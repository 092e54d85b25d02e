package math

import "math"

// Smoothstep is the cubic ease t²(3−2t). It has zero slope at both ends,
// so motion eases in and out. t is expected in [0, 1].
func Smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * (math.Pi / 180)
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * (180 / math.Pi)
}
