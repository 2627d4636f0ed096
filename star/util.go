package star

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
// Without this, chords that should be exactly horizontal (or parallel) after
// a full trip through sin/cos land a few ulps apart and the search misjudges
// them.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
