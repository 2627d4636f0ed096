package starpoly

// Preset specs for the common star polygons. The caller fills in Box,
// RotationDegrees and Outlined, e.g.:
//
//	spec := starpoly.Pentagram()
//	spec.Outlined = true
//	spec.Box = starpoly.SquareRect(0, 0, 100)

// Pentagram returns the five-pointed {5/2} star.
func Pentagram() Spec {
	return Spec{NumPoints: 5, Density: 2}
}

// Heptagram returns the seven-pointed {7/3} star.
func Heptagram() Spec {
	return Spec{NumPoints: 7, Density: 3}
}

// Octagram returns the eight-pointed {8/3} star.
func Octagram() Spec {
	return Spec{NumPoints: 8, Density: 3}
}

// Decagram returns the ten-pointed {10/3} star.
func Decagram() Spec {
	return Spec{NumPoints: 10, Density: 3}
}
