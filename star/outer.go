package star

import "math"

// The outer vertex ring of a {numPoints/density} star. Points lie on the
// circle of radius r centered at (r, r), with consecutive points
// density * (360/numPoints) degrees apart. Walking them in order and
// connecting neighbors traces the star's self-intersecting chords rather
// than a plain regular polygon.
//
// The y coordinate is flipped (r - r*sin) so the ring lives in a
// top-left-origin, y-down coordinate system.
func outerRing(numPoints, density int, startDegrees, r float64) Ring {
	degreesBetween := 360.0 / float64(numPoints)
	ring := make(Ring, numPoints)
	for i := range ring {
		theta := radians(startDegrees + float64(density*i)*degreesBetween)
		ring[i] = Point{
			X: r + r*math.Cos(theta),
			Y: r - r*math.Sin(theta),
		}
	}
	return ring
}
