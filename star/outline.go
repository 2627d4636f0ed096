package star

import "math"

// The star's visible silhouette: numPoints vertices (already doubled by the
// caller) spaced 360/numPoints degrees apart, even indexes on the outer
// circle and odd indexes on the inner one. Tracing them in order gives the
// tip, notch, tip, ... zig-zag of an outlined star.
func outlineRing(numPoints int, startDegrees, outerRadius, innerRadius float64) Ring {
	degreesBetween := 360.0 / float64(numPoints)
	ring := make(Ring, numPoints)
	for i := range ring {
		theta := radians(startDegrees + float64(i)*degreesBetween)

		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}

		ring[i] = Point{
			X: outerRadius + radius*math.Cos(theta),
			Y: outerRadius - radius*math.Sin(theta),
		}
	}
	return ring
}
