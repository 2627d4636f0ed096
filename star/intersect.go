package star

import (
	"math"

	"github.com/pkg/errors"
)

// Find the first point where the ring's first chord (point 0 to point 1)
// crosses a later, non-adjacent chord. For a valid star this crossing always
// exists, and its distance from the circle center is the star's inner
// radius: the radius at which the points converge when the star is drawn as
// an outline.
func firstIntersection(ring Ring) (Point, error) {
	segs := ring.Segments()
	first := segs[0]

	// The second chord and the last chord share an endpoint with the first,
	// so they can touch it but never cross it. Skip them.
	for i := 2; i < len(segs)-1; i++ {
		cur := segs[i]
		p, ok := first.crossing(cur)
		if !ok {
			continue
		}
		if first.surrounds(p) && cur.surrounds(p) {
			return p, nil
		}
	}

	// No chord crosses the first one. The combination of point count and
	// density doesn't produce a self-intersecting polygon, e.g. {6/2}, which
	// collapses to a triangle, or {6/3}, which collapses to diameters.
	return Point{}, errors.Wrapf(ErrNotStarPolygon,
		"no self-intersection among %d chords", len(segs))
}

// The point where the infinite lines through two segments cross. Reports
// false for parallel lines, including the doubly-vertical case. Solved as a
// two-equation system on y = mx + b, except that vertical segments have no
// slope and instead pin x directly.
func (s Segment) crossing(o Segment) (Point, bool) {
	sVert, oVert := s.IsVertical(), o.IsVertical()
	switch {
	case sVert && oVert:
		return Point{}, false
	case sVert:
		x := s.Start.X
		return Point{X: x, Y: o.Slope()*x + o.YIntercept()}, true
	case oVert:
		x := o.Start.X
		return Point{X: x, Y: s.Slope()*x + s.YIntercept()}, true
	}

	sSlope, oSlope := s.Slope(), o.Slope()
	if Equal(sSlope, oSlope) {
		return Point{}, false
	}

	// sSlope*x + sYInt = oSlope*x + oYInt, solve for x, then substitute.
	sYInt, oYInt := s.YIntercept(), o.YIntercept()
	x := (oYInt - sYInt) / (sSlope - oSlope)
	return Point{X: x, Y: sSlope*x + sYInt}, true
}

// Reports whether p falls strictly inside the segment's coordinate ranges.
// Open intervals, so a crossing at a shared endpoint does not count; that's
// what keeps chords that merely touch from producing bogus intersections.
// "Strictly inside" means by more than Tolerance: a crossing computed to
// land on an endpoint arrives with float dust on it, and whether it sits a
// few ulps inside or outside the range is a coin flip we must not take.
//
// A horizontal or vertical segment has an empty open interval on its flat
// axis, which would reject every point, so the flat axis degrades to a
// tolerance comparison instead.
func (s Segment) surrounds(p Point) bool {
	lowX, highX := math.Min(s.Start.X, s.End.X), math.Max(s.Start.X, s.End.X)
	lowY, highY := math.Min(s.Start.Y, s.End.Y), math.Max(s.Start.Y, s.End.Y)

	insideX := p.X > lowX+Tolerance && p.X < highX-Tolerance
	if Equal(lowX, highX) {
		insideX = Equal(p.X, lowX)
	}
	insideY := p.Y > lowY+Tolerance && p.Y < highY-Tolerance
	if Equal(lowY, highY) {
		insideY = Equal(p.Y, lowY)
	}
	return insideX && insideY
}
