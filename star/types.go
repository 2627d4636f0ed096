package star

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"

	"github.com/quintic/starpoly/dbg"
)

type Point struct {
	X float64
	Y float64
}

// Euclidean distance to another point.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// A Ring is a closed sequence of points. Order matters: it defines path
// traversal, and the segment after the last point wraps back to the first.
// Rings are produced once per computation and never mutated afterwards.
type Ring []Point

// The ring's edges, in order. Segment i runs from point i to point i+1, with
// the final segment wrapping around to point 0.
func (rg Ring) Segments() []Segment {
	segs := make([]Segment, len(rg))
	for i := range rg {
		segs[i] = Segment{rg[i], rg[CircularIndex(i+1, len(rg))]}
	}
	return segs
}

// Translate returns a copy of the ring shifted by (dx, dy).
func (rg Ring) Translate(dx, dy float64) Ring {
	out := make(Ring, len(rg))
	for i, p := range rg {
		out[i] = Point{p.X + dx, p.Y + dy}
	}
	return out
}

// A directed chord of the star, used while searching for the first
// self-intersection. Points are values; two segments are the same segment
// iff their endpoints are equal.
type Segment struct {
	Start, End Point
}

// Rise over run. Infinite for vertical segments; callers that can see a
// vertical segment must check IsVertical first.
func (s Segment) Slope() float64 {
	return (s.End.Y - s.Start.Y) / (s.End.X - s.Start.X)
}

// The b in y = mx + b. Meaningless for vertical segments.
func (s Segment) YIntercept() float64 {
	return s.Start.Y - s.Slope()*s.Start.X
}

func (s Segment) IsVertical() bool {
	return Equal(s.Start.X, s.End.X)
}

func (s Segment) IsHorizontal() bool {
	return Equal(s.Start.Y, s.End.Y)
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment %s (%g, %g) -> (%g, %g)",
		s.DbgName(), s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

func (s Segment) DbgName() string {
	// Color degenerate orientations, since they take the relaxed containment
	// path in the intersection search.
	name := dbg.Name(s)
	if s.IsVertical() {
		name = aurora.Cyan(name).String()
	} else if s.IsHorizontal() {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}

// Rect is the bounding box a star is computed into. Left/top is the origin
// corner; the box must be square.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// SquareRect is shorthand for the square with top-left corner (x, y) and the
// given side length.
func SquareRect(x, y, size float64) Rect {
	return Rect{Left: x, Top: y, Right: x + size, Bottom: y + size}
}

// Spec is the full parameter set for one star computation. Density is the
// number of points skipped when connecting vertices: a line in a five-pointed
// star connects the first and third points, so its density is two.
type Spec struct {
	NumPoints       int
	Density         int
	Outlined        bool
	RotationDegrees float64
	Box             Rect
}
