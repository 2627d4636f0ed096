// Package star computes regular star polygon geometry.
//
// A {n/d} star polygon is formed by connecting every d-th vertex among n
// points evenly spaced on a circle. Outline computes either that raw vertex
// ring, or, in outline mode, the non-self-intersecting silhouette that
// alternates between the star's outer tips and inner notches.
package star

import "github.com/pkg/errors"

// Outline computes the closed point ring for the given star. With
// Outlined unset the result has spec.NumPoints vertices on the outer circle.
// With Outlined set, the ring's first self-intersection fixes the inner
// radius and the result has 2*spec.NumPoints vertices alternating between
// the outer and inner circles.
//
// Points are in the box's local coordinate system, centered at (r, r) where
// r is half the box's side; the box offset is applied when tracing. The same
// spec always produces the same ring.
func Outline(spec Spec) (Ring, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	r := spec.Box.Width() / 2

	// Add 90 so the first point is at the top of the box before rotation.
	startDegrees := 90 + spec.RotationDegrees

	ring := outerRing(spec.NumPoints, spec.Density, startDegrees, r)
	if !spec.Outlined {
		return ring, nil
	}

	hit, err := firstIntersection(ring)
	if err != nil {
		return nil, err
	}
	innerRadius := Point{X: r, Y: r}.Distance(hit)

	return outlineRing(spec.NumPoints*2, startDegrees, r, innerRadius), nil
}

func (spec Spec) validate() error {
	if !Equal(spec.Box.Width(), spec.Box.Height()) {
		return errors.Wrapf(ErrInvalidSpec, "box must be square, got %gx%g",
			spec.Box.Width(), spec.Box.Height())
	}
	if spec.NumPoints < 5 {
		return errors.Wrapf(ErrInvalidSpec, "number of points must be at least 5, got %d",
			spec.NumPoints)
	}
	if spec.Density < 2 {
		return errors.Wrapf(ErrInvalidSpec, "density must be at least 2, got %d",
			spec.Density)
	}
	return nil
}
