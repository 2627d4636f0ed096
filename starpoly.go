// Regular star polygon geometry for Go.
//
// This package turns a {n/d} star description into a closed, ordered
// sequence of 2D points: either the raw self-intersecting vertex ring, or
// the star's outline silhouette with its inner radius derived from the
// ring's first self-intersection. The result can be fed to any path or
// drawing API via the PathSink interface.
package starpoly

import "github.com/quintic/starpoly/star"

type Point = star.Point
type Ring = star.Ring
type Rect = star.Rect
type Spec = star.Spec
type PathSink = star.PathSink

var ErrInvalidSpec = star.ErrInvalidSpec
var ErrNotStarPolygon = star.ErrNotStarPolygon

// SquareRect is the square with top-left corner (x, y) and the given side
// length.
func SquareRect(x, y, size float64) Rect {
	return star.SquareRect(x, y, size)
}

// Outline computes the star's point ring in the box's local coordinates.
// See the star package for the full contract.
func Outline(spec Spec) (Ring, error) {
	return star.Outline(spec)
}

// Trace computes the star and walks it into sink as a closed path,
// translated to the spec's box: move to the first point, line to each
// subsequent point, and a final line back to the start.
func Trace(spec Spec, sink PathSink) error {
	ring, err := star.Outline(spec)
	if err != nil {
		return err
	}
	ring.Trace(sink, spec.Box.Left, spec.Box.Top)
	return nil
}
