package star

import "github.com/pkg/errors"

// All failures are deterministic functions of the input. Callers match with
// errors.Is against these sentinels; the wrapped message carries the detail.
var (
	// ErrInvalidSpec covers every precondition failure: a non-square box,
	// fewer than five points, or a density below two.
	ErrInvalidSpec = errors.New("invalid star spec")

	// ErrNotStarPolygon means the {numPoints/density} combination never
	// self-intersects, so there is no inner radius to outline with.
	ErrNotStarPolygon = errors.New("not a valid star polygon")
)
