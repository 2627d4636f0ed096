package star

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossing(t *testing.T) {
	t.Run("plain crossing", func(t *testing.T) {
		a := Segment{Point{0, 0}, Point{4, 4}}
		b := Segment{Point{0, 4}, Point{4, 0}}
		p, ok := a.crossing(b)
		require.True(t, ok)
		assert.InDelta(t, 2, p.X, Tolerance)
		assert.InDelta(t, 2, p.Y, Tolerance)
	})

	t.Run("parallel", func(t *testing.T) {
		a := Segment{Point{0, 0}, Point{4, 4}}
		b := Segment{Point{0, 1}, Point{4, 5}}
		_, ok := a.crossing(b)
		assert.False(t, ok)
	})

	t.Run("vertical against slanted", func(t *testing.T) {
		a := Segment{Point{2, 0}, Point{2, 10}}
		b := Segment{Point{0, 0}, Point{4, 4}}
		p, ok := a.crossing(b)
		require.True(t, ok)
		assert.InDelta(t, 2, p.X, Tolerance)
		assert.InDelta(t, 2, p.Y, Tolerance)

		// Same answer with the operands flipped
		p, ok = b.crossing(a)
		require.True(t, ok)
		assert.InDelta(t, 2, p.X, Tolerance)
		assert.InDelta(t, 2, p.Y, Tolerance)
	})

	t.Run("both vertical", func(t *testing.T) {
		a := Segment{Point{2, 0}, Point{2, 10}}
		b := Segment{Point{5, 0}, Point{5, 10}}
		_, ok := a.crossing(b)
		assert.False(t, ok)
	})
}

func TestSurrounds(t *testing.T) {
	s := Segment{Point{0, 0}, Point{4, 4}}
	assert.True(t, s.surrounds(Point{2, 2}))
	// Endpoints are excluded: the check is strictly open
	assert.False(t, s.surrounds(Point{0, 0}))
	assert.False(t, s.surrounds(Point{4, 4}))
	assert.False(t, s.surrounds(Point{5, 5}))

	// A flat axis collapses to a tolerance check instead of an empty
	// open interval
	horizontal := Segment{Point{0, 3}, Point{4, 3}}
	assert.True(t, horizontal.surrounds(Point{2, 3}))
	assert.False(t, horizontal.surrounds(Point{2, 3.5}))
	assert.False(t, horizontal.surrounds(Point{0, 3}))

	vertical := Segment{Point{3, 0}, Point{3, 4}}
	assert.True(t, vertical.surrounds(Point{3, 2}))
	assert.False(t, vertical.surrounds(Point{3.5, 2}))
}

func TestFirstIntersection_Pentagram(t *testing.T) {
	ring, err := Outline(pentagram(false))
	require.NoError(t, err)

	hit, err := firstIntersection(ring)
	require.NoError(t, err)

	// The crossing sits at the pentagram's inner radius,
	// r * sin(18°) / sin(54°)
	expected := 50 * math.Sin(radians(18)) / math.Sin(radians(54))
	assert.InDelta(t, expected, Point{50, 50}.Distance(hit), 1e-3)
}

func TestOutline_DegenerateStars(t *testing.T) {
	// Density n/2 on even n degenerates: {6/2} collapses to a triangle
	// walked twice, {6/3} and {8/4} to diameters. None self-intersect.
	pairs := [][2]int{{6, 2}, {6, 3}, {8, 4}, {10, 5}}
	for _, pair := range pairs {
		n, d := pair[0], pair[1]
		t.Run(fmt.Sprintf("star %d-%d", n, d), func(t *testing.T) {
			spec := Spec{
				NumPoints: n,
				Density:   d,
				Outlined:  true,
				Box:       SquareRect(0, 0, 100),
			}
			_, err := Outline(spec)
			assert.ErrorIs(t, err, ErrNotStarPolygon)

			// The outer ring alone is still computable
			spec.Outlined = false
			ring, err := Outline(spec)
			assert.NoError(t, err)
			assert.Len(t, ring, n)
		})
	}
}

func TestOutline_VerticalFirstChord(t *testing.T) {
	// Rotating a pentagram by 198° makes its first chord exactly vertical,
	// which the slope/intercept algebra can't represent directly. The search
	// must still find the crossing and the same inner radius.
	spec := pentagram(true)
	spec.RotationDegrees = 198

	ring, err := Outline(spec)
	require.NoError(t, err)
	require.Len(t, ring, 10)

	expected := 50 * math.Sin(radians(18)) / math.Sin(radians(54))
	center := Point{50, 50}
	for i := 1; i < len(ring); i += 2 {
		assert.InDelta(t, expected, ring[i].Distance(center), 1e-3, "point %d", i)
	}
}
