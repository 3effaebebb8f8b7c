// Package curve evaluates cubic bezier curves and builds the easing
// functions that drive a timeline.
package curve

import (
	"github.com/matt-g-everett/ledtween/vector"
	"github.com/pkg/errors"
)

// ErrArity is returned when a curve is given the wrong number of coordinates.
var ErrArity = errors.New("wrong number of coordinates")

// Bezier evaluates the cubic bezier defined by four control points at t.
// points holds the coordinates as p0x, p0y, p1x, p1y, p2x, p2y, p3x, p3y.
// t is not clamped.
func Bezier(t float64, points ...float64) (vector.Vector2, error) {
	if len(points) != 8 {
		return vector.Vector2{}, errors.Wrapf(ErrArity, "bezier: want 8, got %d", len(points))
	}

	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t

	return vector.Vector2{
		X: a*points[0] + b*points[2] + c*points[4] + d*points[6],
		Y: a*points[1] + b*points[3] + c*points[5] + d*points[7],
	}, nil
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
