package interp

import (
	"github.com/matt-g-everett/ledtween/curve"
	"github.com/matt-g-everett/ledtween/vector"
	"github.com/pkg/errors"
)

// Path follows a chain of cubic bezier segments. values starts with the
// start point, followed by ctrl1x, ctrl1y, ctrl2x, ctrl2y, endx, endy for
// each segment; every segment starts where the previous one ended.
func Path(t float64, values ...float64) ([]float64, error) {
	seg, err := CurveProgress(t, 2, 6, values)
	if err != nil {
		return nil, errors.Wrap(err, "path")
	}
	p, err := curve.Bezier(seg.Progress, seg.Points...)
	if err != nil {
		return nil, errors.Wrap(err, "path")
	}
	return p.Slice(), nil
}

// Polyline moves along straight lines through the vertices in values at
// constant speed: each line gets a share of t in proportion to its length.
func Polyline(t float64, values ...float64) ([]float64, error) {
	if len(values)%2 != 0 {
		return nil, errors.Wrapf(ErrOddValues, "polyline: %d values", len(values))
	}
	n := len(values) / 2
	if n == 0 {
		return nil, errors.Wrap(ErrChunking, "polyline: no vertices")
	}

	vertex := func(i int) vector.Vector2 {
		return vector.New(values[2*i], values[2*i+1])
	}
	if n == 1 {
		return vertex(0).Slice(), nil
	}

	lengths := make([]float64, n-1)
	total := 0.0
	for i := range lengths {
		lengths[i] = vertex(i + 1).Sub(vertex(i)).Length()
		total += lengths[i]
	}
	if total == 0 {
		return vertex(0).Slice(), nil
	}

	distance := t * total
	travelled := 0.0
	i := 0
	for ; i < len(lengths)-1; i++ {
		if lengths[i] > 0 && distance <= travelled+lengths[i] {
			break
		}
		travelled += lengths[i]
	}

	local := 0.0
	if lengths[i] > 0 {
		local = (distance - travelled) / lengths[i]
	}
	return vertex(i).Lerp(vertex(i+1), local).Slice(), nil
}

// UniformPolyline moves along the same lines as Polyline but gives every
// vertex an equal share of t, whatever the line lengths. The last share
// holds the final vertex.
func UniformPolyline(t float64, values ...float64) ([]float64, error) {
	if len(values)%2 != 0 {
		return nil, errors.Wrapf(ErrOddValues, "polyline: %d values", len(values))
	}
	seg, err := CurveProgress(t, 2, 2, values)
	if err != nil {
		return nil, errors.Wrap(err, "polyline")
	}
	c := seg.Points
	return vector.New(c[0], c[1]).Lerp(vector.New(c[2], c[3]), seg.Progress).Slice(), nil
}
