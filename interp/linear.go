package interp

import "github.com/pkg/errors"

// Linear interpolates element by element. The first half of values are the
// from values, the second half the targets.
func Linear(t float64, values ...float64) ([]float64, error) {
	if len(values)%2 != 0 {
		return nil, errors.Wrapf(ErrOddValues, "linear: %d values", len(values))
	}
	n := len(values) / 2
	out := make([]float64, n)
	for i, v := range values[:n] {
		out[i] = v + t*(values[i+n]-v)
	}
	return out, nil
}

// Steps holds each value for an equal share of t, snapping from one to the
// next instead of blending. Like Linear it takes an even number of values.
// It returns a single value, so it only suits scalar properties.
func Steps(t float64, values ...float64) ([]float64, error) {
	if len(values)%2 != 0 {
		return nil, errors.Wrapf(ErrOddValues, "steps: %d values", len(values))
	}
	if len(values) == 0 {
		return []float64{}, nil
	}
	seg, err := CurveProgress(t, 0, 1, values)
	if err != nil {
		return nil, err
	}
	return []float64{seg.Points[0]}, nil
}
