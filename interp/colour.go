package interp

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/curve"
	"github.com/pkg/errors"
)

// HCL blends an RGB colour towards a target RGB colour in HCL space, which
// keeps the perceived brightness even through the transition. values is
// r, g, b, targetR, targetG, targetB with channels in [0, 1].
func HCL(t float64, values ...float64) ([]float64, error) {
	if len(values) != 6 {
		return nil, errors.Wrapf(curve.ErrArity, "hcl: want 6, got %d", len(values))
	}
	if t <= 0 {
		return append([]float64(nil), values[:3]...), nil
	}
	if t >= 1 {
		return append([]float64(nil), values[3:]...), nil
	}

	from := colorful.Color{R: values[0], G: values[1], B: values[2]}
	to := colorful.Color{R: values[3], G: values[4], B: values[5]}
	c := from.BlendHcl(to, t).Clamped()
	return []float64{c.R, c.G, c.B}, nil
}
