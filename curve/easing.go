package curve

import (
	"strings"

	"github.com/fogleman/ease"
	"github.com/pkg/errors"
)

// ErrUnknownEasing is returned by Named for names it doesn't know.
var ErrUnknownEasing = errors.New("unknown easing")

// An Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Cubic creates an Easing from the two intermediate control points of a
// bezier anchored at (0,0) and (1,1). The result is the y coordinate of
// the curve evaluated at the clamped progress.
func Cubic(p0, p1, p2, p3 float64) Easing {
	points := []float64{0, 0, p0, p1, p2, p3, 1, 1}
	return func(t float64) float64 {
		v, _ := Bezier(Clamp(t, 0, 1), points...)
		return v.Y
	}
}

// CubicPoints is Cubic taking the control points as an array.
func CubicPoints(p [4]float64) Easing {
	return Cubic(p[0], p[1], p[2], p[3])
}

var named = map[string]func(float64) float64{
	"linear":        ease.Linear,
	"in-quad":       ease.InQuad,
	"out-quad":      ease.OutQuad,
	"in-out-quad":   ease.InOutQuad,
	"in-cubic":      ease.InCubic,
	"out-cubic":     ease.OutCubic,
	"in-out-cubic":  ease.InOutCubic,
	"in-quart":      ease.InQuart,
	"out-quart":     ease.OutQuart,
	"in-out-quart":  ease.InOutQuart,
	"in-quint":      ease.InQuint,
	"out-quint":     ease.OutQuint,
	"in-out-quint":  ease.InOutQuint,
	"in-sine":       ease.InSine,
	"out-sine":      ease.OutSine,
	"in-out-sine":   ease.InOutSine,
	"in-expo":       ease.InExpo,
	"out-expo":      ease.OutExpo,
	"in-out-expo":   ease.InOutExpo,
	"in-circ":       ease.InCirc,
	"out-circ":      ease.OutCirc,
	"in-out-circ":   ease.InOutCirc,
	"in-back":       ease.InBack,
	"out-back":      ease.OutBack,
	"in-out-back":   ease.InOutBack,
	"in-bounce":     ease.InBounce,
	"out-bounce":    ease.OutBounce,
	"in-out-bounce": ease.InOutBounce,
}

// Named looks up a preset easing by name, e.g. "in-out-quad".
// The input is clamped to [0, 1] before it reaches the preset.
func Named(name string) (Easing, error) {
	fn, ok := named[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEasing, "%q", name)
	}
	return func(t float64) float64 {
		return fn(Clamp(t, 0, 1))
	}, nil
}
