package util

import (
	"github.com/fogleman/ease"
)

// GenerateLut creates a falloff table of length entries, easing from full
// gain at the centre of a light down to nothing at its edge.
func GenerateLut(length int) []float64 {
	if length < 2 {
		return []float64{1}
	}
	increment := 1.0 / float64(length-1)
	lut := make([]float64, length)
	for i := 0; i < length; i++ {
		lut[i] = ease.InOutQuad(1 - float64(i)*increment)
	}
	return lut
}

// Gain looks up the table at distance d in [0, 1] from the centre,
// interpolating between entries. Distances outside the table give no gain.
func Gain(lut []float64, d float64) float64 {
	if d < 0 {
		d = -d
	}
	if d >= 1 || len(lut) == 0 {
		return 0
	}
	pos := d * float64(len(lut)-1)
	i := int(pos)
	if i >= len(lut)-1 {
		return lut[len(lut)-1]
	}
	frac := pos - float64(i)
	return lut[i] + (lut[i+1]-lut[i])*frac
}
