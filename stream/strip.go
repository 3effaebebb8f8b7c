package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/util"
)

const falloffLength = 64

// Strip is an LED strip lit by a single spot of colour over a background.
// Its properties are what scenes animate.
type Strip struct {
	pixels     int
	position   float64
	width      float64
	colour     colorful.Color
	background colorful.Color
	falloff    []float64
}

// NewStrip creates an instance of a Strip with the given number of pixels.
func NewStrip(pixels int) *Strip {
	s := new(Strip)
	s.pixels = pixels
	s.position = 0
	s.width = 20
	s.colour, _ = colorful.Hex("#808080")
	s.background, _ = colorful.Hex("#000005")
	s.falloff = util.GenerateLut(falloffLength)
	return s
}

// Pixels returns the strip length.
func (s *Strip) Pixels() int { return s.pixels }

// Position returns the pixel the spot is centred on.
func (s *Strip) Position() float64 { return s.position }

// SetPosition moves the spot.
func (s *Strip) SetPosition(p float64) { s.position = p }

// Width returns the spot width in pixels.
func (s *Strip) Width() float64 { return s.width }

// SetWidth resizes the spot. Negative widths are treated as zero.
func (s *Strip) SetWidth(w float64) { s.width = math.Max(w, 0) }

// Colour returns the spot colour.
func (s *Strip) Colour() colorful.Color { return s.colour }

// SetColour changes the spot colour.
func (s *Strip) SetColour(c colorful.Color) { s.colour = c }

// Background returns the colour of unlit pixels.
func (s *Strip) Background() colorful.Color { return s.background }

// SetBackground changes the colour of unlit pixels.
func (s *Strip) SetBackground(c colorful.Color) { s.background = c }

// Render draws the strip into a new Frame.
func (s *Strip) Render() *Frame {
	f := NewFrame(s.pixels)
	half := s.width / 2
	for i := range f.pixels {
		gain := 0.0
		if half > 0 {
			gain = util.Gain(s.falloff, (float64(i)-s.position)/half)
		}
		if gain == 0 {
			f.pixels[i] = s.background
			continue
		}
		f.pixels[i] = s.background.BlendHcl(s.colour, gain)
	}
	return f
}
