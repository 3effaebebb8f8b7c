package stream

import (
	"log"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledtween/animation"
)

// Property keys of a Strip.
const (
	KeyPosition   = "position"
	KeyWidth      = "width"
	KeyColour     = "colour"
	KeyBackground = "background"
)

func strip(target any) *Strip {
	return target.(*Strip)
}

func colourValue(c colorful.Color) animation.Value {
	return animation.Value{c.R, c.G, c.B}
}

// Properties returns how each key of a Strip is read and written. The spot
// colour goes through its hex form; the other keys are set directly.
func Properties() map[string]animation.Property {
	return map[string]animation.Property{
		KeyPosition: {
			Param: func(t any) animation.Value { return animation.Scalar(strip(t).Position()) },
			Set:   func(t any, v ...float64) { strip(t).SetPosition(v[0]) },
		},
		KeyWidth: {
			Param: func(t any) animation.Value { return animation.Scalar(strip(t).Width()) },
			Set:   func(t any, v ...float64) { strip(t).SetWidth(v[0]) },
		},
		KeyColour: {
			Param: func(t any) animation.Value { return colourValue(strip(t).Colour()) },
			Format: func(v ...float64) string {
				return colorful.Color{R: v[0], G: v[1], B: v[2]}.Clamped().Hex()
			},
			SetText: func(t any, s string) {
				c, err := colorful.Hex(s)
				if err != nil {
					log.Printf("colour %q: %v", s, err)
					return
				}
				strip(t).SetColour(c)
			},
		},
		KeyBackground: {
			Param: func(t any) animation.Value { return colourValue(strip(t).Background()) },
			Set: func(t any, v ...float64) {
				strip(t).SetBackground(colorful.Color{R: v[0], G: v[1], B: v[2]})
			},
		},
	}
}
