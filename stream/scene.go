package stream

import (
	"time"

	"github.com/matt-g-everett/ledtween/animation"
	"github.com/matt-g-everett/ledtween/curve"
	"github.com/matt-g-everett/ledtween/frame"
	"github.com/pkg/errors"
)

// ErrUnknownProperty is returned for scene properties a Strip doesn't have.
var ErrUnknownProperty = errors.New("unknown property")

// Status summarises a scene for the control API.
type Status struct {
	Running  bool    `json:"running"`
	Step     int     `json:"step"`
	Steps    int     `json:"steps"`
	Position float64 `json:"position"`
	Colour   string  `json:"colour"`
}

// Scene plays the configured animations on a Strip.
type Scene struct {
	strip    *Strip
	steps    []*animation.Animation
	sequence *animation.Sequence
}

// NewScene creates an instance of a Scene from its config.
func NewScene(config SceneConfig, strip *Strip, scheduler frame.Scheduler, clock frame.Clock) (*Scene, error) {
	s := new(Scene)
	s.strip = strip
	available := Properties()

	for i, ac := range config.Animations {
		settings, err := stepSettings(ac, available)
		if err != nil {
			return nil, errors.Wrapf(err, "scene step %d", i)
		}
		settings.Target = strip
		settings.Scheduler = scheduler
		settings.Clock = clock

		a, err := animation.New(settings)
		if err != nil {
			return nil, errors.Wrapf(err, "scene step %d", i)
		}
		s.steps = append(s.steps, a)
	}

	s.sequence = animation.NewSequence(config.Loop, s.steps...)
	return s, nil
}

func stepSettings(ac AnimationConfig, available map[string]animation.Property) (animation.Settings, error) {
	var settings animation.Settings
	settings.Duration = time.Duration(ac.DurationMs) * time.Millisecond

	switch {
	case ac.Easing != "":
		e, err := curve.Named(ac.Easing)
		if err != nil {
			return settings, err
		}
		settings.Easing = e
	case len(ac.Curve) == 4:
		copy(settings.Curve[:], ac.Curve)
	case len(ac.Curve) == 0:
		settings.Easing = curve.Cubic(0.25, 0.1, 0.25, 1)
	default:
		return settings, errors.Wrapf(curve.ErrArity, "curve: want 4, got %d", len(ac.Curve))
	}

	relative := make(map[string]bool, len(ac.Relative))
	for _, key := range ac.Relative {
		relative[key] = true
	}

	settings.Properties = make(map[string]animation.Property, len(ac.Properties))
	for key, pc := range ac.Properties {
		p, ok := available[key]
		if !ok {
			return settings, errors.Wrapf(ErrUnknownProperty, "%q", key)
		}
		end, err := pc.End()
		if err != nil {
			return settings, errors.Wrapf(err, "property %q", key)
		}
		p.End = end
		p.Relative = relative[key]
		settings.Properties[key] = p
	}
	return settings, nil
}

// Start plays the scene from its first step.
func (s *Scene) Start() error {
	if s.sequence.Running() {
		s.sequence.Stop()
	}
	_, err := s.sequence.Start()
	return err
}

// Stop halts the scene.
func (s *Scene) Stop() {
	s.sequence.Stop()
}

// Err returns the first property failure of the steps' latest runs.
func (s *Scene) Err() error {
	for _, a := range s.steps {
		if err := a.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Status reports where the scene is.
func (s *Scene) Status() Status {
	return Status{
		Running:  s.sequence.Running(),
		Step:     s.sequence.Current(),
		Steps:    s.sequence.Len(),
		Position: s.strip.Position(),
		Colour:   s.strip.Colour().Clamped().Hex(),
	}
}
