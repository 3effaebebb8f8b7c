// Package animation binds target properties to a timeline. On every frame
// it moves each property from the value it had at Start towards its end
// value using a named interpolation strategy, and writes the result back
// through the property's setter.
package animation

import (
	"log"
	"sort"
	"time"

	"github.com/matt-g-everett/ledtween/curve"
	"github.com/matt-g-everett/ledtween/frame"
	"github.com/matt-g-everett/ledtween/interp"
	"github.com/matt-g-everett/ledtween/observe"
	"github.com/matt-g-everett/ledtween/timeline"
	"github.com/pkg/errors"
)

var (
	// ErrProperty is returned by New for incomplete property descriptions.
	ErrProperty = errors.New("invalid property")

	// ErrDimension is reported when a strategy returns a different number
	// of values than the property has.
	ErrDimension = errors.New("result dimension mismatch")
)

// Settings configure an Animation.
type Settings struct {
	// Target is handed unchanged to every Param, Set and SetText.
	Target any

	// Curve holds the intermediate control points of the easing bezier.
	// Easing replaces it when set.
	Curve    [4]float64
	Easing   curve.Easing
	Duration time.Duration

	Properties map[string]Property

	Scheduler frame.Scheduler
	Clock     frame.Clock

	// Strategies resolves End.Strategy names. Defaults to
	// interp.DefaultRegistry().
	Strategies *interp.Registry
	Logger     *log.Logger
}

// Animation moves the properties of a target over a timeline.
type Animation struct {
	observe.Observer[float64]

	settings   Settings
	timeline   *timeline.Timeline
	keys       []string
	strategies map[string]interp.Strategy
	logger     *log.Logger

	from map[string]Value
	to   map[string]Value
	done chan struct{}
	err  error
}

// New creates an instance of an Animation.
func New(settings Settings) (*Animation, error) {
	a := new(Animation)
	a.settings = settings
	a.logger = settings.Logger
	if a.logger == nil {
		a.logger = log.Default()
	}

	registry := settings.Strategies
	if registry == nil {
		registry = interp.DefaultRegistry()
	}
	a.strategies = make(map[string]interp.Strategy, len(settings.Properties))
	for key, p := range settings.Properties {
		if err := validate(p); err != nil {
			return nil, errors.Wrapf(err, "animation: property %q", key)
		}
		s, err := registry.Lookup(p.End.Strategy)
		if err != nil {
			return nil, errors.Wrapf(err, "animation: property %q", key)
		}
		a.strategies[key] = s
		a.keys = append(a.keys, key)
	}
	sort.Strings(a.keys)

	easing := settings.Easing
	if easing == nil {
		easing = curve.CubicPoints(settings.Curve)
	}
	opts := []timeline.Option{timeline.WithScheduler(settings.Scheduler)}
	if settings.Clock != nil {
		opts = append(opts, timeline.WithClock(settings.Clock))
	}
	tl, err := timeline.New(easing, settings.Duration, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "animation")
	}
	a.timeline = tl
	a.Subscribe(tl, a.animate)
	tl.Completion().Register(a, a.complete)

	a.from = make(map[string]Value)
	a.to = make(map[string]Value)

	return a, nil
}

func validate(p Property) error {
	switch {
	case p.Param == nil:
		return errors.Wrap(ErrProperty, "no param")
	case p.Format != nil && p.SetText == nil:
		return errors.Wrap(ErrProperty, "format without SetText")
	case p.Format == nil && p.Set == nil:
		return errors.Wrap(ErrProperty, "no setter")
	}
	return nil
}

// Start samples every property's current value, works out its target and
// starts the timeline. The returned channel is closed once the final frame
// has been applied. It is not closed if the animation is stopped early.
func (a *Animation) Start() (<-chan struct{}, error) {
	if a.timeline.Running() {
		return nil, errors.WithStack(timeline.ErrRunning)
	}

	for _, key := range a.keys {
		p := a.settings.Properties[key]
		from := append(Value(nil), p.Param(a.settings.Target)...)
		a.from[key] = from
		a.to[key] = p.resolve(from)
	}
	a.err = nil
	a.done = make(chan struct{})

	if err := a.timeline.Start(); err != nil {
		return nil, err
	}
	return a.done, nil
}

// Stop halts the animation where it is. The captured from and to values
// are kept.
func (a *Animation) Stop() {
	a.timeline.Stop()
}

// animate applies progress to every property. A property whose strategy
// fails keeps its previous value; the first failure of a run is logged
// and kept for Err.
func (a *Animation) animate(progress float64) {
	for _, key := range a.keys {
		err := a.apply(key, progress)
		if err != nil && a.err == nil {
			a.err = err
			a.logger.Printf("animation: %v", err)
		}
	}
}

func (a *Animation) apply(key string, progress float64) error {
	p := a.settings.Properties[key]
	from, to := a.from[key], a.to[key]

	values := make([]float64, 0, len(from)+len(to))
	values = append(values, from...)
	values = append(values, to...)

	v, err := a.strategies[key](progress, values...)
	if err != nil {
		return errors.Wrapf(err, "property %q", key)
	}
	if len(v) != len(from) {
		return errors.Wrapf(ErrDimension, "property %q: %s gave %d values, want %d",
			key, p.End.Strategy, len(v), len(from))
	}

	if p.Format != nil {
		p.SetText(a.settings.Target, p.Format(v...))
	} else {
		p.Set(a.settings.Target, v...)
	}
	return nil
}

func (a *Animation) complete(struct{}) {
	if a.done == nil {
		return
	}
	select {
	case <-a.done:
	default:
		close(a.done)
	}
}

// Running reports whether the animation is running.
func (a *Animation) Running() bool {
	return a.timeline.Running()
}

// Err returns the first property failure of the current or last run.
func (a *Animation) Err() error {
	return a.err
}

// From returns the value key had when the animation last started.
func (a *Animation) From(key string) Value {
	return a.from[key]
}

// To returns the target arguments key was resolved to at the last start.
func (a *Animation) To(key string) Value {
	return a.to[key]
}

// Keys returns the animated property keys in the order they are applied.
func (a *Animation) Keys() []string {
	return append([]string(nil), a.keys...)
}

// Timeline returns the timeline driving the animation.
func (a *Animation) Timeline() *timeline.Timeline {
	return a.timeline
}

// Completion is dispatched after the final frame of each run has been
// applied.
func (a *Animation) Completion() *observe.Observable[struct{}] {
	return a.timeline.Completion()
}
