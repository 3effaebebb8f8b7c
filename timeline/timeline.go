// Package timeline drives eased progress over a fixed duration, one frame
// at a time.
package timeline

import (
	"time"

	"github.com/matt-g-everett/ledtween/curve"
	"github.com/matt-g-everett/ledtween/frame"
	"github.com/matt-g-everett/ledtween/observe"
	"github.com/pkg/errors"
)

var (
	// ErrDuration is returned for durations that are not positive.
	ErrDuration = errors.New("duration must be positive")
	// ErrNoScheduler is returned when a timeline has nothing to drive it.
	ErrNoScheduler = errors.New("no frame scheduler")
	// ErrRunning is returned by Start while the timeline is running.
	ErrRunning = errors.New("timeline already running")
)

// Option configures a Timeline.
type Option func(*Timeline)

// WithScheduler sets the frame scheduler.
func WithScheduler(s frame.Scheduler) Option {
	return func(t *Timeline) { t.scheduler = s }
}

// WithClock sets the clock. If the scheduler is also a frame.Clock and no
// clock is given, the scheduler is used.
func WithClock(c frame.Clock) Option {
	return func(t *Timeline) { t.clock = c }
}

// A Timeline publishes eased progress to its observers on every frame
// between Start and the end of its duration. Observers receive values
// through the embedded Observable; Completion fires once when the duration
// has fully elapsed.
//
// A Timeline is driven from a single goroutine, the one its scheduler runs
// frames on.
type Timeline struct {
	observe.Observable[float64]

	duration  time.Duration
	easing    curve.Easing
	scheduler frame.Scheduler
	clock     frame.Clock

	startedAt time.Time
	stoppedAt time.Time
	running   bool
	token     frame.Token
	cycle     uint64

	completion observe.Observable[struct{}]
}

// New creates a Timeline that eases progress with easing over duration.
func New(easing curve.Easing, duration time.Duration, opts ...Option) (*Timeline, error) {
	if duration <= 0 {
		return nil, errors.Wrapf(ErrDuration, "timeline: %v", duration)
	}

	t := new(Timeline)
	t.duration = duration
	t.easing = easing
	for _, opt := range opts {
		opt(t)
	}

	if t.scheduler == nil {
		return nil, errors.WithStack(ErrNoScheduler)
	}
	if t.clock == nil {
		if c, ok := t.scheduler.(frame.Clock); ok {
			t.clock = c
		} else {
			t.clock = frame.SystemClock{}
		}
	}
	if t.easing == nil {
		t.easing = func(p float64) float64 { return curve.Clamp(p, 0, 1) }
	}

	return t, nil
}

// NewCubic creates a Timeline eased by the bezier with the given
// intermediate control points.
func NewCubic(points [4]float64, duration time.Duration, opts ...Option) (*Timeline, error) {
	return New(curve.CubicPoints(points), duration, opts...)
}

// Start begins a new cycle from progress 0.
func (t *Timeline) Start() error {
	if t.running {
		return errors.WithStack(ErrRunning)
	}
	t.running = true
	t.cycle++
	t.startedAt = t.clock.Now()
	t.token = t.scheduler.RequestFrame(t.tick)
	return nil
}

// Stop halts the timeline. No further frames run after Stop returns.
// Stopping an idle timeline does nothing.
func (t *Timeline) Stop() {
	if !t.running {
		return
	}
	t.scheduler.CancelFrame(t.token)
	t.running = false
	t.stoppedAt = t.clock.Now()
}

// Elapsed returns the time since Start.
func (t *Timeline) Elapsed() time.Duration {
	return t.clock.Now().Sub(t.startedAt)
}

// Progress returns elapsed time as a fraction of the duration. It is not
// clamped.
func (t *Timeline) Progress() float64 {
	return progress(t.Elapsed(), t.duration)
}

// Value returns the eased progress. ok is false unless the timeline is
// running.
func (t *Timeline) Value() (v float64, ok bool) {
	if !t.running {
		return 0, false
	}
	return t.easing(t.Progress()), true
}

func (t *Timeline) tick() {
	elapsed := t.Elapsed()
	cycle := t.cycle
	if elapsed > t.duration {
		// Land exactly on the end regardless of frame timing.
		t.Dispatch(1)
		// An observer may have stopped or restarted the timeline; the run
		// that reached the end is then already over.
		if t.running && t.cycle == cycle {
			t.Stop()
			t.completion.Dispatch(struct{}{})
		}
		return
	}

	t.Dispatch(t.easing(progress(elapsed, t.duration)))
	if t.running && t.cycle == cycle {
		t.token = t.scheduler.RequestFrame(t.tick)
	}
}

func progress(elapsed, duration time.Duration) float64 {
	return float64(elapsed) / float64(duration)
}

// Completion is dispatched once each time the timeline runs to the end.
// Stopping early does not dispatch it.
func (t *Timeline) Completion() *observe.Observable[struct{}] {
	return &t.completion
}

// Running reports whether the timeline is running.
func (t *Timeline) Running() bool { return t.running }

// Duration returns the timeline's duration.
func (t *Timeline) Duration() time.Duration { return t.duration }

// StartedAt returns when the current or last cycle started.
func (t *Timeline) StartedAt() time.Time { return t.startedAt }

// StoppedAt returns when the timeline last stopped.
func (t *Timeline) StoppedAt() time.Time { return t.stoppedAt }
