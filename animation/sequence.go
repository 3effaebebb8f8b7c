package animation

import (
	"log"

	"github.com/matt-g-everett/ledtween/timeline"
	"github.com/pkg/errors"
)

// Sequence plays animations one after another. Each step starts from the
// completion of the one before, on the same frame, after the previous
// step's final values have been written.
type Sequence struct {
	steps   []*Animation
	loop    bool
	current int
	running bool
	done    chan struct{}
	logger  *log.Logger
}

// NewSequence creates an instance of a Sequence. With loop set the sequence
// starts over after its last step until stopped.
func NewSequence(loop bool, steps ...*Animation) *Sequence {
	s := new(Sequence)
	s.steps = steps
	s.loop = loop
	s.logger = log.Default()
	for _, step := range steps {
		step.Completion().Register(s, s.advance)
	}
	return s
}

// Start plays the sequence from its first step. The returned channel is
// closed when the last step completes; a looping sequence never closes it.
func (s *Sequence) Start() (<-chan struct{}, error) {
	if s.running {
		return nil, errors.WithStack(timeline.ErrRunning)
	}
	s.done = make(chan struct{})
	s.current = 0
	if len(s.steps) == 0 {
		close(s.done)
		return s.done, nil
	}

	s.running = true
	if _, err := s.steps[0].Start(); err != nil {
		s.running = false
		return nil, errors.Wrap(err, "sequence step 0")
	}
	return s.done, nil
}

func (s *Sequence) advance(struct{}) {
	if !s.running {
		return
	}

	s.current++
	if s.current == len(s.steps) {
		if !s.loop {
			s.running = false
			close(s.done)
			return
		}
		s.current = 0
	}

	if _, err := s.steps[s.current].Start(); err != nil {
		s.logger.Printf("sequence: step %d: %v", s.current, err)
		s.running = false
	}
}

// Stop halts the step that is playing.
func (s *Sequence) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.steps[s.current].Stop()
}

// Running reports whether the sequence is playing.
func (s *Sequence) Running() bool {
	return s.running
}

// Current returns the index of the step playing, or that played last.
func (s *Sequence) Current() int {
	return s.current
}

// Len returns the number of steps.
func (s *Sequence) Len() int {
	return len(s.steps)
}
