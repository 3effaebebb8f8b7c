package frame

import "time"

// Manual is a Scheduler and Clock that only moves when told to. It makes
// timeline behaviour deterministic in tests.
type Manual struct {
	now       time.Time
	queue     queue
	cancelled map[Token]bool
}

// NewManual creates a Manual whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start, cancelled: make(map[Token]bool)}
}

// Now returns the manual clock's time.
func (m *Manual) Now() time.Time {
	return m.now
}

// RequestFrame queues fn for the next Step.
func (m *Manual) RequestFrame(fn func()) Token {
	return m.queue.add(fn)
}

// CancelFrame drops a queued request.
func (m *Manual) CancelFrame(t Token) {
	m.queue.cancel(t)
	m.cancelled[t] = true
}

// Pending returns the number of queued requests.
func (m *Manual) Pending() int {
	return len(m.queue.pending)
}

// Step runs the frame requests queued so far. Requests made while the frame
// runs wait for the next Step.
func (m *Manual) Step() {
	batch := m.queue.take()
	m.cancelled = make(map[Token]bool)
	for _, r := range batch {
		if m.cancelled[r.token] {
			continue
		}
		r.fn()
	}
}

// Advance moves the clock forward by d and runs one frame.
func (m *Manual) Advance(d time.Duration) {
	m.now = m.now.Add(d)
	m.Step()
}

// Set moves the clock to t without running a frame.
func (m *Manual) Set(t time.Time) {
	m.now = t
}
