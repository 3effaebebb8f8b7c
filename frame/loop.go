package frame

import (
	"context"
	"sync"
	"time"
)

// Loop is a ticker driven Scheduler. Every tick it runs the callbacks that
// were requested for that frame, then the after-frame hooks. All callbacks
// run on the goroutine that called Run.
type Loop struct {
	clock    Clock
	interval time.Duration

	mu        sync.Mutex
	queue     queue
	cancelled map[Token]bool
	after     []func()
	frames    uint64
}

// NewLoop creates an instance of a Loop ticking frameRate times a second.
func NewLoop(frameRate float64, clock Clock) *Loop {
	l := new(Loop)
	if clock == nil {
		clock = SystemClock{}
	}
	if frameRate <= 0 {
		frameRate = 30
	}
	l.clock = clock
	l.interval = time.Duration(float64(time.Second) / frameRate)
	l.cancelled = make(map[Token]bool)
	return l
}

// Now returns the loop clock's time.
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// Interval is the time between frames.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// RequestFrame queues fn for the next frame. Safe to call from any goroutine.
func (l *Loop) RequestFrame(fn func()) Token {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queue.add(fn)
}

// CancelFrame drops a request. A request cancelled while its frame is
// already running does not run.
func (l *Loop) CancelFrame(t Token) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queue.cancel(t)
	l.cancelled[t] = true
}

// Post runs fn on the loop goroutine during the next frame.
func (l *Loop) Post(fn func()) {
	l.RequestFrame(fn)
}

// AfterFrame adds a hook that runs at the end of every frame.
func (l *Loop) AfterFrame(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.after = append(l.after, fn)
}

// Frames returns the number of frames run so far.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// Step runs a single frame.
func (l *Loop) Step() {
	l.mu.Lock()
	batch := l.queue.take()
	l.cancelled = make(map[Token]bool)
	after := l.after
	l.frames++
	l.mu.Unlock()

	for _, r := range batch {
		if l.isCancelled(r.token) {
			continue
		}
		r.fn()
	}
	for _, fn := range after {
		fn()
	}
}

func (l *Loop) isCancelled(t Token) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancelled[t]
}

// Run steps frames until ctx is done.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Step()
		}
	}
}
