// Package frame provides the per-frame scheduling primitive and clock that
// timelines are driven by.
package frame

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Token identifies a pending frame request so it can be cancelled.
type Token uint64

// A Scheduler runs callbacks on the next frame.
type Scheduler interface {
	// RequestFrame queues fn to run once on the next frame.
	RequestFrame(fn func()) Token
	// CancelFrame drops a queued request. Unknown tokens are ignored.
	CancelFrame(t Token)
}

type request struct {
	token Token
	fn    func()
}

// queue holds frame requests in the order they were made.
type queue struct {
	next    Token
	pending []request
}

func (q *queue) add(fn func()) Token {
	q.next++
	q.pending = append(q.pending, request{token: q.next, fn: fn})
	return q.next
}

func (q *queue) cancel(t Token) {
	for i, r := range q.pending {
		if r.token == t {
			q.pending = append(q.pending[:i:i], q.pending[i+1:]...)
			return
		}
	}
}

// take empties the queue and returns what was in it.
func (q *queue) take() []request {
	batch := q.pending
	q.pending = nil
	return batch
}
