package vanity

import (
	"sync"
	"sync/atomic"
)

// StopFlag is the single cancellation signal of a search.
//
// It is a latch: once Stop has been called, Stopped returns true forever. A
// match, an external interrupt, a timeout and the engine collecting a result
// all set the same flag, so every worker and the reporter treat them alike.
// Workers poll Stopped in their hot loop; Done is for goroutines that would
// rather block.
type StopFlag struct {
	stopped atomic.Bool
	once    sync.Once
	done    chan struct{}
}

// NewStopFlag creates an unset flag.
func NewStopFlag() *StopFlag {
	return &StopFlag{done: make(chan struct{})}
}

// Stop latches the flag. Safe to call multiple times and from any goroutine.
func (s *StopFlag) Stop() {
	s.stopped.Store(true)
	s.once.Do(func() { close(s.done) })
}

// Stopped reports whether Stop has been called.
func (s *StopFlag) Stopped() bool {
	return s.stopped.Load()
}

// Done returns a channel closed by the first Stop.
func (s *StopFlag) Done() <-chan struct{} {
	return s.done
}
