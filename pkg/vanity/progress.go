package vanity

import (
	"sync/atomic"
	"time"
)

// Progress is the shared attempt counter of one search.
//
// Workers publish whole batches with Add, so Total may lag behind the true
// number of attempts by at most one batch per running worker. The value is
// telemetry only; no correctness decision depends on it.
type Progress struct {
	attempts atomic.Uint64
	start    time.Time
}

// NewProgress creates a counter whose clock starts now.
func NewProgress() *Progress {
	return &Progress{start: time.Now()}
}

// Add increases the attempt total by n. Safe for concurrent use.
func (p *Progress) Add(n uint64) {
	p.attempts.Add(n)
}

// Total returns the published attempt total.
func (p *Progress) Total() uint64 {
	return p.attempts.Load()
}

// Elapsed returns the time since the counter was created.
func (p *Progress) Elapsed() time.Duration {
	return time.Since(p.start)
}

// StartedAt returns the creation instant.
func (p *Progress) StartedAt() time.Time {
	return p.start
}

// Rate returns the average attempts per second since creation, 0 when no time
// has elapsed.
func (p *Progress) Rate() float64 {
	secs := p.Elapsed().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(p.Total()) / secs
}
