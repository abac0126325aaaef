package vanity

import (
	"fmt"
	"runtime"
	"time"
)

const (
	// DefaultBatchSize is the number of attempts a worker makes between
	// publishing progress.
	DefaultBatchSize = 1000

	// DefaultCheckInterval is how often, in attempts, a worker re-checks the
	// stop flag inside a batch.
	DefaultCheckInterval = 100

	// DefaultWorkersPerCPU multiplies runtime.NumCPU for the default pool size.
	DefaultWorkersPerCPU = 3

	// DefaultReportInterval is how often the reporter renders progress.
	DefaultReportInterval = time.Second
)

// SearchConfig configures one search.
type SearchConfig struct {
	// Target is the substring to look for in the encoded public key
	Target string

	// CaseSensitive selects exact matching; false folds ASCII letters
	CaseSensitive bool

	// Workers is the number of concurrent workers (0 = WorkersPerCPU * NumCPU)
	Workers int

	// WorkersPerCPU is used when Workers is 0
	WorkersPerCPU int

	// BatchSize is the number of attempts published to Progress at once
	BatchSize int

	// CheckInterval is the stop flag re-check period inside a batch
	CheckInterval int

	// Timeout stops the search after the given duration (0 = no timeout)
	Timeout time.Duration
}

// DefaultSearchConfig returns a sensible default configuration.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		CaseSensitive: true,
		Workers:       0, // Auto-detect
		WorkersPerCPU: DefaultWorkersPerCPU,
		BatchSize:     DefaultBatchSize,
		CheckInterval: DefaultCheckInterval,
	}
}

// WorkerCount resolves the effective number of workers.
func (c SearchConfig) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	perCPU := c.WorkersPerCPU
	if perCPU <= 0 {
		perCPU = DefaultWorkersPerCPU
	}
	return runtime.NumCPU() * perCPU
}

// Validate reports configuration errors. It is called before any worker is
// spawned.
func (c SearchConfig) Validate() error {
	if c.Target == "" {
		return ErrEmptyTarget
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if c.Workers == 0 && c.WorkersPerCPU < 0 {
		return fmt.Errorf("%w: workers per cpu %d", ErrInvalidWorkers, c.WorkersPerCPU)
	}
	if c.BatchSize <= 0 || c.CheckInterval <= 0 {
		return fmt.Errorf("%w: batch=%d check=%d", ErrInvalidBatch, c.BatchSize, c.CheckInterval)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
