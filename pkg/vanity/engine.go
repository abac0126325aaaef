package vanity

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Engine is the worker pool. It is stateless between runs, so one Engine can
// serve several concurrent searches as long as each run has its own Progress
// and StopFlag.
type Engine struct {
	workers       int
	batchSize     int
	checkInterval int
	gen           Generator
	reporter      Reporter
	logger        *slog.Logger
}

// NewEngine creates a pool from a validated configuration.
func NewEngine(cfg SearchConfig, gen Generator, reporter Reporter, logger *slog.Logger) (*Engine, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, cfg.Workers)
	}
	if cfg.BatchSize <= 0 || cfg.CheckInterval <= 0 {
		return nil, fmt.Errorf("%w: batch=%d check=%d", ErrInvalidBatch, cfg.BatchSize, cfg.CheckInterval)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		workers:       cfg.WorkerCount(),
		batchSize:     cfg.BatchSize,
		checkInterval: cfg.CheckInterval,
		gen:           gen,
		reporter:      reporter,
		logger:        logger.With(slog.String("component", "vanity_engine")),
	}, nil
}

// Workers returns the pool size.
func (e *Engine) Workers() int {
	return e.workers
}

// Run spawns the workers and the reporter and blocks until a worker matches
// or every worker has returned.
//
// The first result received wins; the flag is latched and later matches are
// dropped. When all workers return without a match the result is cancelled.
// If that happened because every generator failed, the error wraps
// ErrWorkersExhausted and the first generation failure.
func (e *Engine) Run(target *Target, progress *Progress, stop *StopFlag) (*Result, error) {
	if target == nil {
		return nil, ErrEmptyTarget
	}

	// Buffered so late winners never block on a result nobody reads.
	results := make(chan *Result, e.workers)
	var failed atomic.Int64
	var g errgroup.Group

	for i := 0; i < e.workers; i++ {
		w := &worker{
			id:            i,
			target:        target,
			gen:           e.gen,
			progress:      progress,
			stop:          stop,
			batchSize:     uint64(e.batchSize),
			checkInterval: uint64(e.checkInterval),
		}
		workersActive.Inc()
		g.Go(func() error {
			defer workersActive.Dec()
			res, err := w.run()
			if err != nil {
				failed.Add(1)
				workerFailures.Inc()
				e.logger.Warn("Worker stopped", slog.Int("worker", w.id), slog.String("error", err.Error()))
				return err
			}
			if res != nil {
				results <- res
			}
			return nil
		})
	}

	var reporterWG sync.WaitGroup
	if e.reporter != nil {
		reporterWG.Add(1)
		go func() {
			defer reporterWG.Done()
			e.reporter.Report(progress, stop)
		}()
	}

	var waitErr error
	done := make(chan struct{})
	go func() {
		waitErr = g.Wait()
		close(done)
	}()

	var result *Result
	select {
	case result = <-results:
	case <-done:
		// A worker may have delivered its match just before the pool drained.
		select {
		case result = <-results:
		default:
		}
	}

	stop.Stop()
	<-done
	reporterWG.Wait()

	if result != nil {
		searchMatches.Inc()
		e.logger.Info("Match found",
			slog.Int("worker", result.WorkerID),
			slog.Uint64("attempts", result.Attempts),
		)
		return result, nil
	}

	if int(failed.Load()) == e.workers {
		return cancelledResult(), errors.Join(ErrWorkersExhausted, waitErr)
	}
	e.logger.Info("Search cancelled", slog.Uint64("attempts", progress.Total()))
	return cancelledResult(), nil
}
