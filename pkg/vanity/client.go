package vanity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("vanitykey.search")

// Client provides a high-level API for vanity key searches.
type Client struct {
	config    SearchConfig
	generator Generator
	reporter  Reporter
	logger    *slog.Logger
	observer  func(searchID string, progress *Progress, stop *StopFlag)
}

// NewClient creates a new client with default settings.
func NewClient(gen Generator) *Client {
	return &Client{
		config:    DefaultSearchConfig(),
		generator: gen,
		logger:    slog.Default(),
	}
}

// WithConfig sets the search configuration. Target in cfg is ignored by
// Search, which takes the pattern explicitly.
func (c *Client) WithConfig(cfg SearchConfig) *Client {
	c.config = cfg
	return c
}

// WithGenerator sets a custom candidate generator.
func (c *Client) WithGenerator(gen Generator) *Client {
	c.generator = gen
	return c
}

// WithReporter sets the progress reporter. A nil reporter disables reporting.
func (c *Client) WithReporter(r Reporter) *Client {
	c.reporter = r
	return c
}

// WithLogger sets the logger.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// WithObserver registers a callback invoked once per search, before the
// workers start, with the live counter and flag. The status server uses it.
func (c *Client) WithObserver(fn func(searchID string, progress *Progress, stop *StopFlag)) *Client {
	c.observer = fn
	return c
}

// Config returns the current configuration.
func (c *Client) Config() SearchConfig {
	return c.config
}

// Search looks for a key whose public text contains pattern.
//
// Args:
//   - ctx: Cancelling ctx (interrupt, deadline) latches the stop flag.
//   - pattern: Non-empty target substring.
//
// Returns:
//   - A matched or cancelled Result. Errors are reserved for configuration
//     problems and for the case where every worker's generator failed.
func (c *Client) Search(ctx context.Context, pattern string) (*Result, error) {
	cfg := c.config
	cfg.Target = pattern
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search configuration: %w", err)
	}

	target, err := NewTarget(cfg.Target, cfg.CaseSensitive)
	if err != nil {
		return nil, err
	}

	searchID := uuid.NewString()
	logger := c.logger.With(slog.String("search_id", searchID))

	engine, err := NewEngine(cfg, c.generator, c.reporter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	ctx, span := tracer.Start(ctx, "vanity.Search", trace.WithAttributes(
		attribute.String("search.id", searchID),
		attribute.Int("search.pattern_length", len(pattern)),
		attribute.Bool("search.case_sensitive", cfg.CaseSensitive),
		attribute.Int("search.workers", engine.Workers()),
	))
	defer span.End()

	progress := NewProgress()
	stop := NewStopFlag()

	// Context cancellation and a match share one stop signal.
	go func() {
		select {
		case <-ctx.Done():
			logger.Info("Stop requested", slog.String("reason", context.Cause(ctx).Error()))
			stop.Stop()
		case <-stop.Done():
		}
	}()

	if c.observer != nil {
		c.observer(searchID, progress, stop)
	}

	logger.Info("Starting vanity key search",
		slog.String("target", pattern),
		slog.Bool("case_sensitive", cfg.CaseSensitive),
		slog.Int("workers", engine.Workers()),
		slog.Int("batch_size", cfg.BatchSize),
	)

	start := time.Now()
	result, runErr := engine.Run(target, progress, stop)
	elapsed := time.Since(start)

	outcome := result.Outcome.String()
	if runErr != nil {
		outcome = "failed"
		span.RecordError(runErr)
		span.SetStatus(codes.Error, runErr.Error())
	}
	searchDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	span.SetAttributes(
		attribute.String("search.outcome", outcome),
		attribute.Int64("search.attempts", int64(progress.Total())),
	)

	result.SearchID = searchID
	if runErr != nil {
		return result, fmt.Errorf("search %s: %w", searchID, runErr)
	}
	return result, nil
}
