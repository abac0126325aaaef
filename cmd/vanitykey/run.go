package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/vanitykey/internal/config"
	"github.com/mahdiidarabi/vanitykey/internal/keystore"
	"github.com/mahdiidarabi/vanitykey/internal/progress"
	"github.com/mahdiidarabi/vanitykey/internal/server"
	"github.com/mahdiidarabi/vanitykey/internal/ui"
	"github.com/mahdiidarabi/vanitykey/pkg/keygen"
	"github.com/mahdiidarabi/vanitykey/pkg/vanity"
)

const shutdownTimeout = 5 * time.Second

func runSearch(cmd *cobra.Command, cfg config.File) error {
	out := cmd.OutOrStdout()
	logger := cfg.NewLogger(os.Stderr)

	keyType, err := cfg.KeyTypeValue()
	if err != nil {
		return err
	}
	if err := keygen.ValidatePattern(keyType, cfg.Target, cfg.IgnoreCase); err != nil {
		if !cfg.Force {
			return err
		}
		logger.Warn("Searching for a target that cannot appear", slog.String("error", err.Error()))
	}

	storeOpts := keystore.Options{
		Dir:            cfg.OutDir,
		PrivateKeyFile: cfg.PrivateKeyFile,
		PublicKeyFile:  cfg.PublicKeyFile,
		Comment:        cfg.Comment,
		Force:          cfg.Force,
	}
	if err := keystore.Check(storeOpts, keyType); err != nil {
		return err
	}

	gen, err := keygen.New(keyType)
	if err != nil {
		return err
	}

	search := cfg.Search()
	fmt.Fprintln(out, ui.Banner{
		Target:     cfg.Target,
		IgnoreCase: cfg.IgnoreCase,
		KeyType:    keyType.String(),
		Cores:      runtime.NumCPU(),
		Workers:    search.WorkerCount(),
		Difficulty: keygen.Difficulty(keyType, cfg.Target, cfg.IgnoreCase),
	}.Render())

	ctx, stopSignals := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	reporter := progress.NewText(out, ciMode(cfg, out))
	if cfg.ReportInterval > 0 {
		reporter = reporter.WithInterval(cfg.ReportInterval)
	}

	var (
		searchProgress *vanity.Progress
		status         *server.Server
	)
	if cfg.MetricsAddr != "" {
		status = server.New(cfg.MetricsAddr, server.Status{
			Target:        cfg.Target,
			CaseSensitive: !cfg.IgnoreCase,
			KeyType:       keyType.String(),
		}, logger)
		if err := status.Start(); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := status.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Status server shutdown failed", slog.String("error", err.Error()))
			}
		}()
	}

	client := vanity.NewClient(gen).
		WithConfig(search).
		WithReporter(reporter).
		WithLogger(logger).
		WithObserver(func(id string, p *vanity.Progress, stop *vanity.StopFlag) {
			searchProgress = p
			if status != nil {
				status.Observe(id, p, stop)
			}
		})

	result, err := client.Search(ctx, cfg.Target)
	if err != nil {
		return err
	}

	if !result.Matched() {
		var attempts uint64
		if searchProgress != nil {
			attempts = searchProgress.Total()
		}
		fmt.Fprintln(out, ui.Interrupted(attempts))
		return errInterrupted
	}

	paths, err := keystore.Save(storeOpts, keyType, result)
	if err != nil {
		return err
	}
	logger.Info("Keypair written",
		slog.String("search_id", result.SearchID),
		slog.String("private_key", paths.PrivateKey),
		slog.String("public_key", paths.PublicKey),
	)

	summary := ui.Summary{
		Attempts:       result.Attempts,
		PrivateKeyPath: paths.PrivateKey,
		PublicKeyPath:  paths.PublicKey,
		PublicKey:      string(result.Candidate.PublicText),
	}
	if searchProgress != nil {
		summary.TotalAttempts = searchProgress.Total()
		summary.Elapsed = progress.FormatElapsed(searchProgress.Elapsed())
	}
	fmt.Fprintln(out, summary.Render())
	return nil
}

// ciMode resolves line-per-update rendering: explicit setting first, then
// whether out is a terminal.
func ciMode(cfg config.File, out io.Writer) bool {
	if cfg.CI != nil {
		return *cfg.CI
	}
	if f, ok := out.(*os.File); ok {
		return progress.AutoCI(f)
	}
	return true
}
