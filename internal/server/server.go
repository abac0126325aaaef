// Package server exposes search progress and Prometheus metrics over HTTP
// while a search runs.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mahdiidarabi/vanitykey/pkg/vanity"
)

// Status is the /status response body.
type Status struct {
	SearchID       string  `json:"search_id"`
	Target         string  `json:"target"`
	CaseSensitive  bool    `json:"case_sensitive"`
	KeyType        string  `json:"key_type"`
	Attempts       uint64  `json:"attempts"`
	Rate           float64 `json:"rate"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Stopped        bool    `json:"stopped"`
	Running        bool    `json:"running"`
}

// Server serves /metrics, /healthz and /status.
type Server struct {
	srv    *http.Server
	router *gin.Engine
	logger *slog.Logger

	mu       sync.RWMutex
	info     Status
	progress *vanity.Progress
	stop     *vanity.StopFlag
}

// New creates a server for addr. It does not listen until Start.
func New(addr string, info Status, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router: router,
		logger: logger.With(slog.String("component", "status_server")),
		info:   info,
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/status", s.handleStatus)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Observe attaches a running search. It matches the vanity.Client observer
// signature.
func (s *Server) Observe(searchID string, progress *vanity.Progress, stop *vanity.StopFlag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info.SearchID = searchID
	s.progress = progress
	s.stop = stop
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	s.logger.Info("Status server listening", slog.String("addr", ln.Addr().String()))
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Status server failed", slog.String("error", err.Error()))
		}
	}()
	return nil
}

// Shutdown stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleStatus(c *gin.Context) {
	s.mu.RLock()
	status := s.info
	progress, stop := s.progress, s.stop
	s.mu.RUnlock()

	if progress != nil {
		status.Attempts = progress.Total()
		status.Rate = progress.Rate()
		status.ElapsedSeconds = progress.Elapsed().Seconds()
	}
	if stop != nil {
		status.Stopped = stop.Stopped()
		status.Running = !status.Stopped
	}
	c.JSON(http.StatusOK, status)
}
