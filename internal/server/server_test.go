package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/vanitykey/pkg/vanity"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New("127.0.0.1:0", Status{Target: "AAAA", CaseSensitive: true, KeyType: "ed25519"}, logger)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestStatus_BeforeSearch(t *testing.T) {
	s := newTestServer()
	rec := get(t, s, "/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var status Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "AAAA", status.Target)
	assert.False(t, status.Running)
	assert.Zero(t, status.Attempts)
}

func TestStatus_LiveSearch(t *testing.T) {
	s := newTestServer()
	progress := vanity.NewProgress()
	stop := vanity.NewStopFlag()
	s.Observe("search-1", progress, stop)
	progress.Add(3000)

	var status Status
	require.NoError(t, json.Unmarshal(get(t, s, "/status").Body.Bytes(), &status))
	assert.Equal(t, "search-1", status.SearchID)
	assert.Equal(t, uint64(3000), status.Attempts)
	assert.True(t, status.Running)

	stop.Stop()
	require.NoError(t, json.Unmarshal(get(t, s, "/status").Body.Bytes(), &status))
	assert.True(t, status.Stopped)
	assert.False(t, status.Running)
}

func TestHealthzAndMetrics(t *testing.T) {
	s := newTestServer()
	assert.Equal(t, http.StatusOK, get(t, s, "/healthz").Code)

	rec := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "vanity_search_attempts_total")
}
