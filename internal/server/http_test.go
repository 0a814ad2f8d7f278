package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"assembly-server/internal/discovery"
	"assembly-server/internal/engine"
	"assembly-server/pkg/catalog"
	"assembly-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cache := discovery.NewCache(nil)
	svc := engine.NewService(
		engine.NewConfig(),
		engine.SystemClock(),
		catalog.Default(),
		discovery.NewResolver(cache, nil),
		cache,
	)
	return New(svc, "0")
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestHandleVersion(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.handleVersion(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
}

func TestDebugStats(t *testing.T) {
	s := newTestServer(t)
	h := NewDebugHandler(s.Engine)

	rec := httptest.NewRecorder()
	h.handleStats(rec, httptest.NewRequest(http.MethodGet, "/debug/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		Tick     uint64 `json:"tick"`
		Spawners int    `json:"spawners"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Zero(t, stats.Tick)
	require.Zero(t, stats.Spawners)
}

func TestDebugState(t *testing.T) {
	s := newTestServer(t)
	h := NewDebugHandler(s.Engine)

	rec := httptest.NewRecorder()
	h.handleState(rec, httptest.NewRequest(http.MethodGet, "/debug/state", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var state map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.Equal(t, "DEBUG", state["type"])
}
