package httpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-orchestrator/config"
	"task-orchestrator/internal/orchestrator"
	"task-orchestrator/pkg/log"
	"task-orchestrator/pkg/metrics"
)

type stubUseCase struct{}

func (stubUseCase) Dispatch(ctx context.Context, input orchestrator.DispatchInput) (orchestrator.Envelope, error) {
	return orchestrator.Envelope{}, nil
}

func (stubUseCase) Classify(ctx context.Context, input orchestrator.ClassifyInput) (orchestrator.ClassifyOutput, error) {
	return orchestrator.ClassifyOutput{}, nil
}

func newTestServer(t *testing.T, port int) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:            port,
		Mode:            gin.TestMode,
		Environment:     "test",
		ShutdownTimeout: time.Second,
		AppConfig:       &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"*"}}},
		Metrics:         metrics.New("test"),
		OrchestratorUC:  stubUseCase{},
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, AppConfig: &config.Config{}, OrchestratorUC: stubUseCase{}})
	assert.EqualError(t, err, "port is required")

	_, err = New(log.NewNop(), Config{Port: 8001, Mode: gin.TestMode, AppConfig: &config.Config{}})
	assert.EqualError(t, err, "orchestrator usecase is required")

	_, err = New(nil, Config{Port: 8001, Mode: gin.TestMode})
	assert.EqualError(t, err, "logger is required")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, 8001)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"), path)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "orchestrator_http_requests_total")

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRun_GracefulShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	srv := newTestServer(t, port)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/live", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get(url)
	assert.Error(t, err)
}
