package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-orchestrator/pkg/metrics"
)

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New("test")

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/ping/:id", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, id := range []string{"1", "2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/"+id, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	m.RecordClassification("creative", "text")
	m.RecordClassification("informational", "")
	m.ObserveDispatch("generate_text", 20*time.Millisecond)
	m.RecordHandlerFailure("generate_image")
	m.RecordRateLimited()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `orchestrator_http_requests_total{method="GET",path="/ping/:id",service="test",status="200"} 2`)
	assert.Contains(t, body, `orchestrator_classifier_classifications_total{category="creative",service="test",subcategory="text"} 1`)
	assert.Contains(t, body, `orchestrator_classifier_classifications_total{category="informational",service="test",subcategory="none"} 1`)
	assert.Contains(t, body, `orchestrator_dispatcher_handler_failures_total{action="generate_image",service="test"} 1`)
	assert.Contains(t, body, "orchestrator_dispatcher_dispatch_duration_seconds_count")
	assert.True(t, strings.Contains(body, "orchestrator_http_rate_limited_total"))

	count, err := testutil.GatherAndCount(m.Registry(), "orchestrator_http_requests_total")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 1)
}
