package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "workbench/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_MiddlewareLabelsRouteTemplate(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware)
	e.DELETE("/api/comments/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrCommentNotFound
		}

		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	})

	for _, id := range []string{"a", "b", "missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/comments/"+id, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues("DELETE", "/api/comments/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("DELETE", "/api/comments/:id", "404")), 0)
}

func TestMetrics_ObserveUpstream(t *testing.T) {
	m := New()

	m.ObserveUpstream("xaman", nil)
	m.ObserveUpstream("xaman", errors.New("boom"))
	m.ObserveUpstream("xaman", errors.New("boom"))

	assert.InDelta(t, 1, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("xaman", OutcomeSuccess)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("xaman", OutcomeError)), 0)

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveUpstream("xaman", nil) })
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveUpstream("openai", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `workbench_upstream_requests_total{outcome="success",upstream="openai"} 1`))
}
