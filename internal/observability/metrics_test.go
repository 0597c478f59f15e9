package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetrics_RecordsByLabels(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/user/:ID", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.RecordRequest("/api/user/:ID", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.RecordError("/api/user/:ID", http.MethodGet, "NOT_FOUND")
	m.RecordAuthRejection("expired")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/user/:ID", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("/api/user/:ID", http.MethodGet, "NOT_FOUND")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authRejections.WithLabelValues("expired")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", http.MethodGet, http.StatusOK, time.Millisecond)
		m.RecordError("/", http.MethodGet, "X")
		m.RecordAuthRejection("x")
	})
}

func TestRequestLogger_UsesRoutePattern(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), m))
	app.Get("/api/product/:ID", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/product/abc", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/product/:ID", http.MethodGet, "204")))
}
