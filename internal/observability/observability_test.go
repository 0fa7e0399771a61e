package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}
	return totals
}

func TestMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	require.NoError(t, err)

	ctx := context.Background()
	m.PageRendered(ctx, "agent-detail", http.StatusOK)
	m.PageRendered(ctx, "agent-detail", http.StatusNotFound)
	m.APIRequest(ctx, "/agents", http.StatusOK)
	m.ToolCalled(ctx, "get_agent", true)

	totals := collect(t, reader)
	assert.Equal(t, int64(2), totals["vtp.page.renders"])
	assert.Equal(t, int64(1), totals["vtp.api.requests"])
	assert.Equal(t, int64(1), totals["vtp.mcp.tool_calls"])
}

func TestNopAndTracing(t *testing.T) {
	m := NewNop()
	m.PageRendered(context.Background(), "home", http.StatusOK)

	e := echo.New()
	e.Use(Tracing("vtp-test"))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestNopIgnoresGlobalProvider(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(mp)
	t.Cleanup(func() {
		otel.SetMeterProvider(prev)
		_ = mp.Shutdown(context.Background())
	})

	m := NewNop()
	ctx := context.Background()
	m.PageRendered(ctx, "home", http.StatusOK)
	m.APIRequest(ctx, "/agents", http.StatusOK)
	m.ToolCalled(ctx, "get_agent", false)

	assert.Empty(t, collect(t, reader))
}
