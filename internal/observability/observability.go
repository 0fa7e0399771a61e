// Package observability wires OpenTelemetry into the server: request
// tracing through otelecho and counters for rendered pages and MCP tool
// calls. Without a configured provider the global no-op one is used, so
// instrumentation costs nothing unless an exporter is installed.
package observability

import (
	"context"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "virtual-team-planner/backend"

// Metrics holds the counters recorded by page, API and MCP handlers.
type Metrics struct {
	pageRenders metric.Int64Counter
	apiRequests metric.Int64Counter
	toolCalls   metric.Int64Counter
}

// NewMetrics registers the counters on mp, or on the global provider when
// mp is nil.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	pageRenders, err := meter.Int64Counter("vtp.page.renders",
		metric.WithDescription("Pages rendered, by page and HTTP status"))
	if err != nil {
		return nil, fmt.Errorf("create page counter: %w", err)
	}
	apiRequests, err := meter.Int64Counter("vtp.api.requests",
		metric.WithDescription("JSON API responses, by endpoint and HTTP status"))
	if err != nil {
		return nil, fmt.Errorf("create api counter: %w", err)
	}
	toolCalls, err := meter.Int64Counter("vtp.mcp.tool_calls",
		metric.WithDescription("MCP tool invocations, by tool and outcome"))
	if err != nil {
		return nil, fmt.Errorf("create tool counter: %w", err)
	}
	return &Metrics{pageRenders: pageRenders, apiRequests: apiRequests, toolCalls: toolCalls}, nil
}

// NewNop returns Metrics that record nothing.
func NewNop() *Metrics {
	m, err := NewMetrics(noop.NewMeterProvider())
	if err != nil {
		panic(err)
	}
	return m
}

// PageRendered counts one rendered page.
func (m *Metrics) PageRendered(ctx context.Context, page string, status int) {
	m.pageRenders.Add(ctx, 1, metric.WithAttributes(
		attribute.String("page", page),
		attribute.String("status", strconv.Itoa(status)),
	))
}

// APIRequest counts one JSON API response.
func (m *Metrics) APIRequest(ctx context.Context, endpoint string, status int) {
	m.apiRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("status", strconv.Itoa(status)),
	))
}

// ToolCalled counts one MCP tool invocation.
func (m *Metrics) ToolCalled(ctx context.Context, tool string, ok bool) {
	m.toolCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.Bool("ok", ok),
	))
}

// Tracing returns the echo middleware that starts a span per request.
func Tracing(service string) echo.MiddlewareFunc {
	return otelecho.Middleware(service)
}
