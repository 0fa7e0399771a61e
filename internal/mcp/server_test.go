package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/internal/observability"
	"virtual-team-planner/backend/pkg/models"
)

func newTestServer() *Server {
	return NewServer(catalog.Default(), observability.NewNop(), "test")
}

func call(t *testing.T, h toolHandler, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return text.Text
}

func decodeResult[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	require.False(t, res.IsError, resultText(t, res))
	var v T
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &v))
	return v
}

func TestToolsRegistered(t *testing.T) {
	tools := newTestServer().GetMCPServer().ListTools()
	for _, name := range []string{
		"list_agents", "get_agent", "get_phase", "adjacent_phase",
		"get_workflow", "search_glossary", "list_faq",
	} {
		assert.Contains(t, tools, name)
	}
}

func TestListAgents(t *testing.T) {
	s := newTestServer()

	all := decodeResult[[]models.Agent](t, call(t, s.handleListAgents, nil))
	assert.Len(t, all, 12)

	design := decodeResult[[]models.Agent](t, call(t, s.handleListAgents, map[string]any{"category": "design"}))
	require.Len(t, design, 3)
	assert.Equal(t, "tech-lead", design[0].ID)
}

func TestGetAgent(t *testing.T) {
	s := newTestServer()

	a := decodeResult[models.Agent](t, call(t, s.handleGetAgent, map[string]any{"id": "qms-lead"}))
	assert.Equal(t, models.CategoryCompliance, a.Category)

	res := call(t, s.handleGetAgent, map[string]any{"id": "ghost"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), `"ghost" not found`)

	res = call(t, s.handleGetAgent, map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Missing required parameter: id")
}

func TestAdjacentPhase(t *testing.T) {
	s := newTestServer()

	next := decodeResult[models.Phase](t, call(t, s.handleAdjacentPhase, map[string]any{"id": "qa", "direction": "next"}))
	assert.Equal(t, "compliance", next.ID)

	prev := decodeResult[models.Phase](t, call(t, s.handleAdjacentPhase, map[string]any{"id": "qa", "direction": "previous"}))
	assert.Equal(t, "implementation", prev.ID)

	res := call(t, s.handleAdjacentPhase, map[string]any{"id": "compliance", "direction": "next"})
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "has no next phase")

	res = call(t, s.handleAdjacentPhase, map[string]any{"id": "qa", "direction": "sideways"})
	assert.True(t, res.IsError)
}

func TestGetPhase(t *testing.T) {
	s := newTestServer()
	p := decodeResult[models.Phase](t, call(t, s.handleGetPhase, map[string]any{"id": "design"}))
	assert.Equal(t, 2, p.Order)
	assert.True(t, call(t, s.handleGetPhase, map[string]any{"id": "nope"}).IsError)
}

func TestGetWorkflow(t *testing.T) {
	s := newTestServer()

	w := decodeResult[models.Workflow](t, call(t, s.handleGetWorkflow, map[string]any{"id": "ecommerce-checkout"}))
	assert.Len(t, w.Steps, 6)

	step := decodeResult[models.WorkflowStep](t, call(t, s.handleGetWorkflow, map[string]any{"id": "ecommerce-checkout", "step": float64(3)}))
	assert.Equal(t, "step-3", step.ID)
	assert.False(t, step.QualityCheck.Passed)

	for _, n := range []float64{0, 7, 2.5} {
		res := call(t, s.handleGetWorkflow, map[string]any{"id": "ecommerce-checkout", "step": n})
		assert.True(t, res.IsError, n)
	}
	assert.True(t, call(t, s.handleGetWorkflow, map[string]any{"id": "ghost"}).IsError)
}

func TestSearchGlossaryAndFAQ(t *testing.T) {
	s := newTestServer()

	all := decodeResult[[]models.GlossaryTerm](t, call(t, s.handleSearchGlossary, nil))
	assert.Len(t, all, 8)

	hits := decodeResult[[]models.GlossaryTerm](t, call(t, s.handleSearchGlossary, map[string]any{"query": "pci"}))
	require.NotEmpty(t, hits)
	assert.Equal(t, "pci-dss", hits[0].ID)

	faq := decodeResult[[]models.FAQItem](t, call(t, s.handleListFAQ, map[string]any{"category": "Process"}))
	require.Len(t, faq, 1)
	assert.True(t, strings.Contains(faq[0].Question, "quality gate"))
}

func TestMountHTTPHandlers(t *testing.T) {
	mux := http.NewServeMux()
	MountHTTPHandlers(mux, newTestServer().GetMCPServer(), "/vtp")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vtp/mcp", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSSETransportShutdownEndsStreams(t *testing.T) {
	mux := http.NewServeMux()
	transport := MountHTTPHandlers(mux, newTestServer().GetMCPServer(), "/vtp")
	ts := httptest.NewServer(mux)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/vtp/mcp/sse")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: endpoint", strings.TrimSpace(line))

	require.NoError(t, transport.Shutdown(context.Background()))

	drained := make(chan struct{})
	go func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(5 * time.Second):
		t.Fatal("stream still open after shutdown")
	}
}
