package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/internal/observability"
	"virtual-team-planner/backend/pkg/models"
)

// Server exposes the catalog accessors as MCP tools.
type Server struct {
	mcpServer *server.MCPServer
	catalog   *catalog.Catalog
	metrics   *observability.Metrics
}

func NewServer(c *catalog.Catalog, metrics *observability.Metrics, version string) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(
			"Virtual Team Planner",
			version,
			server.WithToolCapabilities(false),
		),
		catalog: c,
		metrics: metrics,
	}

	s.registerTools()
	return s
}

func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

type toolHandler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

func (s *Server) instrument(name string, h toolHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := h(ctx, request)
		s.metrics.ToolCalled(ctx, name, err == nil && res != nil && !res.IsError)
		return res, err
	}
}

func categoryNames() []string {
	out := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		out[i] = string(c)
	}
	return out
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"list_agents",
			mcp.WithDescription("List the agents of the virtual team, optionally only those in one category"),
			mcp.WithString("category", mcp.Description("Agent category"), mcp.Enum(categoryNames()...)),
		),
		s.instrument("list_agents", s.handleListAgents),
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"get_agent",
			mcp.WithDescription("Get one agent with its capabilities, phases and related agents"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Agent ID, e.g. product-owner")),
		),
		s.instrument("get_agent", s.handleGetAgent),
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"get_phase",
			mcp.WithDescription("Get one lifecycle phase with its objectives, deliverables and quality gate"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Phase ID, e.g. discovery")),
		),
		s.instrument("get_phase", s.handleGetPhase),
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"adjacent_phase",
			mcp.WithDescription("Get the phase before or after a given phase"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Phase ID")),
			mcp.WithString("direction", mcp.Required(), mcp.Enum("next", "previous")),
		),
		s.instrument("adjacent_phase", s.handleAdjacentPhase),
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"get_workflow",
			mcp.WithDescription("Get an example workflow, or a single step of it"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Workflow ID, e.g. ecommerce-checkout")),
			mcp.WithNumber("step", mcp.Description("1-based step number")),
		),
		s.instrument("get_workflow", s.handleGetWorkflow),
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"search_glossary",
			mcp.WithDescription("Search glossary terms by name or definition; an empty query returns every term"),
			mcp.WithString("query", mcp.Description("Case-insensitive text to look for")),
		),
		s.instrument("search_glossary", s.handleSearchGlossary),
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"list_faq",
			mcp.WithDescription("List frequently asked questions, optionally in one category"),
			mcp.WithString("category", mcp.Description("FAQ category, e.g. General")),
		),
		s.instrument("list_faq", s.handleListFAQ),
	)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func requireID(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	id := request.GetString("id", "")
	if id == "" {
		return "", mcp.NewToolResultError("Missing required parameter: id")
	}
	return id, nil
}

func (s *Server) handleListAgents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if category := request.GetString("category", ""); category != "" {
		return jsonResult(s.catalog.AgentsByCategory(category))
	}
	return jsonResult(s.catalog.Agents())
}

func (s *Server) handleGetAgent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireID(request)
	if errResult != nil {
		return errResult, nil
	}
	a, ok := s.catalog.Agent(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Agent %q not found", id)), nil
	}
	return jsonResult(a)
}

func (s *Server) handleGetPhase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireID(request)
	if errResult != nil {
		return errResult, nil
	}
	p, ok := s.catalog.Phase(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Phase %q not found", id)), nil
	}
	return jsonResult(p)
}

func (s *Server) handleAdjacentPhase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireID(request)
	if errResult != nil {
		return errResult, nil
	}
	if _, ok := s.catalog.Phase(id); !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Phase %q not found", id)), nil
	}

	var (
		p  *models.Phase
		ok bool
	)
	switch direction := request.GetString("direction", ""); direction {
	case "next":
		p, ok = s.catalog.NextPhase(id)
	case "previous":
		p, ok = s.catalog.PreviousPhase(id)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Invalid direction %q: use next or previous", direction)), nil
	}
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("Phase %q has no %s phase", id, request.GetString("direction", ""))), nil
	}
	return jsonResult(p)
}

func (s *Server) handleGetWorkflow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := requireID(request)
	if errResult != nil {
		return errResult, nil
	}
	w, ok := s.catalog.Workflow(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Workflow %q not found", id)), nil
	}

	n, hasStep := request.GetArguments()["step"].(float64)
	if !hasStep {
		return jsonResult(w)
	}
	step, ok := s.catalog.Step(w, int(n))
	if !ok || n != float64(int(n)) {
		return mcp.NewToolResultError(fmt.Sprintf("Workflow %q has no step %v", id, n)), nil
	}
	return jsonResult(step)
}

func (s *Server) handleSearchGlossary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.catalog.SearchGlossary(request.GetString("query", "")))
}

func (s *Server) handleListFAQ(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if category := request.GetString("category", ""); category != "" {
		return jsonResult(s.catalog.FAQByCategory(category))
	}
	return jsonResult(s.catalog.FAQItems())
}

// SSETransport is the mounted SSE transport. Its open streams end when
// Shutdown is called.
type SSETransport struct {
	sse  *server.SSEServer
	stop context.CancelFunc
	// streams is cancelled by Shutdown.
	streams context.Context
}

// MountHTTPHandlers serves the SSE transport under basePath+"/mcp".
func MountHTTPHandlers(mux *http.ServeMux, mcpServer *server.MCPServer, basePath string) *SSETransport {
	prefix := basePath + "/mcp"
	streams, stop := context.WithCancel(context.Background())
	t := &SSETransport{
		sse:     server.NewSSEServer(mcpServer, server.WithStaticBasePath(prefix)),
		streams: streams,
		stop:    stop,
	}

	mux.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		// Direct POST for tool calls
		if r.Method == http.MethodPost {
			t.sse.ServeHTTP(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// SSE endpoints
	mux.HandleFunc(prefix+"/sse", t.serveStream)
	mux.HandleFunc(prefix+"/message", t.sse.ServeHTTP)
	return t
}

// serveStream runs an event stream until the client leaves or the transport
// shuts down. Streams outlive the server write timeout.
func (t *SSETransport) serveStream(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	stop := context.AfterFunc(t.streams, cancel)
	defer stop()

	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})
	t.sse.ServeHTTP(w, r.WithContext(ctx))
}

// Shutdown ends every open stream. Streams opened afterwards end at once.
// SSEServer.Shutdown is not used: it only reaches sessions of a server it
// started itself.
func (t *SSETransport) Shutdown(context.Context) error {
	t.stop()
	return nil
}
