// Package pages holds one echo handler per route. Each handler reads the
// catalog, builds the view data and renders it inside the site shell.
// Detail pages have exactly two states: Found renders the record, NotFound
// renders a "<Kind> Not Found" page with a single way back and status 404.
package pages

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/internal/logging"
	"virtual-team-planner/backend/internal/observability"
	"virtual-team-planner/backend/internal/routes"
	"virtual-team-planner/backend/internal/views"
)

// Handler serves the HTML pages.
type Handler struct {
	catalog  *catalog.Catalog
	basePath string
	metrics  *observability.Metrics
	logger   *logging.Logger
}

// NewHandler creates a Handler. basePath is the prefix every site route
// is served under ("" for the root).
func NewHandler(c *catalog.Catalog, basePath string, metrics *observability.Metrics, logger *logging.Logger) *Handler {
	return &Handler{catalog: c, basePath: basePath, metrics: metrics, logger: logger}
}

// Register mounts every route of routes.Table on g.
func (h *Handler) Register(g *echo.Group) {
	handlers := map[routes.Page]echo.HandlerFunc{
		routes.PageHome:           h.Home,
		routes.PageAgents:         h.Agents,
		routes.PageAgentDetail:    h.AgentDetail,
		routes.PageLifecycle:      h.Lifecycle,
		routes.PagePhaseDetail:    h.PhaseDetail,
		routes.PageExamples:       h.Examples,
		routes.PageWorkflowDetail: h.WorkflowDetail,
		routes.PageWorkflowStep:   h.WorkflowStep,
		routes.PageInteractive:    h.Interactive,
		routes.PageResources:      h.Resources,
		routes.PageGlossary:       h.Glossary,
		routes.PageNotFound:       h.NotFound,
	}
	for _, r := range routes.Table {
		fn, ok := handlers[r.Page]
		if !ok {
			panic(fmt.Sprintf("pages: no handler for %s", r.Page))
		}
		if r.Pattern == "/" {
			g.GET("", fn)
		}
		g.GET(r.Pattern, fn)
	}
}

func (h *Handler) render(c echo.Context, status int, page routes.Page, tmpl, title string, data any) error {
	h.metrics.PageRendered(c.Request().Context(), string(page), status)
	return c.Render(status, tmpl, &views.Page{
		Title: title,
		Path:  routes.StripBase(h.basePath, c.Request().URL.Path),
		Data:  data,
	})
}

func (h *Handler) missing(c echo.Context, page routes.Page, data *views.MissingData) error {
	return h.render(c, http.StatusNotFound, page, views.TemplateMissing, data.Kind+" Not Found", data)
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(c echo.Context) error {
	return h.render(c, http.StatusNotFound, routes.PageNotFound, views.TemplateNotFound, "Page Not Found", nil)
}

// Error renders the 500 page. It is used by the server's error handler
// once the error has been logged.
func (h *Handler) Error(c echo.Context) error {
	id := c.Response().Header().Get(echo.HeaderXRequestID)
	return h.render(c, http.StatusInternalServerError, "error", views.TemplateError, "Error",
		&views.ErrorData{RequestID: id})
}

// Interactive renders the explorer placeholder.
func (h *Handler) Interactive(c echo.Context) error {
	return h.render(c, http.StatusOK, routes.PageInteractive, views.TemplateInteractive, "Interactive Explorer", nil)
}
