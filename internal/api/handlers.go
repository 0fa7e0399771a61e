// Package api contains the HTTP handlers for the read-only catalog API
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/internal/observability"
)

// Server holds the dependencies for the API handlers.
type Server struct {
	catalog *catalog.Catalog
	metrics *observability.Metrics
	version string
}

// NewServer creates a new Server.
func NewServer(c *catalog.Catalog, metrics *observability.Metrics, version string) *Server {
	return &Server{catalog: c, metrics: metrics, version: version}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Agents    int       `json:"agents"`
	Phases    int       `json:"phases"`
}

// HandleHealth returns basic health status (always returns 200 OK)
func (s *Server) HandleHealth(c echo.Context) error {
	return writeJSON(c, http.StatusOK, HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Service:   "virtual-team-planner",
		Version:   s.version,
		Agents:    len(s.catalog.Agents()),
		Phases:    len(s.catalog.Phases()),
	})
}

// writeJSON writes a JSON response with the given status code
func writeJSON(c echo.Context, status int, data any) error {
	return c.JSON(status, data)
}

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance,omitempty"`
}

// MIMEProblemJSON is the media type of a ProblemDetails body.
const MIMEProblemJSON = "application/problem+json"

// WriteProblem writes an RFC 7807 Problem Details JSON error response for
// the current request.
func WriteProblem(c echo.Context, status int, detail string) error {
	problem := ProblemDetails{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	}
	body, err := json.Marshal(problem)
	if err != nil {
		return err
	}
	return c.Blob(status, MIMEProblemJSON, body)
}

func notFound(c echo.Context, kind, id string) error {
	return WriteProblem(c, http.StatusNotFound, kind+" \""+id+"\" not found")
}
