package api

import (
	"github.com/labstack/echo/v4"
)

// RegisterHandlers mounts the catalog endpoints on g, which is expected to
// be the /api/v1 group.
func RegisterHandlers(g *echo.Group, s *Server) {
	g.Use(s.instrument)

	g.GET("/agents", s.ListAgents)
	g.GET("/agents/:id", s.GetAgent)

	g.GET("/phases", s.ListPhases)
	g.GET("/phases/:id", s.GetPhase)
	g.GET("/phases/:id/agents", s.ListPhaseAgents)
	g.GET("/phases/:id/next", s.GetNextPhase)
	g.GET("/phases/:id/previous", s.GetPreviousPhase)

	g.GET("/workflows", s.ListWorkflows)
	g.GET("/workflows/:id", s.GetWorkflow)
	g.GET("/artifacts/:id", s.GetArtifact)

	g.GET("/glossary", s.ListGlossary)
	g.GET("/glossary/:id", s.GetGlossaryTerm)
	g.GET("/faq", s.ListFAQ)
}

// instrument counts every response by route pattern and status.
func (s *Server) instrument(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		status := c.Response().Status
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
		}
		s.metrics.APIRequest(c.Request().Context(), c.Path(), status)
		return err
	}
}
