package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListWorkflows returns a list of all workflows
// (GET /api/v1/workflows)
func (s *Server) ListWorkflows(c echo.Context) error {
	return writeJSON(c, http.StatusOK, s.catalog.Workflows())
}

// GetWorkflow returns one workflow with its steps
// (GET /api/v1/workflows/:id)
func (s *Server) GetWorkflow(c echo.Context) error {
	id := c.Param("id")
	w, ok := s.catalog.Workflow(id)
	if !ok {
		return notFound(c, "workflow", id)
	}
	return writeJSON(c, http.StatusOK, w)
}

// GetArtifact returns one artifact including its content
// (GET /api/v1/artifacts/:id)
func (s *Server) GetArtifact(c echo.Context) error {
	id := c.Param("id")
	a, ok := s.catalog.Artifact(id)
	if !ok {
		return notFound(c, "artifact", id)
	}
	return writeJSON(c, http.StatusOK, a)
}

// ListGlossary returns the glossary, searched with ?q= when present
// (GET /api/v1/glossary)
func (s *Server) ListGlossary(c echo.Context) error {
	return writeJSON(c, http.StatusOK, s.catalog.SearchGlossary(c.QueryParam("q")))
}

// GetGlossaryTerm returns one glossary term
// (GET /api/v1/glossary/:id)
func (s *Server) GetGlossaryTerm(c echo.Context) error {
	id := c.Param("id")
	g, ok := s.catalog.GlossaryTerm(id)
	if !ok {
		return notFound(c, "glossary term", id)
	}
	return writeJSON(c, http.StatusOK, g)
}

// ListFAQ returns the FAQ, or the entries in ?category=
// (GET /api/v1/faq)
func (s *Server) ListFAQ(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		return writeJSON(c, http.StatusOK, s.catalog.FAQByCategory(category))
	}
	return writeJSON(c, http.StatusOK, s.catalog.FAQItems())
}
