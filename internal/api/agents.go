package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListAgents returns every agent, or those in ?category=
// (GET /api/v1/agents)
func (s *Server) ListAgents(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		return writeJSON(c, http.StatusOK, s.catalog.AgentsByCategory(category))
	}
	return writeJSON(c, http.StatusOK, s.catalog.Agents())
}

// GetAgent returns one agent
// (GET /api/v1/agents/:id)
func (s *Server) GetAgent(c echo.Context) error {
	id := c.Param("id")
	a, ok := s.catalog.Agent(id)
	if !ok {
		return notFound(c, "agent", id)
	}
	return writeJSON(c, http.StatusOK, a)
}

// ListPhases returns the phases in lifecycle order
// (GET /api/v1/phases)
func (s *Server) ListPhases(c echo.Context) error {
	return writeJSON(c, http.StatusOK, s.catalog.Phases())
}

// GetPhase returns one phase
// (GET /api/v1/phases/:id)
func (s *Server) GetPhase(c echo.Context) error {
	id := c.Param("id")
	p, ok := s.catalog.Phase(id)
	if !ok {
		return notFound(c, "phase", id)
	}
	return writeJSON(c, http.StatusOK, p)
}

// ListPhaseAgents returns the agents participating in a phase
// (GET /api/v1/phases/:id/agents)
func (s *Server) ListPhaseAgents(c echo.Context) error {
	id := c.Param("id")
	if _, ok := s.catalog.Phase(id); !ok {
		return notFound(c, "phase", id)
	}
	return writeJSON(c, http.StatusOK, s.catalog.AgentsByPhase(id))
}

// GetNextPhase returns the phase after :id; 404 for the last phase
// (GET /api/v1/phases/:id/next)
func (s *Server) GetNextPhase(c echo.Context) error {
	id := c.Param("id")
	if _, ok := s.catalog.Phase(id); !ok {
		return notFound(c, "phase", id)
	}
	next, ok := s.catalog.NextPhase(id)
	if !ok {
		return WriteProblem(c, http.StatusNotFound, "phase \""+id+"\" is the last phase")
	}
	return writeJSON(c, http.StatusOK, next)
}

// GetPreviousPhase returns the phase before :id; 404 for the first phase
// (GET /api/v1/phases/:id/previous)
func (s *Server) GetPreviousPhase(c echo.Context) error {
	id := c.Param("id")
	if _, ok := s.catalog.Phase(id); !ok {
		return notFound(c, "phase", id)
	}
	prev, ok := s.catalog.PreviousPhase(id)
	if !ok {
		return WriteProblem(c, http.StatusNotFound, "phase \""+id+"\" is the first phase")
	}
	return writeJSON(c, http.StatusOK, prev)
}
