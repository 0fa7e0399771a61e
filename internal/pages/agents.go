package pages

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"virtual-team-planner/backend/internal/routes"
	"virtual-team-planner/backend/internal/views"
	"virtual-team-planner/backend/pkg/models"
)

// Home renders the landing page.
func (h *Handler) Home(c echo.Context) error {
	data := &views.HomeData{
		AgentCount: len(h.catalog.Agents()),
		PhaseCount: len(h.catalog.Phases()),
		Phases:     h.catalog.Phases(),
	}
	if wfs := h.catalog.Workflows(); len(wfs) > 0 {
		data.Featured = wfs[0]
	}
	return h.render(c, http.StatusOK, routes.PageHome, views.TemplateHome, "Home", data)
}

// Agents renders the agent list, optionally filtered by ?category=.
func (h *Handler) Agents(c echo.Context) error {
	category := c.QueryParam("category")
	agents := h.catalog.Agents()
	if category != "" {
		agents = h.catalog.AgentsByCategory(category)
	}
	return h.render(c, http.StatusOK, routes.PageAgents, views.TemplateAgents, "Agents", &views.AgentsData{
		Category:   category,
		Categories: models.Categories,
		Agents:     agents,
	})
}

// AgentDetail renders one agent.
func (h *Handler) AgentDetail(c echo.Context) error {
	a, ok := h.catalog.Agent(c.Param("agentId"))
	if !ok {
		return h.missing(c, routes.PageAgentDetail, &views.MissingData{
			Kind:      "Agent",
			Message:   "The agent you're looking for doesn't exist.",
			BackPath:  "/agents",
			BackLabel: "Back to Agents",
		})
	}

	phases := make([]*models.Phase, 0, len(a.PhaseParticipation))
	for _, id := range a.PhaseParticipation {
		if p, ok := h.catalog.Phase(id); ok {
			phases = append(phases, p)
		}
	}
	return h.render(c, http.StatusOK, routes.PageAgentDetail, views.TemplateAgent, a.Name, &views.AgentData{
		Agent:   a,
		Phases:  phases,
		Related: h.catalog.ResolveAgents(a.RelatedAgents),
		Outputs: h.catalog.ResolveArtifacts(a.ExampleOutputs),
	})
}
