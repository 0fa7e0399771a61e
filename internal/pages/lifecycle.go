package pages

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/internal/routes"
	"virtual-team-planner/backend/internal/views"
)

// Lifecycle renders the phase overview.
func (h *Handler) Lifecycle(c echo.Context) error {
	phases := h.catalog.Phases()
	data := &views.LifecycleData{Phases: make([]views.PhaseSummary, len(phases))}
	for i, p := range phases {
		data.Phases[i] = views.PhaseSummary{
			Phase:      p,
			Objectives: catalog.KeyObjectives(p),
			AgentCount: len(p.ParticipatingAgents),
		}
	}
	return h.render(c, http.StatusOK, routes.PageLifecycle, views.TemplateLifecycle, "Lifecycle", data)
}

// PhaseDetail renders one phase with links to its neighbours.
func (h *Handler) PhaseDetail(c echo.Context) error {
	p, ok := h.catalog.Phase(c.Param("phaseId"))
	if !ok {
		return h.missing(c, routes.PagePhaseDetail, &views.MissingData{
			Kind:      "Phase",
			Message:   "The phase you're looking for doesn't exist.",
			BackPath:  "/lifecycle",
			BackLabel: "Back to Lifecycle",
		})
	}

	data := &views.PhaseData{
		Phase:     p,
		Agents:    h.catalog.ResolveAgents(p.ParticipatingAgents),
		Artifacts: h.catalog.ResolveArtifacts(p.ExampleArtifacts),
	}
	if prev, ok := h.catalog.PreviousPhase(p.ID); ok {
		data.Previous = prev
	}
	if next, ok := h.catalog.NextPhase(p.ID); ok {
		data.Next = next
	}
	return h.render(c, http.StatusOK, routes.PagePhaseDetail, views.TemplatePhase, p.Name, data)
}
