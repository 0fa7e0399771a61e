package pages

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"virtual-team-planner/backend/internal/routes"
	"virtual-team-planner/backend/internal/views"
	"virtual-team-planner/backend/pkg/models"
)

// Examples renders the workflow list.
func (h *Handler) Examples(c echo.Context) error {
	return h.render(c, http.StatusOK, routes.PageExamples, views.TemplateExamples, "Examples",
		&views.ExamplesData{Workflows: h.catalog.Workflows()})
}

func (h *Handler) workflowNotFound(c echo.Context, page routes.Page) error {
	return h.missing(c, page, &views.MissingData{
		Kind:      "Workflow",
		Message:   "The workflow you're looking for doesn't exist.",
		BackPath:  "/examples",
		BackLabel: "Back to Examples",
	})
}

func (h *Handler) stepView(n int, s *models.WorkflowStep) views.StepView {
	v := views.StepView{Number: n, Step: s, Agents: h.catalog.ResolveAgents(s.ActiveAgents)}
	if p, ok := h.catalog.Phase(s.Phase); ok {
		v.Phase = p
	}
	return v
}

// WorkflowDetail renders a workflow with every step in order.
func (h *Handler) WorkflowDetail(c echo.Context) error {
	w, ok := h.catalog.Workflow(c.Param("workflowId"))
	if !ok {
		return h.workflowNotFound(c, routes.PageWorkflowDetail)
	}

	data := &views.WorkflowData{Workflow: w, Steps: make([]views.StepView, len(w.Steps))}
	for i := range w.Steps {
		data.Steps[i] = h.stepView(i+1, &w.Steps[i])
	}
	return h.render(c, http.StatusOK, routes.PageWorkflowDetail, views.TemplateWorkflow, w.Name, data)
}

// WorkflowStep renders one step with its artifacts in full.
func (h *Handler) WorkflowStep(c echo.Context) error {
	w, ok := h.catalog.Workflow(c.Param("workflowId"))
	if !ok {
		return h.workflowNotFound(c, routes.PageWorkflowStep)
	}

	n, err := strconv.Atoi(c.Param("stepNumber"))
	s, ok := h.catalog.Step(w, n)
	if err != nil || !ok {
		return h.missing(c, routes.PageWorkflowStep, &views.MissingData{
			Kind:      "Step",
			Message:   "This workflow has no step " + c.Param("stepNumber") + ".",
			BackPath:  routes.WorkflowPath(w.ID),
			BackLabel: "Back to " + w.Name,
		})
	}

	data := &views.StepData{
		Workflow: w,
		StepView: h.stepView(n, s),
		Inputs:   h.catalog.ResolveArtifacts(s.InputArtifacts),
		Outputs:  h.catalog.ResolveArtifacts(s.OutputArtifacts),
		Total:    len(w.Steps),
	}
	if n > 1 {
		data.Previous = n - 1
	}
	if n < len(w.Steps) {
		data.Next = n + 1
	}
	return h.render(c, http.StatusOK, routes.PageWorkflowStep, views.TemplateStep,
		"Step "+strconv.Itoa(n)+" · "+w.Name, data)
}
