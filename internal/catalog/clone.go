package catalog

import (
	"slices"

	"virtual-team-planner/backend/pkg/models"
)

func cloneAgents(in []models.Agent) []models.Agent {
	out := make([]models.Agent, len(in))
	for i, a := range in {
		a.Capabilities = slices.Clone(a.Capabilities)
		a.ExampleInputs = slices.Clone(a.ExampleInputs)
		a.ExampleOutputs = slices.Clone(a.ExampleOutputs)
		a.PhaseParticipation = slices.Clone(a.PhaseParticipation)
		a.RelatedAgents = slices.Clone(a.RelatedAgents)
		out[i] = a
	}
	return out
}

func clonePhases(in []models.Phase) []models.Phase {
	out := make([]models.Phase, len(in))
	for i, p := range in {
		p.Objectives = slices.Clone(p.Objectives)
		p.ParticipatingAgents = slices.Clone(p.ParticipatingAgents)
		p.Deliverables = slices.Clone(p.Deliverables)
		p.QualityGateCriteria = slices.Clone(p.QualityGateCriteria)
		p.ExampleArtifacts = slices.Clone(p.ExampleArtifacts)
		out[i] = p
	}
	return out
}

func cloneWorkflows(in []models.Workflow) []models.Workflow {
	out := make([]models.Workflow, len(in))
	for i, w := range in {
		steps := make([]models.WorkflowStep, len(w.Steps))
		for j, s := range w.Steps {
			s.ActiveAgents = slices.Clone(s.ActiveAgents)
			s.InputArtifacts = slices.Clone(s.InputArtifacts)
			s.OutputArtifacts = slices.Clone(s.OutputArtifacts)
			s.QualityCheck.Criteria = slices.Clone(s.QualityCheck.Criteria)
			steps[j] = s
		}
		w.Steps = steps
		out[i] = w
	}
	return out
}

func cloneGlossary(in []models.GlossaryTerm) []models.GlossaryTerm {
	out := make([]models.GlossaryTerm, len(in))
	for i, g := range in {
		g.RelatedTerms = slices.Clone(g.RelatedTerms)
		out[i] = g
	}
	return out
}
