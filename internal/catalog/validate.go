package catalog

import (
	"errors"
	"fmt"

	"virtual-team-planner/backend/pkg/models"
)

// ErrInvalidCatalog wraps every consistency violation reported by Validate.
var ErrInvalidCatalog = errors.New("invalid catalog")

const (
	minCapabilities = 3
	minPhaseItems   = 3
	phaseCount      = 5
)

// Validate checks the structural and referential invariants of t. All
// violations are reported together.
func Validate(t Tables) error {
	v := &validator{
		agents:    make(map[string]bool, len(t.Agents)),
		phases:    make(map[string]bool, len(t.Phases)),
		artifacts: make(map[string]bool, len(t.Artifacts)),
	}

	for _, a := range t.Agents {
		v.unique("agent", a.ID, v.agents)
	}
	for _, p := range t.Phases {
		v.unique("phase", p.ID, v.phases)
	}
	for _, a := range t.Artifacts {
		v.unique("artifact", a.ID, v.artifacts)
	}
	workflows := make(map[string]bool, len(t.Workflows))
	for _, w := range t.Workflows {
		v.unique("workflow", w.ID, workflows)
	}
	terms := make(map[string]bool, len(t.GlossaryTerms))
	for _, g := range t.GlossaryTerms {
		v.unique("glossary term", g.ID, terms)
	}
	faq := make(map[string]bool, len(t.FAQItems))
	for _, f := range t.FAQItems {
		v.unique("faq item", f.ID, faq)
	}

	for _, a := range t.Agents {
		v.checkAgent(a)
	}
	v.checkPhaseOrder(t.Phases)
	for _, p := range t.Phases {
		v.checkPhase(p)
	}
	for _, a := range t.Artifacts {
		v.checkArtifact(a)
	}
	failed := false
	for _, w := range t.Workflows {
		if !w.Complexity.Valid() {
			v.addf("workflow %q: unknown complexity %q", w.ID, w.Complexity)
		}
		for i, s := range w.Steps {
			v.checkStep(w.ID, i+1, s)
			if !s.QualityCheck.Passed {
				failed = true
			}
		}
	}
	if len(t.Workflows) > 0 && !failed {
		v.addf("no workflow step has a failed quality check")
	}

	if len(v.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(v.errs...))
}

type validator struct {
	agents    map[string]bool
	phases    map[string]bool
	artifacts map[string]bool
	errs      []error
}

func (v *validator) addf(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) unique(kind, id string, seen map[string]bool) {
	if id == "" {
		v.addf("%s with empty id", kind)
		return
	}
	if seen[id] {
		v.addf("duplicate %s id %q", kind, id)
	}
	seen[id] = true
}

func (v *validator) refs(owner, field string, ids []string, known map[string]bool) {
	for _, id := range ids {
		if !known[id] {
			v.addf("%s: %s references unknown id %q", owner, field, id)
		}
	}
}

func (v *validator) checkAgent(a models.Agent) {
	owner := fmt.Sprintf("agent %q", a.ID)
	if !a.Category.Valid() {
		v.addf("%s: unknown category %q", owner, a.Category)
	}
	if len(a.Capabilities) < minCapabilities {
		v.addf("%s: has %d capabilities, want at least %d", owner, len(a.Capabilities), minCapabilities)
	}
	if len(a.PhaseParticipation) == 0 {
		v.addf("%s: participates in no phase", owner)
	}
	v.refs(owner, "phase participation", a.PhaseParticipation, v.phases)
	v.refs(owner, "related agents", a.RelatedAgents, v.agents)
	v.refs(owner, "example outputs", a.ExampleOutputs, v.artifacts)
}

func (v *validator) checkPhaseOrder(phases []models.Phase) {
	if len(phases) != phaseCount {
		v.addf("have %d phases, want %d", len(phases), phaseCount)
	}
	orders := make(map[int]string, len(phases))
	for _, p := range phases {
		if p.Order < 1 || p.Order > len(phases) {
			v.addf("phase %q: order %d outside 1..%d", p.ID, p.Order, len(phases))
			continue
		}
		if other, dup := orders[p.Order]; dup {
			v.addf("phases %q and %q share order %d", other, p.ID, p.Order)
		}
		orders[p.Order] = p.ID
	}
}

func (v *validator) checkPhase(p models.Phase) {
	owner := fmt.Sprintf("phase %q", p.ID)
	if len(p.Objectives) < minPhaseItems {
		v.addf("%s: has %d objectives, want at least %d", owner, len(p.Objectives), minPhaseItems)
	}
	if len(p.Deliverables) < minPhaseItems {
		v.addf("%s: has %d deliverables, want at least %d", owner, len(p.Deliverables), minPhaseItems)
	}
	if len(p.QualityGateCriteria) < minPhaseItems {
		v.addf("%s: has %d quality gate criteria, want at least %d", owner, len(p.QualityGateCriteria), minPhaseItems)
	}
	if len(p.ParticipatingAgents) == 0 {
		v.addf("%s: has no participating agents", owner)
	}
	if !p.Color.Valid() {
		v.addf("%s: unknown color %q", owner, p.Color)
	}
	v.refs(owner, "participating agents", p.ParticipatingAgents, v.agents)
	v.refs(owner, "example artifacts", p.ExampleArtifacts, v.artifacts)
}

func (v *validator) checkArtifact(a models.Artifact) {
	owner := fmt.Sprintf("artifact %q", a.ID)
	if !a.Type.Valid() {
		v.addf("%s: unknown type %q", owner, a.Type)
	}
	if !v.agents[a.Metadata.CreatedBy] {
		v.addf("%s: created by unknown agent %q", owner, a.Metadata.CreatedBy)
	}
	if !v.phases[a.Metadata.Phase] {
		v.addf("%s: attributed to unknown phase %q", owner, a.Metadata.Phase)
	}
}

func (v *validator) checkStep(workflowID string, n int, s models.WorkflowStep) {
	owner := fmt.Sprintf("workflow %q step %d", workflowID, n)
	if !v.phases[s.Phase] {
		v.addf("%s: unknown phase %q", owner, s.Phase)
	}
	v.refs(owner, "active agents", s.ActiveAgents, v.agents)
	v.refs(owner, "input artifacts", s.InputArtifacts, v.artifacts)
	v.refs(owner, "output artifacts", s.OutputArtifacts, v.artifacts)
}
