package views

import "virtual-team-planner/backend/pkg/models"

// Page template names.
const (
	TemplateHome        = "home"
	TemplateAgents      = "agents"
	TemplateAgent       = "agent"
	TemplateLifecycle   = "lifecycle"
	TemplatePhase       = "phase"
	TemplateExamples    = "examples"
	TemplateWorkflow    = "workflow"
	TemplateStep        = "step"
	TemplateInteractive = "interactive"
	TemplateResources   = "resources"
	TemplateGlossary    = "glossary"
	TemplateMissing     = "missing"
	TemplateNotFound    = "notfound"
	TemplateError       = "error"
)

type HomeData struct {
	AgentCount int
	PhaseCount int
	Phases     []*models.Phase
	Featured   *models.Workflow
}

type AgentsData struct {
	Category   string
	Categories []models.Category
	Agents     []*models.Agent
}

type AgentData struct {
	Agent   *models.Agent
	Phases  []*models.Phase
	Related []*models.Agent
	Outputs []*models.Artifact
}

// PhaseSummary is a phase as shown on the lifecycle overview.
type PhaseSummary struct {
	Phase      *models.Phase
	Objectives []string
	AgentCount int
}

type LifecycleData struct {
	Phases []PhaseSummary
}

type PhaseData struct {
	Phase     *models.Phase
	Agents    []*models.Agent
	Artifacts []*models.Artifact
	Previous  *models.Phase
	Next      *models.Phase
}

type ExamplesData struct {
	Workflows []*models.Workflow
}

// StepView is a workflow step with its references resolved.
type StepView struct {
	Number int
	Step   *models.WorkflowStep
	Phase  *models.Phase
	Agents []*models.Agent
}

type WorkflowData struct {
	Workflow *models.Workflow
	Steps    []StepView
}

type StepData struct {
	Workflow *models.Workflow
	StepView
	Inputs   []*models.Artifact
	Outputs  []*models.Artifact
	Previous int // 0 when there is none
	Next     int // 0 when there is none
	Total    int
}

type ResourcesData struct {
	Category   string
	Categories []string
	FAQ        []*models.FAQItem
	TermCount  int
}

// RelatedTerm is a glossary cross-reference. Linked is false when the
// referenced term is not in the glossary.
type RelatedTerm struct {
	ID     string
	Label  string
	Linked bool
}

type GlossaryEntry struct {
	Term    *models.GlossaryTerm
	Related []RelatedTerm
}

type GlossaryData struct {
	Query string
	Terms []GlossaryEntry
}

// MissingData drives the NotFound state of a detail page.
type MissingData struct {
	Kind      string // "Agent", "Phase", "Workflow", "Step"
	Message   string
	BackPath  string
	BackLabel string
}

type ErrorData struct {
	RequestID string
}
