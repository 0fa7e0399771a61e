// Package catalog holds the read-only content tables and the lookups pages
// use to resolve identifiers into records.
//
// A Catalog is built once, validated once, and never mutated afterwards.
// Every accessor is a pure function of its arguments. Lookups that find
// nothing report it through a false ok value or an empty slice; they never
// return an error because an unknown identifier is a routine outcome.
package catalog

import (
	"slices"
	"sort"
	"strings"
	"sync"

	"virtual-team-planner/backend/pkg/models"
)

// Tables is the raw form of the content before indexing.
type Tables struct {
	Agents        []models.Agent        `json:"agents" yaml:"agents"`
	Phases        []models.Phase        `json:"phases" yaml:"phases"`
	Workflows     []models.Workflow     `json:"workflows" yaml:"workflows"`
	Artifacts     []models.Artifact     `json:"artifacts" yaml:"artifacts"`
	GlossaryTerms []models.GlossaryTerm `json:"glossary_terms" yaml:"glossary_terms"`
	FAQItems      []models.FAQItem      `json:"faq_items" yaml:"faq_items"`
}

// Catalog is an indexed, validated, immutable set of content tables.
type Catalog struct {
	tables Tables

	agents    map[string]*models.Agent
	phases    map[string]*models.Phase
	byOrder   map[int]*models.Phase
	workflows map[string]*models.Workflow
	artifacts map[string]*models.Artifact
	glossary  map[string]*models.GlossaryTerm
}

// New validates t and indexes it. New takes ownership of the slices in t;
// the caller must not modify them afterwards.
func New(t Tables) (*Catalog, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}

	c := &Catalog{
		tables:    t,
		agents:    make(map[string]*models.Agent, len(t.Agents)),
		phases:    make(map[string]*models.Phase, len(t.Phases)),
		byOrder:   make(map[int]*models.Phase, len(t.Phases)),
		workflows: make(map[string]*models.Workflow, len(t.Workflows)),
		artifacts: make(map[string]*models.Artifact, len(t.Artifacts)),
		glossary:  make(map[string]*models.GlossaryTerm, len(t.GlossaryTerms)),
	}
	for i := range c.tables.Agents {
		a := &c.tables.Agents[i]
		c.agents[a.ID] = a
	}
	for i := range c.tables.Phases {
		p := &c.tables.Phases[i]
		c.phases[p.ID] = p
		c.byOrder[p.Order] = p
	}
	for i := range c.tables.Workflows {
		w := &c.tables.Workflows[i]
		c.workflows[w.ID] = w
	}
	for i := range c.tables.Artifacts {
		a := &c.tables.Artifacts[i]
		c.artifacts[a.ID] = a
	}
	for i := range c.tables.GlossaryTerms {
		g := &c.tables.GlossaryTerms[i]
		c.glossary[g.ID] = g
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog built from the compiled-in
// tables. It panics if those tables are inconsistent.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(Builtin())
		if err != nil {
			panic("catalog: builtin tables are invalid: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Agents returns every agent in table order.
func (c *Catalog) Agents() []*models.Agent {
	out := make([]*models.Agent, len(c.tables.Agents))
	for i := range c.tables.Agents {
		out[i] = &c.tables.Agents[i]
	}
	return out
}

// Agent looks up an agent by ID.
func (c *Catalog) Agent(id string) (*models.Agent, bool) {
	a, ok := c.agents[id]
	return a, ok
}

// AgentsByCategory returns the agents in category, in table order. An
// unknown category yields an empty slice.
func (c *Catalog) AgentsByCategory(category string) []*models.Agent {
	out := []*models.Agent{}
	for i := range c.tables.Agents {
		if string(c.tables.Agents[i].Category) == category {
			out = append(out, &c.tables.Agents[i])
		}
	}
	return out
}

// AgentsByPhase returns the agents whose participation includes phaseID.
func (c *Catalog) AgentsByPhase(phaseID string) []*models.Agent {
	out := []*models.Agent{}
	for i := range c.tables.Agents {
		if slices.Contains(c.tables.Agents[i].PhaseParticipation, phaseID) {
			out = append(out, &c.tables.Agents[i])
		}
	}
	return out
}

// ResolveAgents maps ids to agents, skipping ids that do not resolve.
func (c *Catalog) ResolveAgents(ids []string) []*models.Agent {
	out := make([]*models.Agent, 0, len(ids))
	for _, id := range ids {
		if a, ok := c.agents[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Phases returns every phase ordered by Order.
func (c *Catalog) Phases() []*models.Phase {
	out := make([]*models.Phase, len(c.tables.Phases))
	for i := range c.tables.Phases {
		out[i] = &c.tables.Phases[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Phase looks up a phase by ID.
func (c *Catalog) Phase(id string) (*models.Phase, bool) {
	p, ok := c.phases[id]
	return p, ok
}

// PhaseByOrder looks up the phase at position n (1-based).
func (c *Catalog) PhaseByOrder(n int) (*models.Phase, bool) {
	p, ok := c.byOrder[n]
	return p, ok
}

// NextPhase returns the phase that follows id. It reports false when id is
// unknown or already the last phase.
func (c *Catalog) NextPhase(id string) (*models.Phase, bool) {
	cur, ok := c.phases[id]
	if !ok {
		return nil, false
	}
	return c.PhaseByOrder(cur.Order + 1)
}

// PreviousPhase returns the phase that precedes id. It reports false when
// id is unknown or already the first phase.
func (c *Catalog) PreviousPhase(id string) (*models.Phase, bool) {
	cur, ok := c.phases[id]
	if !ok {
		return nil, false
	}
	return c.PhaseByOrder(cur.Order - 1)
}

// OverviewObjectives is how many objectives a phase shows in the lifecycle
// overview.
const OverviewObjectives = 4

// KeyObjectives returns the first OverviewObjectives objectives of p.
func KeyObjectives(p *models.Phase) []string {
	if len(p.Objectives) > OverviewObjectives {
		return p.Objectives[:OverviewObjectives]
	}
	return p.Objectives
}

// Workflows returns every workflow in table order.
func (c *Catalog) Workflows() []*models.Workflow {
	out := make([]*models.Workflow, len(c.tables.Workflows))
	for i := range c.tables.Workflows {
		out[i] = &c.tables.Workflows[i]
	}
	return out
}

// Workflow looks up a workflow by ID.
func (c *Catalog) Workflow(id string) (*models.Workflow, bool) {
	w, ok := c.workflows[id]
	return w, ok
}

// Step returns step n (1-based) of workflow w.
func (c *Catalog) Step(w *models.Workflow, n int) (*models.WorkflowStep, bool) {
	if w == nil || n < 1 || n > len(w.Steps) {
		return nil, false
	}
	return &w.Steps[n-1], true
}

// Artifact looks up an artifact by ID.
func (c *Catalog) Artifact(id string) (*models.Artifact, bool) {
	a, ok := c.artifacts[id]
	return a, ok
}

// ResolveArtifacts maps ids to artifacts, skipping ids that do not resolve.
func (c *Catalog) ResolveArtifacts(ids []string) []*models.Artifact {
	out := make([]*models.Artifact, 0, len(ids))
	for _, id := range ids {
		if a, ok := c.artifacts[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

// GlossaryTerms returns every term in table order.
func (c *Catalog) GlossaryTerms() []*models.GlossaryTerm {
	out := make([]*models.GlossaryTerm, len(c.tables.GlossaryTerms))
	for i := range c.tables.GlossaryTerms {
		out[i] = &c.tables.GlossaryTerms[i]
	}
	return out
}

// GlossaryTerm looks up a term by ID.
func (c *Catalog) GlossaryTerm(id string) (*models.GlossaryTerm, bool) {
	g, ok := c.glossary[id]
	return g, ok
}

// SearchGlossary returns the terms whose name or definition contains query,
// ignoring case. Surrounding whitespace is trimmed, and an empty query
// matches every term.
func (c *Catalog) SearchGlossary(query string) []*models.GlossaryTerm {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []*models.GlossaryTerm{}
	for i := range c.tables.GlossaryTerms {
		g := &c.tables.GlossaryTerms[i]
		if strings.Contains(strings.ToLower(g.Term), q) ||
			strings.Contains(strings.ToLower(g.Definition), q) {
			out = append(out, g)
		}
	}
	return out
}

// FAQItems returns every FAQ entry in table order.
func (c *Catalog) FAQItems() []*models.FAQItem {
	out := make([]*models.FAQItem, len(c.tables.FAQItems))
	for i := range c.tables.FAQItems {
		out[i] = &c.tables.FAQItems[i]
	}
	return out
}

// FAQByCategory returns the FAQ entries filed under category.
func (c *Catalog) FAQByCategory(category string) []*models.FAQItem {
	out := []*models.FAQItem{}
	for i := range c.tables.FAQItems {
		if c.tables.FAQItems[i].Category == category {
			out = append(out, &c.tables.FAQItems[i])
		}
	}
	return out
}

// FAQCategories lists the distinct FAQ categories in first-seen order.
func (c *Catalog) FAQCategories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range c.tables.FAQItems {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

// Snapshot returns a deep copy of the underlying tables, suitable for
// export or seeding another store.
func (c *Catalog) Snapshot() Tables {
	return Tables{
		Agents:        cloneAgents(c.tables.Agents),
		Phases:        clonePhases(c.tables.Phases),
		Workflows:     cloneWorkflows(c.tables.Workflows),
		Artifacts:     append([]models.Artifact(nil), c.tables.Artifacts...),
		GlossaryTerms: cloneGlossary(c.tables.GlossaryTerms),
		FAQItems:      append([]models.FAQItem(nil), c.tables.FAQItems...),
	}
}
