// Package terminal renders site routes as styled terminal output. Each page
// is first built as markdown from the catalog and then passed through
// glamour; the header line and quality gate labels are styled with
// lipgloss.
package terminal

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/internal/routes"
	"virtual-team-planner/backend/pkg/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#101F38")).Background(lipgloss.Color("#8BC34A")).Padding(0, 1)
	pathStyle   = lipgloss.NewStyle().Faint(true)
	passedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	failedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
)

// Options configure a Renderer.
type Options struct {
	// Width wraps the output; zero means 80 columns.
	Width int
	// Style is a glamour standard style name ("dark", "light", "notty")
	// or "auto" to detect it from the terminal.
	Style string
	// SiteTitle is shown in the header line.
	SiteTitle string
}

// Renderer turns a route path into terminal output.
type Renderer struct {
	catalog *catalog.Catalog
	md      *glamour.TermRenderer
	site    string
}

// New creates a Renderer reading from c.
func New(c *catalog.Catalog, opts Options) (*Renderer, error) {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	style := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != "auto" {
		style = glamour.WithStandardStyle(opts.Style)
	}
	md, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(opts.Width))
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	if opts.SiteTitle == "" {
		opts.SiteTitle = "Virtual Team"
	}
	return &Renderer{catalog: c, md: md, site: opts.SiteTitle}, nil
}

// Document is a page rendered to markdown.
type Document struct {
	Title    string
	Status   int
	Markdown string
	// Gate is set on step pages.
	Gate *models.QualityCheck
}

// Render writes the page for target to w and returns its HTTP-equivalent
// status. target is a site path and may carry a query string.
func (r *Renderer) Render(w io.Writer, target string) (int, error) {
	doc := r.Document(target)
	body, err := r.md.Render(doc.Markdown)
	if err != nil {
		return doc.Status, fmt.Errorf("render %s: %w", target, err)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render(r.site+" · "+doc.Title), " ", pathStyle.Render(target))
	if doc.Gate != nil {
		header += "\nQuality gate: " + GateLabel(*doc.Gate)
	}
	if _, err := fmt.Fprintf(w, "%s\n%s", header, body); err != nil {
		return doc.Status, err
	}
	return doc.Status, nil
}

// GateLabel styles a quality check outcome.
func GateLabel(q models.QualityCheck) string {
	if q.Passed {
		return passedStyle.Render(q.Label())
	}
	return failedStyle.Render(q.Label())
}

// Document builds the markdown for target without styling it.
func (r *Renderer) Document(target string) Document {
	u, err := url.Parse(target)
	if err != nil {
		return r.notFound()
	}
	res := routes.Match(u.Path)
	q := u.Query()

	switch res.Route.Page {
	case routes.PageHome:
		return r.home()
	case routes.PageAgents:
		return r.agents(q.Get("category"))
	case routes.PageAgentDetail:
		return r.agent(res.Param("agentId"))
	case routes.PageLifecycle:
		return r.lifecycle()
	case routes.PagePhaseDetail:
		return r.phase(res.Param("phaseId"))
	case routes.PageExamples:
		return r.examples()
	case routes.PageWorkflowDetail:
		return r.workflow(res.Param("workflowId"))
	case routes.PageWorkflowStep:
		return r.step(res.Param("workflowId"), res.Param("stepNumber"))
	case routes.PageInteractive:
		return r.interactive()
	case routes.PageResources:
		return r.resources(q.Get("category"))
	case routes.PageGlossary:
		return r.glossary(q.Get("q"))
	default:
		return r.notFound()
	}
}

type builder struct {
	strings.Builder
}

func (b *builder) line(format string, args ...any) {
	fmt.Fprintf(b, format+"\n", args...)
}

func (b *builder) list(items []string) {
	for _, it := range items {
		b.line("- %s", it)
	}
	b.line("")
}

func page(title string, b *builder) Document {
	return Document{Title: title, Status: http.StatusOK, Markdown: b.String()}
}

func missing(kind, message, back, backLabel string) Document {
	var b builder
	b.line("# %s Not Found", kind)
	b.line("")
	b.line("%s", message)
	b.line("")
	b.line("[%s](%s)", backLabel, back)
	return Document{Title: kind + " Not Found", Status: http.StatusNotFound, Markdown: b.String()}
}

func (r *Renderer) notFound() Document {
	var b builder
	b.line("# 404")
	b.line("")
	b.line("## Page Not Found")
	b.line("")
	b.line("The page you're looking for doesn't exist.")
	b.line("")
	b.line("[Go Home](/)")
	return Document{Title: "Page Not Found", Status: http.StatusNotFound, Markdown: b.String()}
}

func (r *Renderer) home() Document {
	var b builder
	b.line("# Your AI-Powered Virtual Delivery Team")
	b.line("")
	b.line("%d specialized agents collaborate across %d lifecycle phases, with quality gates between every step.",
		len(r.catalog.Agents()), len(r.catalog.Phases()))
	b.line("")
	b.line("## How It Works")
	b.line("")
	for _, p := range r.catalog.Phases() {
		b.line("%d. [%s](%s) (%s)", p.Order, p.Name, routes.PhasePath(p.ID), p.DurationEstimate)
	}
	b.line("")
	if ws := r.catalog.Workflows(); len(ws) > 0 {
		w := ws[0]
		b.line("## Featured Workflow")
		b.line("")
		b.line("**[%s](%s)**: %s (%d steps)", w.Name, routes.WorkflowPath(w.ID), w.Description, len(w.Steps))
	}
	return page("Home", &b)
}

func (r *Renderer) agents(category string) Document {
	var b builder
	b.line("# Meet the Agents")
	b.line("")
	agents := r.catalog.Agents()
	if category != "" {
		agents = r.catalog.AgentsByCategory(category)
		b.line("Category: **%s**", category)
		b.line("")
	}
	for _, a := range agents {
		b.line("- **[%s](%s)** `%s`: %s", a.Name, routes.AgentPath(a.ID), a.Category, a.Description)
	}
	if len(agents) == 0 {
		b.line("No agents in this category.")
	}
	return page("Agents", &b)
}

func (r *Renderer) agent(id string) Document {
	a, found := r.catalog.Agent(id)
	if !found {
		return missing("Agent", "The agent you're looking for doesn't exist.", "/agents", "Back to Agents")
	}
	var b builder
	b.line("# %s", a.Name)
	b.line("")
	b.line("`%s`", a.Category)
	b.line("")
	b.line("%s", a.Description)
	b.line("")
	b.line("## Capabilities")
	b.list(a.Capabilities)
	b.line("## Example Inputs")
	b.list(a.ExampleInputs)
	if outs := r.catalog.ResolveArtifacts(a.ExampleOutputs); len(outs) > 0 {
		b.line("## Example Outputs")
		for _, o := range outs {
			b.line("- %s", o.Name)
		}
		b.line("")
	}
	b.line("## Phases")
	for _, id := range a.PhaseParticipation {
		if p, ok := r.catalog.Phase(id); ok {
			b.line("- [%s](%s)", p.Name, routes.PhasePath(p.ID))
		}
	}
	b.line("")
	if related := r.catalog.ResolveAgents(a.RelatedAgents); len(related) > 0 {
		b.line("## Related Agents")
		for _, rel := range related {
			b.line("- [%s](%s)", rel.Name, routes.AgentPath(rel.ID))
		}
	}
	return page(a.Name, &b)
}

func (r *Renderer) lifecycle() Document {
	var b builder
	b.line("# Delivery Lifecycle")
	b.line("")
	for _, p := range r.catalog.Phases() {
		b.line("## %d. [%s](%s)", p.Order, p.Name, routes.PhasePath(p.ID))
		b.line("")
		b.line("%s · %d agents", p.DurationEstimate, len(p.ParticipatingAgents))
		b.line("")
		b.list(catalog.KeyObjectives(p))
	}
	return page("Lifecycle", &b)
}

func (r *Renderer) phase(id string) Document {
	p, found := r.catalog.Phase(id)
	if !found {
		return missing("Phase", "The phase you're looking for doesn't exist.", "/lifecycle", "Back to Lifecycle")
	}
	var b builder
	b.line("Phase %d", p.Order)
	b.line("")
	b.line("# %s", p.Name)
	b.line("")
	b.line("Duration: %s", p.DurationEstimate)
	b.line("")
	b.line("## Objectives")
	b.list(p.Objectives)
	b.line("## Deliverables")
	b.list(p.Deliverables)
	b.line("## Quality Gate Criteria")
	b.list(p.QualityGateCriteria)
	b.line("## Participating Agents")
	for _, a := range r.catalog.ResolveAgents(p.ParticipatingAgents) {
		b.line("- [%s](%s)", a.Name, routes.AgentPath(a.ID))
	}
	b.line("")
	if prev, ok := r.catalog.PreviousPhase(p.ID); ok {
		b.line("← Previous: [%s](%s)", prev.Name, routes.PhasePath(prev.ID))
		b.line("")
	}
	if next, ok := r.catalog.NextPhase(p.ID); ok {
		b.line("Next: [%s](%s) →", next.Name, routes.PhasePath(next.ID))
	}
	return page(p.Name, &b)
}

func (r *Renderer) examples() Document {
	var b builder
	b.line("# Example Workflows")
	b.line("")
	for _, w := range r.catalog.Workflows() {
		b.line("- **[%s](%s)** (%s, %s): %s", w.Name, routes.WorkflowPath(w.ID), w.Industry, w.Complexity, w.Description)
	}
	return page("Examples", &b)
}

func (r *Renderer) agentNames(ids []string) string {
	var names []string
	for _, a := range r.catalog.ResolveAgents(ids) {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

func (r *Renderer) phaseName(id string) string {
	if p, ok := r.catalog.Phase(id); ok {
		return p.Name
	}
	return id
}

func workflowMissing() Document {
	return missing("Workflow", "The workflow you're looking for doesn't exist.", "/examples", "Back to Examples")
}

func (r *Renderer) workflow(id string) Document {
	w, found := r.catalog.Workflow(id)
	if !found {
		return workflowMissing()
	}
	var b builder
	b.line("# %s", w.Name)
	b.line("")
	b.line("%s · %s", w.Industry, w.Complexity)
	b.line("")
	b.line("%s", w.Description)
	b.line("")
	for i, s := range w.Steps {
		n := i + 1
		b.line("## Step %d: %s", n, r.phaseName(s.Phase))
		b.line("")
		b.line("Agents: %s", r.agentNames(s.ActiveAgents))
		b.line("")
		b.line("%s", s.AgentReasoning)
		b.line("")
		b.line("**Quality gate: %s**", s.QualityCheck.Label())
		b.line("")
		b.line("[View step details](%s)", routes.WorkflowStepPath(w.ID, n))
		b.line("")
	}
	return page(w.Name, &b)
}

func artifactBlock(b *builder, a *models.Artifact) {
	b.line("### %s", a.Name)
	b.line("")
	if a.Type == models.ArtifactMarkdown || a.Type == models.ArtifactDocumentation {
		b.line("%s", a.Content)
		b.line("")
		return
	}
	b.line("```%s", a.Language)
	b.line("%s", strings.TrimRight(a.Content, "\n"))
	b.line("```")
	b.line("")
}

func (r *Renderer) step(workflowID, number string) Document {
	w, found := r.catalog.Workflow(workflowID)
	if !found {
		return workflowMissing()
	}
	n, err := strconv.Atoi(number)
	s, found := r.catalog.Step(w, n)
	if err != nil || !found {
		return missing("Step", "This workflow has no step "+number+".", routes.WorkflowPath(w.ID), "Back to "+w.Name)
	}
	var b builder
	b.line("# Step %d of %d", n, len(w.Steps))
	b.line("")
	b.line("[%s](%s) · %s", w.Name, routes.WorkflowPath(w.ID), r.phaseName(s.Phase))
	b.line("")
	b.line("Agents: %s", r.agentNames(s.ActiveAgents))
	b.line("")
	b.line("## Reasoning")
	b.line("")
	b.line("%s", s.AgentReasoning)
	b.line("")
	if in := r.catalog.ResolveArtifacts(s.InputArtifacts); len(in) > 0 {
		b.line("## Inputs")
		b.line("")
		for _, a := range in {
			artifactBlock(&b, a)
		}
	}
	if out := r.catalog.ResolveArtifacts(s.OutputArtifacts); len(out) > 0 {
		b.line("## Outputs")
		b.line("")
		for _, a := range out {
			artifactBlock(&b, a)
		}
	}
	b.line("## Quality gate: %s", s.QualityCheck.Label())
	b.line("")
	b.list(s.QualityCheck.Criteria)
	b.line("%s", s.QualityCheck.Feedback)
	b.line("")
	if n > 1 {
		b.line("← [Step %d](%s)", n-1, routes.WorkflowStepPath(w.ID, n-1))
	}
	if n < len(w.Steps) {
		b.line("[Step %d](%s) →", n+1, routes.WorkflowStepPath(w.ID, n+1))
	}
	doc := page(fmt.Sprintf("Step %d · %s", n, w.Name), &b)
	doc.Gate = &s.QualityCheck
	return doc
}

func (r *Renderer) interactive() Document {
	var b builder
	b.line("# Interactive Explorer")
	b.line("")
	b.line("Coming soon. The explorer will let you:")
	b.line("")
	b.list([]string{
		"Build a custom team by picking agents for each phase",
		"Simulate a workflow step by step",
		"Trigger quality gate failures and watch the rework loop",
		"Export the resulting plan",
	})
	b.line("[See an Example Instead](/examples)")
	return page("Interactive Explorer", &b)
}

func (r *Renderer) resources(category string) Document {
	var b builder
	b.line("# Resources")
	b.line("")
	b.line("[Glossary](/resources/glossary): %d terms", len(r.catalog.GlossaryTerms()))
	b.line("")
	b.line("## Frequently Asked Questions")
	b.line("")
	faq := r.catalog.FAQItems()
	if category != "" {
		faq = r.catalog.FAQByCategory(category)
	}
	for _, f := range faq {
		b.line("### %s", f.Question)
		b.line("")
		b.line("`%s` %s", f.Category, f.Answer)
		b.line("")
	}
	return page("Resources", &b)
}

func (r *Renderer) glossary(query string) Document {
	var b builder
	b.line("# Glossary")
	b.line("")
	terms := r.catalog.SearchGlossary(query)
	if len(terms) == 0 {
		b.line("No terms match %q.", query)
	}
	for _, t := range terms {
		b.line("## %s", t.Term)
		b.line("")
		b.line("%s", t.Definition)
		b.line("")
		var related []string
		for _, id := range t.RelatedTerms {
			if g, ok := r.catalog.GlossaryTerm(id); ok {
				related = append(related, g.Term)
			} else {
				related = append(related, id)
			}
		}
		if len(related) > 0 {
			b.line("Related: %s", strings.Join(related, ", "))
			b.line("")
		}
	}
	return page("Glossary", &b)
}
