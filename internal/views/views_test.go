package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/pkg/models"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(Site{Title: "Virtual Team", BasePath: "/vtp", SourceURL: "https://example.com/src"})
	require.NoError(t, err)
	return r
}

func render(t *testing.T, r *Renderer, name string, p Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Execute(&buf, name, p))
	return buf.String()
}

func TestAllPagesParse(t *testing.T) {
	r := newRenderer(t)
	for _, name := range []string{
		TemplateHome, TemplateAgents, TemplateAgent, TemplateLifecycle, TemplatePhase,
		TemplateExamples, TemplateWorkflow, TemplateStep, TemplateInteractive,
		TemplateResources, TemplateGlossary, TemplateMissing, TemplateNotFound, TemplateError,
	} {
		assert.True(t, r.Has(name), name)
	}
	assert.False(t, r.Has("nope"))
}

func TestShell(t *testing.T) {
	r := newRenderer(t)
	html := render(t, r, TemplateInteractive, Page{Title: "Interactive", Path: "/interactive"})

	assert.Contains(t, html, "<title>Interactive | Virtual Team</title>")
	assert.Contains(t, html, `<a href="/vtp/interactive" class="active" aria-current="page">Interactive</a>`)
	assert.Contains(t, html, `<a href="/vtp">Home</a>`)
	assert.Contains(t, html, `aria-label="Toggle menu"`)
	assert.NotContains(t, html, "<details class=\"mobile-nav\" open")
	assert.Contains(t, html, `href="https://example.com/src"`)
	assert.Contains(t, html, `<a href="/vtp/resources/glossary">Glossary</a>`)
	assert.Equal(t, 4, strings.Count(html, "<li>"))
}

func TestHomeIsActiveOnlyOnRoot(t *testing.T) {
	r := newRenderer(t)
	html := render(t, r, TemplateNotFound, Page{Title: "Not Found", Path: "/agents/x"})
	assert.NotContains(t, html, `<a href="/vtp" class="active"`)
	assert.Contains(t, html, `<a href="/vtp/agents" class="active"`)
	assert.Contains(t, html, "Page Not Found")
	assert.Contains(t, html, `href="/vtp"`)
}

func TestMissingPage(t *testing.T) {
	r := newRenderer(t)
	html := render(t, r, TemplateMissing, Page{Title: "Agent Not Found", Data: &MissingData{
		Kind: "Agent", Message: "gone", BackPath: "/agents", BackLabel: "Back to Agents",
	}})
	assert.Contains(t, html, "Agent Not Found")
	assert.Contains(t, html, `class="btn btn-primary btn-md" href="/vtp/agents">Back to Agents</a>`)
}

func TestArtifactRendering(t *testing.T) {
	r := newRenderer(t)
	c := catalog.Default()
	w, _ := c.Workflow("ecommerce-checkout")
	s, _ := c.Step(w, 2)

	html := render(t, r, TemplateStep, Page{Title: "Step 2", Data: &StepData{
		Workflow: w,
		StepView: StepView{Number: 2, Step: s},
		Inputs:   c.ResolveArtifacts(s.InputArtifacts),
		Outputs:  c.ResolveArtifacts(s.OutputArtifacts),
		Previous: 1,
		Next:     3,
		Total:    len(w.Steps),
	}})

	assert.Contains(t, html, "<h1>User Story: Save Payment Method</h1>", "markdown artifact rendered to HTML")
	assert.Contains(t, html, "Step 2 of 6")
	assert.Contains(t, html, `/vtp/examples/ecommerce-checkout/step/1`)
	assert.Contains(t, html, `/vtp/examples/ecommerce-checkout/step/3`)
	assert.Contains(t, html, "PASSED")

	code, _ := c.Step(w, 3)
	html = render(t, r, TemplateStep, Page{Title: "Step 3", Data: &StepData{
		Workflow: w,
		StepView: StepView{Number: 3, Step: code},
		Outputs:  c.ResolveArtifacts(code.OutputArtifacts),
		Total:    len(w.Steps),
	}})
	assert.Contains(t, html, `<pre><code class="language-typescript">`)
	assert.Contains(t, html, "FAILED")
	assert.NotContains(t, html, "Previous step")
}

func TestRenderRejectsForeignData(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, TemplateHome, "nope", nil))
	assert.Error(t, r.Execute(&buf, "missing-template", Page{}))
	assert.Zero(t, buf.Len())
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "📋", Glyph("Clipboard"))
	assert.Equal(t, fallbackIcon, Glyph("Unheard"))
	assert.Equal(t, fallbackIcon, Glyph(""))
}

func TestComponentClasses(t *testing.T) {
	assert.Equal(t, "badge badge-areas", BadgeClass(string(models.CategoryDiscovery)))
	assert.Equal(t, "badge badge-projects", BadgeClass("design"))
	assert.Equal(t, "badge badge-qa", BadgeClass("qa"))
	assert.Equal(t, "badge badge-resources", BadgeClass("resources"))
	assert.Equal(t, "badge badge-default", BadgeClass("default"))
	assert.Equal(t, "badge badge-default", BadgeClass("whatever"))

	assert.Equal(t, "btn btn-ghost btn-sm", ButtonClass("ghost", "sm"))
	assert.Equal(t, "btn btn-primary btn-md", ButtonClass("loud", "huge"))

	assert.Equal(t, "card card-hover", CardClass(true))
	assert.Equal(t, "card", CardClass(false))
}

func TestDict(t *testing.T) {
	m, err := dict("a", 1, "b", "two")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": "two"}, m)

	_, err = dict("a")
	assert.Error(t, err)
	_, err = dict(1, 2)
	assert.Error(t, err)
}
