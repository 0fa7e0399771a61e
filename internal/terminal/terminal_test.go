package terminal

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/pkg/models"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(catalog.Default(), Options{Style: "notty", Width: 100})
	require.NoError(t, err)
	return r
}

func TestDocumentStatus(t *testing.T) {
	r := newRenderer(t)
	tests := []struct {
		path   string
		status int
		title  string
	}{
		{"/", http.StatusOK, "Home"},
		{"/agents?category=qa", http.StatusOK, "Agents"},
		{"/agents/product-owner", http.StatusOK, "Product Owner"},
		{"/agents/does-not-exist", http.StatusNotFound, "Agent Not Found"},
		{"/lifecycle", http.StatusOK, "Lifecycle"},
		{"/lifecycle/nope", http.StatusNotFound, "Phase Not Found"},
		{"/examples", http.StatusOK, "Examples"},
		{"/examples/nope", http.StatusNotFound, "Workflow Not Found"},
		{"/examples/ecommerce-checkout/step/0", http.StatusNotFound, "Step Not Found"},
		{"/examples/ecommerce-checkout/step/x", http.StatusNotFound, "Step Not Found"},
		{"/interactive", http.StatusOK, "Interactive Explorer"},
		{"/resources?category=General", http.StatusOK, "Resources"},
		{"/resources/glossary?q=gate", http.StatusOK, "Glossary"},
		{"/some/unknown/path", http.StatusNotFound, "Page Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			doc := r.Document(tt.path)
			assert.Equal(t, tt.status, doc.Status)
			assert.Equal(t, tt.title, doc.Title)
			assert.NotEmpty(t, doc.Markdown)
		})
	}
}

func TestAgentsFilter(t *testing.T) {
	md := newRenderer(t).Document("/agents?category=compliance").Markdown
	assert.Contains(t, md, "QMS Lead")
	assert.NotContains(t, md, "Product Owner")

	md = newRenderer(t).Document("/agents?category=sales").Markdown
	assert.Contains(t, md, "No agents in this category.")
}

func TestPhaseNeighbours(t *testing.T) {
	r := newRenderer(t)

	md := r.Document("/lifecycle/discovery").Markdown
	assert.Contains(t, md, "Next: [Design](/lifecycle/design)")
	assert.NotContains(t, md, "Previous:")

	md = r.Document("/lifecycle/compliance").Markdown
	assert.Contains(t, md, "Previous: [QA & Testing](/lifecycle/qa)")
	assert.NotContains(t, md, "Next:")
}

func TestWorkflowGates(t *testing.T) {
	md := newRenderer(t).Document("/examples/ecommerce-checkout").Markdown
	assert.Equal(t, 6, strings.Count(md, "## Step "))
	failed := strings.Index(md, "Quality gate: FAILED")
	require.NotEqual(t, -1, failed)
	assert.Contains(t, md[failed:], "Quality gate: PASSED")
}

func TestStepArtifacts(t *testing.T) {
	doc := newRenderer(t).Document("/examples/ecommerce-checkout/step/3")
	require.Equal(t, http.StatusOK, doc.Status)
	require.NotNil(t, doc.Gate)
	assert.False(t, doc.Gate.Passed)
	assert.Contains(t, doc.Markdown, "# Step 3 of 6")
	assert.Contains(t, doc.Markdown, "```typescript")
}

func TestGlossaryRelatedTerms(t *testing.T) {
	r := newRenderer(t)

	md := r.Document("/resources/glossary?q=quality+gate").Markdown
	assert.Contains(t, md, "## Quality Gate")
	assert.Contains(t, md, "Related: Phase, Workflow, Artifact")

	// Related ids without a glossary entry are shown as given.
	md = r.Document("/resources/glossary?q=pci").Markdown
	assert.Contains(t, md, "Related: compliance, security")
}

func TestGlossaryNoMatch(t *testing.T) {
	md := newRenderer(t).Document("/resources/glossary?q=zzz-nothing").Markdown
	assert.Contains(t, md, `No terms match "zzz-nothing".`)
}

func TestLifecycleListsKeyObjectives(t *testing.T) {
	md := newRenderer(t).Document("/lifecycle").Markdown
	for _, p := range catalog.Default().Phases() {
		for _, o := range catalog.KeyObjectives(p) {
			assert.Contains(t, md, "- "+o)
		}
		for _, o := range p.Objectives[len(catalog.KeyObjectives(p)):] {
			assert.NotContains(t, md, "- "+o)
		}
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	status, err := newRenderer(t).Render(&buf, "/agents/product-owner")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	out := buf.String()
	assert.Contains(t, out, "Virtual Team · Product Owner")
	assert.Contains(t, out, "Capabilities")

	buf.Reset()
	status, err = newRenderer(t).Render(&buf, "/examples/ecommerce-checkout/step/3")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, buf.String(), "Quality gate: FAILED")
}

func TestGateLabel(t *testing.T) {
	assert.Contains(t, GateLabel(models.QualityCheck{Passed: true}), "PASSED")
	assert.Contains(t, GateLabel(models.QualityCheck{}), "FAILED")
}
