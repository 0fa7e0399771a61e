package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-team-planner/backend/pkg/models"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, Validate(Builtin()))

	c := Default()
	assert.Len(t, c.Agents(), 12)
	assert.Len(t, c.Phases(), 5)
	assert.Len(t, c.Workflows(), 1)
	assert.Len(t, c.GlossaryTerms(), 8)
	assert.Len(t, c.FAQItems(), 5)
}

func TestAgentIdentityRoundTrip(t *testing.T) {
	c := Default()
	for _, a := range c.Agents() {
		got, ok := c.Agent(a.ID)
		require.True(t, ok, a.ID)
		assert.Same(t, a, got)
	}

	_, ok := c.Agent("does-not-exist")
	assert.False(t, ok)
}

func TestAgentsByCategory(t *testing.T) {
	c := Default()

	t.Run("each category", func(t *testing.T) {
		total := 0
		for _, cat := range models.Categories {
			agents := c.AgentsByCategory(string(cat))
			for _, a := range agents {
				assert.Equal(t, cat, a.Category)
			}
			total += len(agents)
		}
		assert.Equal(t, len(c.Agents()), total)
	})

	t.Run("table order", func(t *testing.T) {
		var ids []string
		for _, a := range c.AgentsByCategory("discovery") {
			ids = append(ids, a.ID)
		}
		assert.Equal(t, []string{"product-owner", "ux-researcher", "stakeholder"}, ids)
	})

	t.Run("unknown category", func(t *testing.T) {
		got := c.AgentsByCategory("bogus")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestAgentsByPhase(t *testing.T) {
	c := Default()
	var ids []string
	for _, a := range c.AgentsByPhase("qa") {
		ids = append(ids, a.ID)
	}
	assert.Contains(t, ids, "qa-tester")
	assert.Contains(t, ids, "security-lead")
	assert.Contains(t, ids, "product-manager")
	assert.Empty(t, c.AgentsByPhase("nope"))
}

func TestPhaseOrder(t *testing.T) {
	c := Default()

	var names []string
	for _, p := range c.Phases() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Discovery", "Design", "Implementation", "QA & Testing", "Compliance & Release"}, names)

	for n := 1; n <= 5; n++ {
		p, ok := c.PhaseByOrder(n)
		require.True(t, ok)
		assert.Equal(t, n, p.Order)
	}
	_, ok := c.PhaseByOrder(0)
	assert.False(t, ok)
	_, ok = c.PhaseByOrder(6)
	assert.False(t, ok)
}

func TestNextAndPreviousPhase(t *testing.T) {
	c := Default()

	var chain []string
	id := "discovery"
	for {
		chain = append(chain, id)
		next, ok := c.NextPhase(id)
		if !ok {
			break
		}
		id = next.ID
	}
	assert.Equal(t, []string{"discovery", "design", "implementation", "qa", "compliance"}, chain)

	_, ok := c.PreviousPhase("discovery")
	assert.False(t, ok)

	prev, ok := c.PreviousPhase("design")
	require.True(t, ok)
	assert.Equal(t, "discovery", prev.ID)

	_, ok = c.NextPhase("unknown")
	assert.False(t, ok)
	_, ok = c.PreviousPhase("unknown")
	assert.False(t, ok)
}

func TestReferentialIntegrity(t *testing.T) {
	c := Default()

	for _, p := range c.Phases() {
		for _, id := range p.ParticipatingAgents {
			_, ok := c.Agent(id)
			assert.True(t, ok, "phase %s participant %s", p.ID, id)
		}
	}
	for _, w := range c.Workflows() {
		for _, s := range w.Steps {
			_, ok := c.Phase(s.Phase)
			assert.True(t, ok, "step %s phase %s", s.ID, s.Phase)
			for _, id := range s.ActiveAgents {
				_, ok := c.Agent(id)
				assert.True(t, ok, "step %s agent %s", s.ID, id)
			}
		}
	}
	for _, a := range c.Agents() {
		for _, id := range a.PhaseParticipation {
			_, ok := c.Phase(id)
			assert.True(t, ok, "agent %s phase %s", a.ID, id)
		}
		assert.Len(t, c.ResolveArtifacts(a.ExampleOutputs), len(a.ExampleOutputs))
	}
}

func TestAFailedQualityCheckExists(t *testing.T) {
	found := false
	for _, w := range Default().Workflows() {
		for _, s := range w.Steps {
			if !s.QualityCheck.Passed {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestFailedGateIsReworkedInSamePhase(t *testing.T) {
	for _, w := range Default().Workflows() {
		for i, s := range w.Steps {
			if s.QualityCheck.Passed {
				continue
			}
			reworked := false
			for _, later := range w.Steps[i+1:] {
				if later.Phase == s.Phase && later.QualityCheck.Passed {
					reworked = true
					break
				}
			}
			assert.True(t, reworked, "%s/%s has no passing rework step in %s", w.ID, s.ID, s.Phase)
		}
	}
}

func TestStep(t *testing.T) {
	c := Default()
	w, ok := c.Workflow("ecommerce-checkout")
	require.True(t, ok)

	s, ok := c.Step(w, 3)
	require.True(t, ok)
	assert.Equal(t, "step-3", s.ID)
	assert.Equal(t, "FAILED", s.QualityCheck.Label())

	for _, n := range []int{0, -1, 7} {
		_, ok := c.Step(w, n)
		assert.False(t, ok, n)
	}
	_, ok = c.Step(nil, 1)
	assert.False(t, ok)
}

func TestResolveSkipsUnknownIDs(t *testing.T) {
	c := Default()
	agents := c.ResolveAgents([]string{"developer", "ghost", "tech-lead"})
	require.Len(t, agents, 2)
	assert.Equal(t, "developer", agents[0].ID)
	assert.Equal(t, "tech-lead", agents[1].ID)

	arts := c.ResolveArtifacts([]string{"missing", "code-1"})
	require.Len(t, arts, 1)
	assert.Equal(t, "code-1", arts[0].ID)
}

func TestSearchGlossary(t *testing.T) {
	c := Default()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty returns all", "", nil},
		{"whitespace returns all", "   ", nil},
		{"term match ignores case", "QUALITY GATE", []string{"quality-gate"}},
		{"definition match", "credit card", []string{"pci-dss"}},
		{"no match", "zzzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.SearchGlossary(tt.query)
			if tt.want == nil {
				assert.Len(t, got, len(c.GlossaryTerms()))
				return
			}
			ids := []string{}
			for _, g := range got {
				ids = append(ids, g.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFAQ(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"General", "Compliance", "Process", "Features"}, c.FAQCategories())
	assert.Len(t, c.FAQByCategory("General"), 2)
	assert.Empty(t, c.FAQByCategory("Nope"))
}

func TestSnapshotIsDetached(t *testing.T) {
	c := Default()
	snap := c.Snapshot()
	snap.Agents[0].Name = "changed"
	snap.Agents[0].Capabilities[0] = "changed"
	snap.Workflows[0].Steps[0].ActiveAgents[0] = "changed"

	a, _ := c.Agent(snap.Agents[0].ID)
	assert.NotEqual(t, "changed", a.Name)
	assert.NotEqual(t, "changed", a.Capabilities[0])
	assert.NotEqual(t, "changed", c.Workflows()[0].Steps[0].ActiveAgents[0])

	_, err := New(snap)
	assert.NoError(t, err)
}

func TestValidateReportsEveryViolation(t *testing.T) {
	tables := Builtin()
	tables.Agents[0].Category = "sales"
	tables.Agents[1].Capabilities = tables.Agents[1].Capabilities[:1]
	tables.Phases[0].ParticipatingAgents = append(tables.Phases[0].ParticipatingAgents, "ghost")
	tables.Phases[1].Order = 9
	tables.Workflows[0].Steps[2].QualityCheck.Passed = true
	tables.Artifacts[0].Metadata.CreatedBy = "nobody"
	tables.GlossaryTerms = append(tables.GlossaryTerms, tables.GlossaryTerms[0])

	_, err := New(tables)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))

	msg := err.Error()
	for _, want := range []string{
		`unknown category "sales"`,
		"has 1 capabilities",
		`references unknown id "ghost"`,
		"order 9 outside 1..5",
		"no workflow step has a failed quality check",
		`created by unknown agent "nobody"`,
		`duplicate glossary term id "agent"`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestValidateRejectsWrongPhaseCount(t *testing.T) {
	tables := Builtin()
	tables.Phases = tables.Phases[:4]
	err := Validate(tables)
	require.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "have 4 phases, want 5")
}

func TestKeyObjectives(t *testing.T) {
	p := &models.Phase{Objectives: []string{"a", "b", "c", "d", "e", "f"}}
	assert.Equal(t, []string{"a", "b", "c", "d"}, KeyObjectives(p))

	short := &models.Phase{Objectives: []string{"a", "b"}}
	assert.Equal(t, []string{"a", "b"}, KeyObjectives(short))
	assert.Empty(t, KeyObjectives(&models.Phase{}))
}
