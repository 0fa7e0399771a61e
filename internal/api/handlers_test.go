package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/internal/observability"
	"virtual-team-planner/backend/pkg/models"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	s := NewServer(catalog.Default(), observability.NewNop(), "test")
	e.GET("/healthz", s.HandleHealth)
	RegisterHandlers(e.Group("/api/v1"), s)
	e.GET("/api/openapi.yaml", SpecHandler("/vtp"))
	e.GET("/api/docs", SwaggerHandler("/vtp/api/openapi.yaml"))
	return e
}

func get(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestEcho(), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	h := decode[HealthStatus](t, rec)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "test", h.Version)
	assert.Equal(t, 12, h.Agents)
	assert.Equal(t, 5, h.Phases)
}

func TestAgents(t *testing.T) {
	e := newTestEcho()

	all := decode[[]models.Agent](t, get(t, e, "/api/v1/agents"))
	assert.Len(t, all, 12)

	qa := decode[[]models.Agent](t, get(t, e, "/api/v1/agents?category=qa"))
	require.Len(t, qa, 2)
	for _, a := range qa {
		assert.Equal(t, models.CategoryQA, a.Category)
	}

	rec := get(t, e, "/api/v1/agents?category=bogus")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	po := decode[models.Agent](t, get(t, e, "/api/v1/agents/product-owner"))
	assert.Equal(t, "Product Owner", po.Name)
}

func TestNotFoundIsProblemJSON(t *testing.T) {
	e := newTestEcho()
	for _, target := range []string{
		"/api/v1/agents/ghost",
		"/api/v1/phases/ghost",
		"/api/v1/phases/ghost/agents",
		"/api/v1/workflows/ghost",
		"/api/v1/artifacts/ghost",
		"/api/v1/glossary/ghost",
		"/api/v1/phases/discovery/previous",
		"/api/v1/phases/compliance/next",
	} {
		rec := get(t, e, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, MIMEProblemJSON, rec.Header().Get(echo.HeaderContentType), target)

		p := decode[ProblemDetails](t, rec)
		assert.Equal(t, http.StatusNotFound, p.Status)
		assert.Equal(t, "Not Found", p.Title)
		assert.Equal(t, target, p.Instance)
		assert.NotEmpty(t, p.Detail)
	}
}

func TestPhases(t *testing.T) {
	e := newTestEcho()

	phases := decode[[]models.Phase](t, get(t, e, "/api/v1/phases"))
	require.Len(t, phases, 5)
	for i, p := range phases {
		assert.Equal(t, i+1, p.Order)
	}

	next := decode[models.Phase](t, get(t, e, "/api/v1/phases/discovery/next"))
	assert.Equal(t, "design", next.ID)
	prev := decode[models.Phase](t, get(t, e, "/api/v1/phases/design/previous"))
	assert.Equal(t, "discovery", prev.ID)

	agents := decode[[]models.Agent](t, get(t, e, "/api/v1/phases/implementation/agents"))
	assert.NotEmpty(t, agents)
}

func TestWorkflowsAndArtifacts(t *testing.T) {
	e := newTestEcho()

	w := decode[models.Workflow](t, get(t, e, "/api/v1/workflows/ecommerce-checkout"))
	require.Len(t, w.Steps, 6)
	assert.False(t, w.Steps[2].QualityCheck.Passed)
	assert.True(t, w.Steps[3].QualityCheck.Passed)

	a := decode[models.Artifact](t, get(t, e, "/api/v1/artifacts/code-1"))
	assert.Equal(t, "typescript", a.Language)
	assert.Equal(t, "developer", a.Metadata.CreatedBy)
}

func TestGlossaryAndFAQ(t *testing.T) {
	e := newTestEcho()

	all := decode[[]models.GlossaryTerm](t, get(t, e, "/api/v1/glossary"))
	assert.Len(t, all, 8)
	hits := decode[[]models.GlossaryTerm](t, get(t, e, "/api/v1/glossary?q=traceability"))
	require.NotEmpty(t, hits)

	faq := decode[[]models.FAQItem](t, get(t, e, "/api/v1/faq?category=General"))
	assert.Len(t, faq, 2)
}

func TestOpenAPIDocumentsEveryRoute(t *testing.T) {
	e := newTestEcho()

	rec := get(t, e, "/api/openapi.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/vtp/api/v1"`)

	var doc struct {
		Paths map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &doc))

	param := regexp.MustCompile(`:(\w+)`)
	for _, r := range e.Routes() {
		if !strings.HasPrefix(r.Path, "/api/v1/") {
			continue
		}
		path := param.ReplaceAllString(strings.TrimPrefix(r.Path, "/api/v1"), "{$1}")
		assert.Contains(t, doc.Paths, path)
	}

	docs := get(t, e, "/api/docs")
	assert.Contains(t, docs.Body.String(), `url: "/vtp/api/openapi.yaml"`)
}
