package pages

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"virtual-team-planner/backend/internal/routes"
	"virtual-team-planner/backend/internal/views"
)

// Resources renders the FAQ, optionally filtered by ?category=.
func (h *Handler) Resources(c echo.Context) error {
	category := c.QueryParam("category")
	faq := h.catalog.FAQItems()
	if category != "" {
		faq = h.catalog.FAQByCategory(category)
	}
	return h.render(c, http.StatusOK, routes.PageResources, views.TemplateResources, "Resources", &views.ResourcesData{
		Category:   category,
		Categories: h.catalog.FAQCategories(),
		FAQ:        faq,
		TermCount:  len(h.catalog.GlossaryTerms()),
	})
}

// Glossary renders the glossary, optionally searched with ?q=.
func (h *Handler) Glossary(c echo.Context) error {
	query := c.QueryParam("q")
	terms := h.catalog.SearchGlossary(query)

	data := &views.GlossaryData{Query: query, Terms: make([]views.GlossaryEntry, len(terms))}
	for i, t := range terms {
		entry := views.GlossaryEntry{Term: t}
		for _, id := range t.RelatedTerms {
			rel := views.RelatedTerm{ID: id, Label: id}
			if g, ok := h.catalog.GlossaryTerm(id); ok {
				rel.Label = g.Term
				rel.Linked = true
			}
			entry.Related = append(entry.Related, rel)
		}
		data.Terms[i] = entry
	}
	return h.render(c, http.StatusOK, routes.PageGlossary, views.TemplateGlossary, "Glossary", data)
}
