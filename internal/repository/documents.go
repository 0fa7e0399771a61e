package repository

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"virtual-team-planner/backend/internal/catalog"
	"virtual-team-planner/backend/pkg/models"
)

// Document kinds, in table order.
const (
	KindAgent    = "agent"
	KindPhase    = "phase"
	KindWorkflow = "workflow"
	KindArtifact = "artifact"
	KindGlossary = "glossary"
	KindFAQ      = "faq"
)

// Document is one catalog row as stored in a database: the record is kept
// as a JSON body, keyed by kind and id, with its position in the table.
type Document struct {
	Kind     string
	ID       string
	Position int
	Body     []byte
}

func encodeTables(t catalog.Tables) ([]Document, error) {
	var docs []Document
	add := func(kind, id string, pos int, v any) error {
		body, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s %q: %w", kind, id, err)
		}
		docs = append(docs, Document{Kind: kind, ID: id, Position: pos, Body: body})
		return nil
	}

	for i, a := range t.Agents {
		if err := add(KindAgent, a.ID, i, a); err != nil {
			return nil, err
		}
	}
	for i, p := range t.Phases {
		if err := add(KindPhase, p.ID, i, p); err != nil {
			return nil, err
		}
	}
	for i, w := range t.Workflows {
		if err := add(KindWorkflow, w.ID, i, w); err != nil {
			return nil, err
		}
	}
	for i, a := range t.Artifacts {
		if err := add(KindArtifact, a.ID, i, a); err != nil {
			return nil, err
		}
	}
	for i, g := range t.GlossaryTerms {
		if err := add(KindGlossary, g.ID, i, g); err != nil {
			return nil, err
		}
	}
	for i, f := range t.FAQItems {
		if err := add(KindFAQ, f.ID, i, f); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

func decodeTables(docs []Document) (catalog.Tables, error) {
	docs = slices.Clone(docs)
	slices.SortStableFunc(docs, func(a, b Document) int {
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		return cmp.Compare(a.Position, b.Position)
	})

	var t catalog.Tables
	for _, d := range docs {
		var err error
		switch d.Kind {
		case KindAgent:
			t.Agents, err = appendDecoded[models.Agent](t.Agents, d)
		case KindPhase:
			t.Phases, err = appendDecoded[models.Phase](t.Phases, d)
		case KindWorkflow:
			t.Workflows, err = appendDecoded[models.Workflow](t.Workflows, d)
		case KindArtifact:
			t.Artifacts, err = appendDecoded[models.Artifact](t.Artifacts, d)
		case KindGlossary:
			t.GlossaryTerms, err = appendDecoded[models.GlossaryTerm](t.GlossaryTerms, d)
		case KindFAQ:
			t.FAQItems, err = appendDecoded[models.FAQItem](t.FAQItems, d)
		default:
			err = fmt.Errorf("unknown document kind %q", d.Kind)
		}
		if err != nil {
			return catalog.Tables{}, err
		}
	}
	return t, nil
}

func appendDecoded[T any](dst []T, d Document) ([]T, error) {
	var v T
	if err := json.Unmarshal(d.Body, &v); err != nil {
		return nil, fmt.Errorf("decode %s %q: %w", d.Kind, d.ID, err)
	}
	return append(dst, v), nil
}
