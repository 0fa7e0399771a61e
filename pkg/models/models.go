// Package models defines the domain models for the virtual team content site
package models

// Category groups agents by the part of the lifecycle they own
type Category string

const (
	CategoryDiscovery      Category = "discovery"
	CategoryDesign         Category = "design"
	CategoryImplementation Category = "implementation"
	CategoryQA             Category = "qa"
	CategoryCompliance     Category = "compliance"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryDiscovery,
	CategoryDesign,
	CategoryImplementation,
	CategoryQA,
	CategoryCompliance,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Color returns the colour tag used to render the category
func (c Category) Color() string {
	switch c {
	case CategoryDiscovery:
		return "areas"
	case CategoryDesign:
		return "projects"
	case CategoryImplementation:
		return "resources"
	case CategoryQA:
		return "qa"
	case CategoryCompliance:
		return "compliance"
	default:
		return "default"
	}
}

// PhaseColor is the colour tag attached to a lifecycle phase
type PhaseColor string

const (
	ColorAreas      PhaseColor = "areas"
	ColorProjects   PhaseColor = "projects"
	ColorResources  PhaseColor = "resources"
	ColorQA         PhaseColor = "qa"
	ColorCompliance PhaseColor = "compliance"
)

// Valid reports whether c is one of the known phase colours
func (c PhaseColor) Valid() bool {
	switch c {
	case ColorAreas, ColorProjects, ColorResources, ColorQA, ColorCompliance:
		return true
	}
	return false
}

// Complexity describes how involved an example workflow is
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// Valid reports whether c is one of the known complexities
func (c Complexity) Valid() bool {
	switch c {
	case ComplexitySimple, ComplexityMedium, ComplexityComplex:
		return true
	}
	return false
}

// ArtifactType is the kind of content an artifact carries
type ArtifactType string

const (
	ArtifactCode          ArtifactType = "code"
	ArtifactMarkdown      ArtifactType = "markdown"
	ArtifactTest          ArtifactType = "test"
	ArtifactDocumentation ArtifactType = "documentation"
)

// Valid reports whether t is one of the known artifact types
func (t ArtifactType) Valid() bool {
	switch t {
	case ArtifactCode, ArtifactMarkdown, ArtifactTest, ArtifactDocumentation:
		return true
	}
	return false
}

// Agent is a named role in the virtual team
type Agent struct {
	ID                 string   `json:"id" yaml:"id"`
	Name               string   `json:"name" yaml:"name"`
	Category           Category `json:"category" yaml:"category"`
	Description        string   `json:"description" yaml:"description"`
	Icon               string   `json:"icon" yaml:"icon"`
	Capabilities       []string `json:"capabilities" yaml:"capabilities"`
	ExampleInputs      []string `json:"example_inputs" yaml:"example_inputs"`
	ExampleOutputs     []string `json:"example_outputs" yaml:"example_outputs"` // artifact IDs
	PhaseParticipation []string `json:"phase_participation" yaml:"phase_participation"`
	RelatedAgents      []string `json:"related_agents" yaml:"related_agents"`
}

// Phase is one ordered stage of the delivery lifecycle
type Phase struct {
	ID                  string     `json:"id" yaml:"id"`
	Name                string     `json:"name" yaml:"name"`
	Order               int        `json:"order" yaml:"order"`
	DurationEstimate    string     `json:"duration_estimate" yaml:"duration_estimate"`
	Objectives          []string   `json:"objectives" yaml:"objectives"`
	ParticipatingAgents []string   `json:"participating_agents" yaml:"participating_agents"`
	Deliverables        []string   `json:"deliverables" yaml:"deliverables"`
	QualityGateCriteria []string   `json:"quality_gate_criteria" yaml:"quality_gate_criteria"`
	ExampleArtifacts    []string   `json:"example_artifacts" yaml:"example_artifacts"` // artifact IDs
	Color               PhaseColor `json:"color" yaml:"color"`
}

// Metadata records who produced an artifact and when
type Metadata struct {
	CreatedBy string `json:"created_by" yaml:"created_by"` // agent ID
	Phase     string `json:"phase" yaml:"phase"`           // phase ID
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// Artifact is a piece of content produced by an agent during a phase
type Artifact struct {
	ID       string       `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Type     ArtifactType `json:"type" yaml:"type"`
	Content  string       `json:"content" yaml:"content"`
	Language string       `json:"language,omitempty" yaml:"language,omitempty"`
	Metadata Metadata     `json:"metadata" yaml:"metadata"`
}

// GlossaryTerm defines one piece of vocabulary
type GlossaryTerm struct {
	ID           string   `json:"id" yaml:"id"`
	Term         string   `json:"term" yaml:"term"`
	Definition   string   `json:"definition" yaml:"definition"`
	RelatedTerms []string `json:"related_terms" yaml:"related_terms"`
}

// FAQItem is a question and its answer
type FAQItem struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Category string `json:"category" yaml:"category"`
}
