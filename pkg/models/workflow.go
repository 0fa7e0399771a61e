package models

// Workflow is an ordered walk through the lifecycle for one scenario.
type Workflow struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Industry    string         `json:"industry" yaml:"industry"`
	Complexity  Complexity     `json:"complexity" yaml:"complexity"`
	Description string         `json:"description" yaml:"description"`
	Steps       []WorkflowStep `json:"steps" yaml:"steps"`
}

// WorkflowStep is one unit of agent collaboration inside a workflow.
type WorkflowStep struct {
	ID              string       `json:"id" yaml:"id"`
	Phase           string       `json:"phase" yaml:"phase"`                     // phase ID
	ActiveAgents    []string     `json:"active_agents" yaml:"active_agents"`     // agent IDs
	InputArtifacts  []string     `json:"input_artifacts" yaml:"input_artifacts"` // artifact IDs
	AgentReasoning  string       `json:"agent_reasoning" yaml:"agent_reasoning"`
	OutputArtifacts []string     `json:"output_artifacts" yaml:"output_artifacts"`
	QualityCheck    QualityCheck `json:"quality_check" yaml:"quality_check"`
}

// QualityCheck is the gate evaluated at the end of a step.
type QualityCheck struct {
	Passed   bool     `json:"passed" yaml:"passed"`
	Criteria []string `json:"criteria" yaml:"criteria"`
	Feedback string   `json:"feedback" yaml:"feedback"`
}

// Label returns PASSED or FAILED.
func (q QualityCheck) Label() string {
	if q.Passed {
		return "PASSED"
	}
	return "FAILED"
}
