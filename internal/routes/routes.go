// Package routes owns the site's URL space: the ordered route table, the
// matcher that resolves a path to a page, path builders for detail pages and
// the navigation items shared by the header and footer.
package routes

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Page names a page component.
type Page string

const (
	PageHome           Page = "home"
	PageAgents         Page = "agents"
	PageAgentDetail    Page = "agent-detail"
	PageLifecycle      Page = "lifecycle"
	PagePhaseDetail    Page = "phase-detail"
	PageExamples       Page = "examples"
	PageWorkflowDetail Page = "workflow-detail"
	PageWorkflowStep   Page = "workflow-step"
	PageInteractive    Page = "interactive"
	PageResources      Page = "resources"
	PageGlossary       Page = "glossary"
	PageNotFound       Page = "not-found"
)

// Route pairs a path pattern with the page it renders. Patterns use the
// echo syntax: ":name" captures one segment and a final "*" captures the
// rest of the path.
type Route struct {
	Pattern string
	Page    Page
}

// Table is the ordered route table.
var Table = []Route{
	{"/", PageHome},
	{"/agents", PageAgents},
	{"/agents/:agentId", PageAgentDetail},
	{"/lifecycle", PageLifecycle},
	{"/lifecycle/:phaseId", PagePhaseDetail},
	{"/examples", PageExamples},
	{"/examples/:workflowId", PageWorkflowDetail},
	{"/examples/:workflowId/step/:stepNumber", PageWorkflowStep},
	{"/interactive", PageInteractive},
	{"/resources", PageResources},
	{"/resources/glossary", PageGlossary},
	{"/*", PageNotFound},
}

// Result is the outcome of matching a path against Table.
type Result struct {
	Route  Route
	Params map[string]string
}

// Param returns the captured value of name, or "".
func (r Result) Param(name string) string {
	return r.Params[name]
}

const (
	rankWildcard = iota
	rankParam
	rankStatic
)

// Match resolves path to the most specific route in Table. Static segments
// beat named segments, which beat the wildcard; a trailing slash is
// ignored. Every path matches at least the catch-all.
func Match(path string) Result {
	segs := split(path)

	var (
		best     Result
		bestRank []int
	)
	for _, r := range Table {
		params, rank, ok := matchPattern(split(r.Pattern), segs)
		if !ok {
			continue
		}
		if bestRank == nil || slices.Compare(rank, bestRank) > 0 {
			best = Result{Route: r, Params: params}
			bestRank = rank
		}
	}
	return best
}

func matchPattern(pattern, segs []string) (map[string]string, []int, bool) {
	params := map[string]string{}
	rank := make([]int, 0, len(pattern))
	for i, p := range pattern {
		if p == "*" {
			params["*"] = strings.Join(segs[i:], "/")
			// A wildcard always ranks below a full match of the same prefix.
			return params, append(rank, rankWildcard), true
		}
		if i >= len(segs) {
			return nil, nil, false
		}
		switch {
		case strings.HasPrefix(p, ":"):
			v, err := url.PathUnescape(segs[i])
			if err != nil {
				v = segs[i]
			}
			params[p[1:]] = v
			rank = append(rank, rankParam)
		case p == segs[i]:
			rank = append(rank, rankStatic)
		default:
			return nil, nil, false
		}
	}
	if len(pattern) != len(segs) {
		return nil, nil, false
	}
	// Full matches outrank any wildcard match sharing the same prefix.
	return params, append(rank, rankStatic+1), true
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// AgentPath is the detail path of an agent.
func AgentPath(id string) string { return "/agents/" + url.PathEscape(id) }

// PhasePath is the detail path of a lifecycle phase.
func PhasePath(id string) string { return "/lifecycle/" + url.PathEscape(id) }

// WorkflowPath is the detail path of an example workflow.
func WorkflowPath(id string) string { return "/examples/" + url.PathEscape(id) }

// WorkflowStepPath is the path of step n (1-based) of a workflow.
func WorkflowStepPath(id string, n int) string {
	return WorkflowPath(id) + "/step/" + strconv.Itoa(n)
}

// GlossaryAnchor is the in-page link to a glossary term.
func GlossaryAnchor(id string) string { return "/resources/glossary#" + url.PathEscape(id) }

// IsActive reports whether a navigation item pointing at item should be
// highlighted while current is displayed. Home is active only on an exact
// match; every other item is active for itself and everything below it.
func IsActive(current, item string) bool {
	if item == "/" {
		return current == "/"
	}
	return strings.HasPrefix(current, item)
}

// StripBase removes the base path prefix from path. The result always
// starts with a slash.
func StripBase(base, path string) string {
	if base != "" && strings.HasPrefix(path, base) {
		path = strings.TrimPrefix(path, base)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// WithBase prefixes an in-site path with the base path. External URLs and
// fragments are returned unchanged.
func WithBase(base, path string) string {
	if strings.Contains(path, "://") || strings.HasPrefix(path, "#") {
		return path
	}
	if path == "/" && base != "" {
		return base
	}
	return base + path
}
