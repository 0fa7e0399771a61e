package views

import (
	"errors"
	"fmt"
	"html/template"
	"strings"

	"virtual-team-planner/backend/internal/routes"
	"virtual-team-planner/backend/pkg/models"
)

// icons maps icon names used in the content tables to glyphs.
var icons = map[string]string{
	"Clipboard":   "📋",
	"Users":       "👥",
	"Building2":   "🏢",
	"Code2":       "💻",
	"CheckSquare": "☑",
	"Terminal":    "⌨",
	"Bot":         "🤖",
	"Bug":         "🐞",
	"Shield":      "🛡",
	"FileCheck":   "📄",
	"Scale":       "⚖",
	"GitBranch":   "🔀",
	"Menu":        "☰",
	"ArrowLeft":   "←",
	"ArrowRight":  "→",
	"Check":       "✓",
	"X":           "✗",
}

const fallbackIcon = "●"

// Glyph returns the glyph for an icon name, or a neutral dot when the name
// is unknown.
func Glyph(name string) string {
	if g, ok := icons[name]; ok {
		return g
	}
	return fallbackIcon
}

// BadgeClass maps a badge variant to its CSS classes. Agent categories
// map to their colour; anything else gets the default style.
func BadgeClass(variant string) string {
	color := models.Category(variant).Color()
	if color == "default" && models.PhaseColor(variant).Valid() {
		color = variant
	}
	return "badge badge-" + color
}

// ButtonClass returns the CSS classes of a button. Unknown variants fall
// back to primary and unknown sizes to md.
func ButtonClass(variant, size string) string {
	switch variant {
	case "primary", "secondary", "ghost":
	default:
		variant = "primary"
	}
	switch size {
	case "sm", "md", "lg":
	default:
		size = "md"
	}
	return "btn btn-" + variant + " btn-" + size
}

// CardClass returns the CSS classes of a card.
func CardClass(hover bool) string {
	if hover {
		return "card card-hover"
	}
	return "card"
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"link": func(p string) string { return routes.WithBase(r.site.BasePath, p) },
		"agentPath": func(id string) string {
			return routes.WithBase(r.site.BasePath, routes.AgentPath(id))
		},
		"phasePath": func(id string) string {
			return routes.WithBase(r.site.BasePath, routes.PhasePath(id))
		},
		"workflowPath": func(id string) string {
			return routes.WithBase(r.site.BasePath, routes.WorkflowPath(id))
		},
		"stepPath": func(id string, n int) string {
			return routes.WithBase(r.site.BasePath, routes.WorkflowStepPath(id, n))
		},
		"glossaryPath": func(id string) string {
			return routes.WithBase(r.site.BasePath, routes.GlossaryAnchor(id))
		},
		"icon": func(name string) template.HTML {
			return template.HTML(fmt.Sprintf(`<span class="icon" aria-hidden="true">%s</span>`,
				template.HTMLEscapeString(Glyph(name))))
		},
		"badgeClass":  BadgeClass,
		"buttonClass": ButtonClass,
		"cardClass":   CardClass,
		"markdown":    r.Markdown,
		"title":       titleCase,
		"upper":       strings.ToUpper,
		"inc":         func(n int) int { return n + 1 },
		"dict":        dict,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// dict builds a map from alternating keys and values so partials can take
// named arguments.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}
