// Package views renders pages inside the shared header/footer shell.
//
// Templates are embedded and parsed once. Every page template defines a
// "content" block that the layout places between the header and the
// footer; shared components (badge, button, card, icon) are template
// partials or functions available to every page.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"virtual-team-planner/backend/internal/routes"
)

//go:embed templates
var templateFS embed.FS

// Site describes the deployment the pages are rendered for.
type Site struct {
	Title     string
	BasePath  string
	SourceURL string
}

// NavLink is a navigation item annotated with its active state.
type NavLink struct {
	routes.NavItem
	Active bool
}

// Page is the data handed to the layout. Handlers fill Title, Path and
// Data; the renderer fills the rest.
type Page struct {
	Title string
	Path  string // current path with the base path stripped
	Data  any

	Site   Site
	Header []NavLink
	Footer []NavLink
}

// Renderer executes the embedded templates. It implements echo.Renderer.
type Renderer struct {
	site  Site
	md    goldmark.Markdown
	pages map[string]*template.Template
}

// New parses every embedded template.
func New(site Site) (*Renderer, error) {
	r := &Renderer{
		site:  site,
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
		pages: map[string]*template.Template{},
	}

	base, err := template.New("layout").Funcs(r.funcs()).ParseFS(templateFS,
		"templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("list page templates: %w", err)
	}
	for _, f := range files {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout: %w", err)
		}
		if _, err := t.ParseFS(templateFS, f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		r.pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}
	return r, nil
}

// Has reports whether a page template called name exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Render implements echo.Renderer. data must be a *Page or Page.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	var p Page
	switch v := data.(type) {
	case *Page:
		p = *v
	case Page:
		p = v
	default:
		return fmt.Errorf("render %s: unexpected data %T", name, data)
	}
	return r.Execute(w, name, p)
}

// Execute renders page name into w. The output is buffered so a template
// error never leaves a half-written page behind.
func (r *Renderer) Execute(w io.Writer, name string, p Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("render: unknown page %q", name)
	}

	if p.Path == "" {
		p.Path = "/"
	}
	p.Site = r.site
	p.Header = navLinks(routes.HeaderNav(), p.Path)
	p.Footer = navLinks(routes.FooterNav(r.site.SourceURL), p.Path)

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func navLinks(items []routes.NavItem, current string) []NavLink {
	out := make([]NavLink, len(items))
	for i, item := range items {
		out[i] = NavLink{NavItem: item, Active: !item.External && routes.IsActive(current, item.Path)}
	}
	return out
}

// Markdown converts source to HTML.
func (r *Renderer) Markdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
