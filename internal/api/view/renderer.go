// Package view renders the HTML pages. Every page template is parsed on top
// of the shared layout and partials so pages only define "content".
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsFile = "templates/partials.html"
)

// Page is the value every template receives.
type Page struct {
	Title     string
	Path      string
	SignedIn  bool
	UserEmail string
	Notice    string
	Alert     string
	Data      any
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses all embedded templates. It fails if any page does not
// parse against the layout.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout").Funcs(funcs).ParseFS(templatesFS, layoutFile, partialsFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, f := range files {
		if f == layoutFile || f == partialsFile {
			continue
		}
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templatesFS, f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		r.pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}
	return r, nil
}

// MustNewRenderer is NewRenderer for package initialisation and tests.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render satisfies echo.Renderer. name is the page file name without
// extension.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"eq_str": func(a, b any) bool {
		return fmt.Sprint(a) == fmt.Sprint(b)
	},
}
