package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

const assetsPrefix = "/assets"

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed assets/*.css
var assetsFS embed.FS

// Renderer renders a view inside the shared layout. Each view gets its own template set
// so that every view can define the "view" block the layout mounts into #root.
type Renderer struct {
	views map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func NewRenderer(views ...string) (*Renderer, error) {
	renderer := &Renderer{views: make(map[string]*template.Template, len(views))}
	funcs := template.FuncMap{"asset": func(name string) string { return assetsPrefix + "/" + name }}

	for _, view := range views {
		tmpl, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+view+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse view %s: %w", view, err)
		}
		renderer.views[view] = tmpl
	}
	return renderer, nil
}

func (renderer *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := renderer.views[name]
	if !ok {
		return fmt.Errorf("view %s is not registered", name)
	}
	return tmpl.ExecuteTemplate(w, "layout.html", data)
}
