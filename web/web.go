// Package web embute os templates HTML e os arquivos estáticos do painel.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer implementa echo.Renderer sobre html/template.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("R$ %.2f", v)
		},
	}

	return &Renderer{
		templates: template.Must(
			template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"),
		),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// StaticFS expõe o conteúdo de static/ para o echo servir em /static.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
