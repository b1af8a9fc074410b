package contador

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/index.html
var templates embed.FS

var homeTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

func RenderHome(w io.Writer, snap Snapshot) error {
	return homeTemplate.Execute(w, snap)
}
