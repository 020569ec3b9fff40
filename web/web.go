// Package web embeds the page templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/monbon24/launcher/internal/models"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

var funcs = template.FuncMap{
	// Shapes are compile-time constants, so their style is trusted CSS.
	"shapeStyle": func(s models.Shape) template.CSS {
		return template.CSS(fmt.Sprintf(
			"--shape-color:%s;--shape-size:%dpx;top:%d%%;left:%d%%;animation-delay:%.1fs;animation-duration:%.1fs",
			s.Color, s.Size, s.Top, s.Left, s.Delay, s.Duration))
	},
}

// Templates parses every page and partial template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFiles, "templates/*.html")
}

// Assets serves the static files under their "static/" prefix, matching
// request paths mounted at /static.
func Assets() http.FileSystem {
	return http.FS(staticFiles)
}
