package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// petView feeds the pet detail page.
type petView struct {
	ID      int64
	Name    string
	Species string
}

// petNotFoundView feeds the not-found page.
type petNotFoundView struct {
	ID int64
}

// speciesView feeds the species listing page.
type speciesView struct {
	Species string
	Count   int
	Pets    []petView
}
