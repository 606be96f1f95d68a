package server

import (
	_ "embed"
	"html/template"
	"log"
	"net/http"

	"github.com/misbah/resumeai/internal/types"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// handleIndex serves the two-pane form page.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Styles []types.StyleOption
	}{
		Styles: types.Styles(),
	}
	if err := indexTmpl.Execute(w, data); err != nil {
		log.Printf("Error rendering index page: %v", err)
	}
}
