package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/omghumre/ui-generator-agent/logger"
	"github.com/omghumre/ui-generator-agent/prompt"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// handleIndex serves the single-page front-end
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Frameworks []prompt.Framework
		Default    string
	}{
		Frameworks: prompt.Frameworks(),
		Default:    s.settings.Generation.Framework,
	}

	// Render to a buffer first so a template failure never half-writes a page
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		logger.Errorf("Failed to render index page: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Errorf("Failed to write index page: %v", err)
	}
}
