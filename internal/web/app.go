// Package web embeds the preview page: paste source and see the
// marker-preserving format result, or dry-run the whole repository.
package web

import (
	_ "embed"
	"html/template"
	"io"
	"net/http"
	"sync"
)

const (
	stylesPath = "/assets/styles.css"
	scriptPath = "/assets/ui.js"
)

var (
	//go:embed templates/index.html
	indexHTML string

	//go:embed assets/styles.css
	stylesCSS string

	//go:embed assets/ui.js
	uiJS string
)

var indexTmpl = sync.OnceValue(func() *template.Template {
	return template.Must(template.New("index").Parse(indexHTML))
})

type pageData struct {
	StylesPath string
	ScriptPath string
}

// Register mounts the UI routes. The /api/format and /api/run handlers
// live in the serve command, next to the engine wiring.
func Register(mux *http.ServeMux) {
	mux.HandleFunc("/", serveIndex)
	mux.HandleFunc(stylesPath, staticAsset("text/css; charset=utf-8", stylesCSS))
	mux.HandleFunc(scriptPath, staticAsset("application/javascript; charset=utf-8", uiJS))
}

func serveIndex(w http.ResponseWriter, _ *http.Request) {
	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Referrer-Policy", "no-referrer")
	h.Set("X-Frame-Options", "DENY")
	h.Set("Content-Security-Policy", "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'")
	if err := indexTmpl().Execute(w, pageData{StylesPath: stylesPath, ScriptPath: scriptPath}); err != nil {
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

func staticAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = io.WriteString(w, body)
	}
}
