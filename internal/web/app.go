package web

import (
	_ "embed"
	"html/template"
	"net/http"
	"sync"
)

//go:embed templates/index.html
var indexHTML string

//go:embed assets/styles.css
var stylesCSS string

//go:embed assets/ui.js
var scriptJS string

// uiAssets maps served paths to embedded content and content type.
var uiAssets = map[string]struct {
	body        string
	contentType string
}{
	"/assets/styles.css": {stylesCSS, "text/css; charset=utf-8"},
	"/assets/ui.js":      {scriptJS, "application/javascript; charset=utf-8"},
}

var (
	indexOnce sync.Once
	indexTmpl *template.Template
)

// indexData feeds the UI template. LangCount and DefaultLang come from
// the registry backing the API, so the page reflects loaded rule files.
type indexData struct {
	LangCount   int
	DefaultLang string
	StylesPath  string
	ScriptPath  string
}

func (a *API) registerUI(mux *http.ServeMux) {
	mux.HandleFunc("/", a.indexHandler)
	for path := range uiAssets {
		mux.HandleFunc(path, assetHandler)
	}
}

func (a *API) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data := indexData{
		LangCount:   a.Registry.Len(),
		DefaultLang: a.defaultLang(),
		StylesPath:  "/assets/styles.css",
		ScriptPath:  "/assets/ui.js",
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'")
	if err := loadTemplate().Execute(w, data); err != nil {
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

// defaultLang preselects the UI's language dropdown.
func (a *API) defaultLang() string {
	if _, err := a.Registry.Lookup("python"); err == nil {
		return "python"
	}
	if ids := a.Registry.IDs(); len(ids) > 0 {
		return ids[0]
	}
	return ""
}

func assetHandler(w http.ResponseWriter, r *http.Request) {
	asset, ok := uiAssets[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", asset.contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(asset.body))
}

func loadTemplate() *template.Template {
	indexOnce.Do(func() {
		indexTmpl = template.Must(template.New("index").Parse(indexHTML))
	})
	return indexTmpl
}
