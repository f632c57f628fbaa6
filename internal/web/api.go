package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/phyten/decomment/internal/banner"
	"github.com/phyten/decomment/internal/lang"
	"github.com/phyten/decomment/internal/model"
	"github.com/phyten/decomment/internal/scan"
)

const maxRequestBytes = 4 << 20

// API serves the JSON endpoints backed by a language registry.
type API struct {
	Registry *lang.Registry
}

// Register attaches the UI and the API handlers to the provided mux.
func (a *API) Register(mux *http.ServeMux) {
	a.registerUI(mux)
	mux.HandleFunc("/api/langs", a.langsHandler)
	mux.HandleFunc("/api/spans", a.spansHandler)
	mux.HandleFunc("/api/strip", a.stripHandler)
	mux.HandleFunc("/api/banner", a.bannerHandler)
}

type langInfo struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Aliases  []string `json:"aliases,omitempty"`
	Line     []string `json:"line,omitempty"`
	Block    []string `json:"block,omitempty"`
	Nestable bool     `json:"nestable,omitempty"`
	Caveats  string   `json:"caveats,omitempty"`
}

func (a *API) langsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	byID := make(map[string][]string)
	for alias, id := range a.Registry.Aliases() {
		byID[id] = append(byID[id], alias)
	}
	infos := make([]langInfo, 0, a.Registry.Len())
	for _, id := range a.Registry.IDs() {
		rule, err := a.Registry.Lookup(id)
		if err != nil {
			continue
		}
		aliases := byID[id]
		sort.Strings(aliases)
		info := langInfo{
			ID:       rule.ID,
			Name:     rule.Name,
			Aliases:  aliases,
			Nestable: rule.NestsAny(),
			Caveats:  rule.Caveats,
		}
		for _, m := range rule.LineMarkers {
			info.Line = append(info.Line, m.Text)
		}
		for _, d := range rule.BlockDelims {
			info.Block = append(info.Block, d.Open+" "+d.Close)
		}
		infos = append(infos, info)
	}
	writeJSON(w, map[string]any{"langs": infos})
}

type scanRequest struct {
	Lang        string `json:"lang"`
	Text        string `json:"text"`
	IncludeCode bool   `json:"include_code"`
	Lenient     bool   `json:"lenient"`
}

type spanPayload struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Line  int    `json:"line"`
	Col   int    `json:"col"`
	Kind  string `json:"kind"`
	Text  string `json:"text"`
}

func (a *API) spansHandler(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rule, ok := a.lookupRule(w, req.Lang)
	if !ok {
		return
	}
	spans, err := scanWith(rule, req.Text, req.Lenient)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	payload := make([]spanPayload, 0, len(spans))
	for _, s := range spans {
		if !req.IncludeCode && s.Kind == model.SpanKindCode {
			continue
		}
		payload = append(payload, spanPayload{
			Start: s.Start,
			End:   s.End,
			Line:  s.Line,
			Col:   s.Col,
			Kind:  string(s.Kind),
			Text:  s.Text(req.Text),
		})
	}
	writeJSON(w, map[string]any{"lang": rule.ID, "spans": payload})
}

func (a *API) stripHandler(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rule, ok := a.lookupRule(w, req.Lang)
	if !ok {
		return
	}
	spans, err := scanWith(rule, req.Text, req.Lenient)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	var b strings.Builder
	for _, s := range spans {
		if s.Kind == model.SpanKindCode {
			b.WriteString(s.Text(req.Text))
		}
	}
	writeJSON(w, map[string]any{"lang": rule.ID, "stripped": b.String()})
}

type bannerRequest struct {
	Lang   string `json:"lang"`
	Text   string `json:"text"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	HAlign string `json:"halign"`
	VAlign string `json:"valign"`
	Filler string `json:"filler"`
}

func (a *API) bannerHandler(w http.ResponseWriter, r *http.Request) {
	var req bannerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rule, ok := a.lookupRule(w, req.Lang)
	if !ok {
		return
	}
	out, err := banner.Build(rule, req.Text, banner.Options{
		Width:  req.Width,
		Height: req.Height,
		HAlign: req.HAlign,
		VAlign: req.VAlign,
		Filler: req.Filler,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, map[string]any{"lang": rule.ID, "banner": out})
}

func (a *API) lookupRule(w http.ResponseWriter, id string) (lang.Rule, bool) {
	rule, err := a.Registry.Lookup(id)
	if err != nil {
		var nf *lang.NotFoundError
		if errors.As(err, &nf) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return lang.Rule{}, false
	}
	return rule, true
}

// scanWith runs the scanner and, in lenient mode, keeps the spans of an
// input whose last block comment is unterminated.
func scanWith(rule lang.Rule, text string, lenient bool) ([]model.Span, error) {
	spans, err := scan.Scan(rule, text)
	if err != nil {
		var ub *scan.UnterminatedBlockError
		if lenient && errors.As(err, &ub) {
			return spans, nil
		}
		return nil, err
	}
	return spans, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
