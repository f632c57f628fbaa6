package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phyten/decomment/internal/lang"
)

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	api := &API{Registry: lang.Builtin()}
	api.Register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestIndexPage(t *testing.T) {
	mux := testMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, fmt.Sprintf("%d languages loaded", lang.Builtin().Len())) {
		t.Fatalf("language count missing from page:\n%s", body)
	}
	if !strings.Contains(body, `data-default="python"`) {
		t.Fatalf("default language missing from page:\n%s", body)
	}
	if got := rec.Header().Get("Content-Security-Policy"); got == "" {
		t.Fatal("missing CSP header")
	}
}

func TestIndexNotFoundForOtherPaths(t *testing.T) {
	mux := testMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestAssetHandlers(t *testing.T) {
	mux := testMux(t)
	for path, wantType := range map[string]string{
		"/assets/styles.css": "text/css; charset=utf-8",
		"/assets/ui.js":      "application/javascript; charset=utf-8",
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status: %d", path, rec.Code)
		}
		if got := rec.Header().Get("Content-Type"); got != wantType {
			t.Fatalf("%s content type: %q", path, got)
		}
		if rec.Body.Len() == 0 {
			t.Fatalf("%s served empty body", path)
		}
	}
}

func TestLangsEndpoint(t *testing.T) {
	mux := testMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/langs", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d body %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Langs []struct {
			ID      string   `json:"id"`
			Aliases []string `json:"aliases"`
			Line    []string `json:"line"`
		} `json:"langs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Langs) < 70 {
		t.Fatalf("expected the full table, got %d entries", len(payload.Langs))
	}
	var sawPython bool
	for _, l := range payload.Langs {
		if l.ID == "python" {
			sawPython = true
			if len(l.Line) == 0 || l.Line[0] != "#" {
				t.Fatalf("python line markers: %v", l.Line)
			}
		}
	}
	if !sawPython {
		t.Fatal("python missing from listing")
	}
}

func TestLangsRejectsPost(t *testing.T) {
	rec := postJSON(t, testMux(t), "/api/langs", "{}")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestStripEndpoint(t *testing.T) {
	rec := postJSON(t, testMux(t), "/api/strip", `{"lang":"python","text":"x = 1  # note\n"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d body %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Lang     string `json:"lang"`
		Stripped string `json:"stripped"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Lang != "python" || payload.Stripped != "x = 1  \n" {
		t.Fatalf("payload: %+v", payload)
	}
}

func TestStripResolvesAlias(t *testing.T) {
	rec := postJSON(t, testMux(t), "/api/strip", `{"lang":"C++","text":"a; // b\n"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d body %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Lang string `json:"lang"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Lang != "cpp" {
		t.Fatalf("lang: got %q want cpp", payload.Lang)
	}
}

func TestSpansEndpoint(t *testing.T) {
	rec := postJSON(t, testMux(t), "/api/spans", `{"lang":"c","text":"a /* x */ b"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d body %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Spans []struct {
			Kind string `json:"kind"`
			Text string `json:"text"`
		} `json:"spans"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Spans) != 1 || payload.Spans[0].Kind != "block_comment" || payload.Spans[0].Text != "/* x */" {
		t.Fatalf("spans: %+v", payload.Spans)
	}
}

func TestSpansIncludeCode(t *testing.T) {
	rec := postJSON(t, testMux(t), "/api/spans", `{"lang":"c","text":"a /* x */ b","include_code":true}`)
	var payload struct {
		Spans []struct {
			Kind string `json:"kind"`
		} `json:"spans"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Spans) != 3 {
		t.Fatalf("expected 3 spans with code, got %d", len(payload.Spans))
	}
}

func TestSpansUnterminatedStrictAndLenient(t *testing.T) {
	mux := testMux(t)
	rec := postJSON(t, mux, "/api/spans", `{"lang":"c","text":"/* open"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("strict status: %d", rec.Code)
	}
	rec = postJSON(t, mux, "/api/spans", `{"lang":"c","text":"/* open","lenient":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("lenient status: %d body %s", rec.Code, rec.Body.String())
	}
}

func TestUnknownLanguageIs404(t *testing.T) {
	rec := postJSON(t, testMux(t), "/api/strip", `{"lang":"nope","text":"x"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestBadRequestBody(t *testing.T) {
	rec := postJSON(t, testMux(t), "/api/strip", `{"lang":"c","surprise":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestBannerEndpoint(t *testing.T) {
	rec := postJSON(t, testMux(t), "/api/banner", `{"lang":"python","text":"hello","width":20,"height":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d body %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Banner string `json:"banner"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	lines := strings.Split(payload.Banner, "\n")
	if len(lines) != 3 || !strings.Contains(lines[1], "hello") {
		t.Fatalf("banner: %q", payload.Banner)
	}
}
