package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func textComponent(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

func TestWritePageRendersFragmentForScriptRequests(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	loc, lang := Localizer(rr, req)
	err := WritePage(rr, req, loc, lang, Page{
		Title:      "Gallery",
		AppName:    "Meme Gallery",
		StatusCode: http.StatusCreated,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected fragment without full document wrapper")
	}
}

func TestWritePageRendersFullDocument(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	loc, lang := Localizer(rr, req)
	err := WritePage(rr, req, loc, lang, Page{
		AppName:  "Meme Gallery",
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!DOCTYPE html>", `id="fragment-root"`, "<title>Meme Gallery</title>"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWritePageReturnsRenderErrorWithoutWriting(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	boom := errors.New("boom")
	err := WritePage(rr, req, nil, "", Page{
		Fragment: templ.ComponentFunc(func(context.Context, io.Writer) error { return boom }),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WritePage() error = %v, want %v", err, boom)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
}

func TestLocalizerPersistsQueryLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=zh-CN", nil)
	rr := httptest.NewRecorder()
	_, lang := Localizer(rr, req)
	if lang != "zh-Hans" {
		t.Fatalf("lang = %q, want zh-Hans", lang)
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatal("expected language cookie")
	}
}
