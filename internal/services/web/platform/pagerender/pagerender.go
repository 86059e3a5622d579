// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	webi18n "github.com/louisbranch/memegallery/internal/services/web/i18n"
	"github.com/louisbranch/memegallery/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/memegallery/internal/services/web/templates"
)

// Page describes a module page response for both full-page and fragment flows.
type Page struct {
	Title      string
	AppName    string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Localizer resolves the request language, persisting an explicit ?lang choice.
func Localizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	printer, lang := webi18n.ResolvePrinter(w, r)
	return printer, lang
}

// WritePage renders page. Script requests (HX-Request) receive the fragment
// alone; other requests receive the full document.
func WritePage(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, lang string, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	ctx := httpx.RequestContext(r)
	component := fragment
	if !httpx.IsHTMXRequest(r) {
		pageContext := webtemplates.PageContext{
			Title:   page.Title,
			AppName: page.AppName,
			Lang:    lang,
			Loc:     loc,
		}
		if r != nil && r.URL != nil {
			pageContext.CurrentPath = r.URL.Path
			pageContext.CurrentQuery = r.URL.RawQuery
		}
		component = webtemplates.Layout(pageContext, fragment)
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
