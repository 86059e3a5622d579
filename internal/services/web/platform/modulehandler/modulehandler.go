// Package modulehandler provides a composable base for web module handlers.
//
// Modules embed Base to share localization, page rendering, and error
// writing instead of duplicating that scaffold.
package modulehandler

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/memegallery/internal/services/web/platform/pagerender"
	"github.com/louisbranch/memegallery/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/memegallery/internal/services/web/templates"
)

const defaultAppName = "Meme Gallery"

// Base carries shared handler state for web modules.
type Base struct {
	appName string
}

// NewBase builds a handler base for the named application.
func NewBase(appName string) Base {
	return Base{appName: strings.TrimSpace(appName)}
}

// NewTestBase builds a handler base with default branding for tests.
func NewTestBase() Base {
	return NewBase(defaultAppName)
}

// AppName returns the application display name.
func (b Base) AppName() string {
	if b.appName == "" {
		return defaultAppName
	}
	return b.appName
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return pagerender.Localizer(w, r)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.AppName())
}

// WriteNotFound renders a 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.AppName())
}

// WritePage renders a module page (fragment-aware) with the given title and
// content fragment.
func (b Base) WritePage(
	w http.ResponseWriter,
	r *http.Request,
	loc webtemplates.Localizer,
	lang string,
	title string,
	statusCode int,
	fragment templ.Component,
) {
	if err := pagerender.WritePage(w, r, loc, lang, pagerender.Page{
		Title:      title,
		AppName:    b.AppName(),
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}
