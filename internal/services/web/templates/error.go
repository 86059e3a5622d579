package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/memegallery/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey    = "web.error.page_title_not_found"
	appErrorPageTitleUnavailableKey = "web.error.page_title_unavailable"
	appErrorPageTitleServerErrKey   = "web.error.page_title_server_error"
	appErrorHeadingNotFoundKey      = "web.error.title_not_found"
	appErrorHeadingUnavailableKey   = "web.error.title_unavailable"
	appErrorHeadingServerErrKey     = "web.error.title_server_error"
	appErrorMessageNotFoundKey      = "web.error.message_not_found"
	appErrorMessageUnavailableKey   = "web.error.message_unavailable"
	appErrorMessageServerErrKey     = "web.error.message_server_error"
	appErrorBackHomeKey             = "web.error.action_back_home"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	switch normalizeAppErrorStatus(statusCode) {
	case http.StatusNotFound:
		return T(loc, appErrorPageTitleNotFoundKey)
	case http.StatusServiceUnavailable:
		return T(loc, appErrorPageTitleUnavailableKey)
	default:
		return T(loc, appErrorPageTitleServerErrKey)
	}
}

func appErrorHeading(statusCode int, loc Localizer) string {
	switch normalizeAppErrorStatus(statusCode) {
	case http.StatusNotFound:
		return T(loc, appErrorHeadingNotFoundKey)
	case http.StatusServiceUnavailable:
		return T(loc, appErrorHeadingUnavailableKey)
	default:
		return T(loc, appErrorHeadingServerErrKey)
	}
}

func appErrorMessage(statusCode int, loc Localizer) string {
	switch normalizeAppErrorStatus(statusCode) {
	case http.StatusNotFound:
		return T(loc, appErrorMessageNotFoundKey)
	case http.StatusServiceUnavailable:
		return T(loc, appErrorMessageUnavailableKey)
	default:
		return T(loc, appErrorMessageServerErrKey)
	}
}

func normalizeAppErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusNotFound, http.StatusServiceUnavailable:
		return statusCode
	default:
		return http.StatusInternalServerError
	}
}

// AppErrorState renders the error body shown inside the page layout.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section id="app-error-state" class="app-error"`)
		h.attr("data-status", http.StatusText(normalizeAppErrorStatus(statusCode)))
		h.raw(`><h1>`)
		h.text(appErrorHeading(statusCode, loc))
		h.raw(`</h1><p>`)
		h.text(appErrorMessage(statusCode, loc))
		h.raw(`</p><a class="app-error-back"`)
		h.attr("href", routepath.Root)
		h.raw(`>`)
		h.text(T(loc, appErrorBackHomeKey))
		h.raw(`</a></section>`)
		return h.err
	})
}
