package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	webi18n "github.com/louisbranch/memegallery/internal/services/web/i18n"
	"github.com/louisbranch/memegallery/internal/services/web/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Title        string
	AppName      string
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
}

// LanguageOption represents a supported language option in the UI.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	active, _ := webi18n.ParseTag(page.Lang)
	supported := webi18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  T(page.Loc, languageKeyLabel(tag)),
			URL:    routepath.WithLanguage(page.CurrentPath, page.CurrentQuery, tag.String()),
			Active: tag == active,
		})
	}
	return options
}

func languageKeyLabel(tag language.Tag) string {
	if tag == language.SimplifiedChinese {
		return "nav.lang_zh"
	}
	return "nav.lang_en"
}

func pageTitle(page PageContext) string {
	title := strings.TrimSpace(page.Title)
	appName := strings.TrimSpace(page.AppName)
	switch {
	case title == "":
		return appName
	case appName == "" || title == appName:
		return title
	default:
		return title + " | " + appName
	}
}

// Layout renders the full HTML document around body.
func Layout(page PageContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		lang := strings.TrimSpace(page.Lang)
		if lang == "" {
			lang = webi18n.Default().String()
		}
		h.raw(`<!DOCTYPE html><html`)
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(pageTitle(page))
		h.raw(`</title><link rel="stylesheet"`)
		h.attr("href", routepath.StaticPrefix+"gallery.css")
		h.raw(`><script defer`)
		h.attr("src", routepath.StaticPrefix+"gallery.js")
		h.raw(`></script></head><body><header class="app-header"><h1>`)
		h.text(strings.TrimSpace(page.AppName))
		h.raw(`</h1><nav class="language-switcher">`)
		for _, option := range LanguageOptions(page) {
			h.raw(`<a`)
			h.attr("href", option.URL)
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.raw(` class="active" aria-current="true"`)
			}
			h.raw(`>`)
			h.text(option.Label)
			h.raw(`</a>`)
		}
		h.raw(`</nav></header>`)
		if h.err != nil {
			return h.err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw(`</body></html>`)
		return h.err
	})
}
