// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "net/url"

const (
	Root              = "/"
	Health            = "/up"
	StaticPrefix      = "/static/"
	MemesPrefix       = "/memes/"
	GalleryPrefix     = "/gallery/"
	GalleryEmojiAdd   = "/gallery/emoji/upload"
	GalleryEmojiDel   = "/gallery/emoji/delete"
	GalleryCategories = "/gallery/categories"

	// AddCategoryParam opens the add-category form on the gallery page.
	AddCategoryParam = "add_category"
)

// RootWithAddCategory returns the gallery route with the add-category form open.
func RootWithAddCategory() string {
	return Root + "?" + url.Values{AddCategoryParam: {"1"}}.Encode()
}

// WithLanguage returns path with the lang query parameter set, keeping rawQuery.
func WithLanguage(path string, rawQuery string, tag string) string {
	if path == "" {
		path = Root
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set("lang", tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
