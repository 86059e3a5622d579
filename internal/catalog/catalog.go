// Package catalog holds the meme gallery snapshot read from the backend.
//
// A snapshot is rebuilt from scratch on every fetch; nothing here is cached
// or mutated after construction.
package catalog

import "strings"

const (
	anchorPrefix  = "category-"
	imageRootPath = "/memes/"
)

// Category is one backend category and its image filenames in backend order.
type Category struct {
	Key   string
	Files []string
}

// CategoryMap is the ordered category snapshot. Order follows the key order of
// the backend JSON document.
type CategoryMap []Category

// Label is one display label (Chinese) pointing at a category key (English).
type Label struct {
	Label string
	Key   string
}

// LabelMap is the ordered label snapshot in backend document order.
type LabelMap []Label

// AnchorID returns the in-page anchor id for a category block.
//
// Keys are assumed safe for DOM ids; no escaping is applied.
func AnchorID(key string) string {
	return anchorPrefix + key
}

// AnchorHref returns the sidebar link target for a category block.
func AnchorHref(key string) string {
	return "#" + AnchorID(key)
}

// ImagePath returns the browser path of one category image.
//
// No percent-encoding is applied; reserved URL characters in keys or
// filenames break image loading.
func ImagePath(key string, filename string) string {
	return imageRootPath + key + "/" + filename
}

// Heading returns the category heading text "label (key)".
func Heading(label string, key string) string {
	var b strings.Builder
	b.Grow(len(label) + len(key) + 3)
	b.WriteString(label)
	b.WriteString(" (")
	b.WriteString(key)
	b.WriteString(")")
	return b.String()
}
