package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/memegallery/internal/services/web/routepath"
)

// Element ids the gallery script and sidebar anchors rely on.
const (
	GalleryMainID         = "gallery-main"
	CategoriesContainerID = "emoji-categories"
	SidebarListID         = "sidebar-list"
	AddCategoryFormID     = "add-category-form"
)

// GalleryView is the render model for one gallery snapshot.
type GalleryView struct {
	Categories  []CategoryView
	Sidebar     []SidebarEntry
	AddCategory AddCategoryView
}

// CategoryView is one rendered category block.
type CategoryView struct {
	Key      string
	AnchorID string
	Heading  string
	Images   []ImageView
}

// ImageView is one image tile inside a category block.
type ImageView struct {
	Filename string
	URL      string
}

// SidebarEntry is one sidebar navigation link.
type SidebarEntry struct {
	Label string
	Href  string
}

// AddCategoryView carries add-category form state.
type AddCategoryView struct {
	Visible bool
	Invalid bool
	Chinese string
	English string
}

// GalleryMain renders the swappable gallery fragment: sidebar, add-category
// controls, and the categories container.
func GalleryMain(view GalleryView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="gallery"`)
		h.attr("id", GalleryMainID)
		h.raw(`>`)
		if h.err != nil {
			return h.err
		}
		for _, part := range []templ.Component{
			Sidebar(view.Sidebar, loc),
			AddCategoryForm(view.AddCategory, loc),
			CategoriesContainer(view.Categories, loc),
		} {
			if err := part.Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw(`</div>`)
		return h.err
	})
}

// Sidebar renders the category navigation list.
func Sidebar(entries []SidebarEntry, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<nav class="sidebar"><h2>`)
		h.text(T(loc, "gallery.sidebar.heading"))
		h.raw(`</h2><ul`)
		h.attr("id", SidebarListID)
		h.raw(`>`)
		for _, entry := range entries {
			h.raw(`<li><a`)
			h.attr("href", entry.Href)
			h.raw(`>`)
			h.text(entry.Label)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></nav>`)
		return h.err
	})
}

// CategoriesContainer renders every category block in order. An empty
// slice renders an empty container.
func CategoriesContainer(categories []CategoryView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<main`)
		h.attr("id", CategoriesContainerID)
		h.raw(`>`)
		if h.err != nil {
			return h.err
		}
		for _, category := range categories {
			if err := CategoryBlock(category, loc).Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw(`</main>`)
		return h.err
	})
}

// CategoryBlock renders one category: heading, image tiles, and the
// trailing upload affordance.
func CategoryBlock(category CategoryView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="category"`)
		h.attr("id", category.AnchorID)
		h.attr("data-category", category.Key)
		h.raw(`><h3>`)
		h.text(category.Heading)
		h.raw(`</h3><div class="emoji-list">`)
		for _, image := range category.Images {
			writeEmojiItem(h, category.Key, image, loc)
		}
		writeUploadAffordance(h, category.Key, loc)
		h.raw(`</div></div>`)
		return h.err
	})
}

func writeEmojiItem(h *htmlWriter, key string, image ImageView, loc Localizer) {
	h.raw(`<div class="emoji-item"`)
	h.attr("style", "background-image: url('"+image.URL+"')")
	h.attr("data-image-file", image.Filename)
	h.raw(`><form class="delete-form" method="post"`)
	h.attr("action", routepath.GalleryEmojiDel)
	h.raw(`><input type="hidden" name="category"`)
	h.attr("value", key)
	h.raw(`><input type="hidden" name="image_file"`)
	h.attr("value", image.Filename)
	h.raw(`><button type="submit" class="delete-btn"`)
	h.attr("aria-label", T(loc, "gallery.delete.label", image.Filename))
	h.raw(`>×</button></form></div>`)
}

func writeUploadAffordance(h *htmlWriter, key string, loc Localizer) {
	h.raw(`<form class="upload-emoji" method="post" enctype="multipart/form-data"`)
	h.attr("action", routepath.GalleryEmojiAdd)
	h.raw(`><input type="hidden" name="category"`)
	h.attr("value", key)
	h.raw(`><label class="upload-label"><span>`)
	h.text(T(loc, "gallery.upload.hint"))
	h.raw(`</span><input type="file" name="image_file" accept="image/*" hidden></label></form>`)
}

// AddCategoryForm renders the add-category toggle or, when visible, the form.
func AddCategoryForm(view AddCategoryView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="add-category">`)
		if !view.Visible {
			h.raw(`<a class="add-category-toggle"`)
			h.attr("href", routepath.RootWithAddCategory())
			h.raw(`>`)
			h.text(T(loc, "gallery.add_category.open"))
			h.raw(`</a></section>`)
			return h.err
		}
		h.raw(`<form method="post"`)
		h.attr("id", AddCategoryFormID)
		h.attr("action", routepath.GalleryCategories)
		h.raw(`>`)
		if view.Invalid {
			h.raw(`<p class="form-error" role="alert">`)
			h.text(T(loc, "gallery.add_category.required"))
			h.raw(`</p>`)
		}
		h.raw(`<label>`)
		h.text(T(loc, "gallery.add_category.chinese"))
		h.raw(`<input type="text" name="chinese"`)
		h.attr("value", view.Chinese)
		h.raw(`></label><label>`)
		h.text(T(loc, "gallery.add_category.english"))
		h.raw(`<input type="text" name="english"`)
		h.attr("value", view.English)
		h.raw(`></label><button type="submit">`)
		h.text(T(loc, "gallery.add_category.submit"))
		h.raw(`</button><a class="add-category-cancel"`)
		h.attr("href", routepath.Root)
		h.raw(`>`)
		h.text(T(loc, "gallery.add_category.cancel"))
		h.raw(`</a></form></section>`)
		return h.err
	})
}
