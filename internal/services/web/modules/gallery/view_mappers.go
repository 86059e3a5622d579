package gallery

import (
	"github.com/louisbranch/memegallery/internal/catalog"
	webtemplates "github.com/louisbranch/memegallery/internal/services/web/templates"
)

// galleryView maps one snapshot to the render model. Category blocks and
// sidebar entries come from the same CategoryMap so anchors always match.
func galleryView(snapshot Snapshot, form webtemplates.AddCategoryView) webtemplates.GalleryView {
	return webtemplates.GalleryView{
		Categories:  categoryViews(snapshot.Categories, snapshot.Labels),
		Sidebar:     sidebarEntries(snapshot.Categories, snapshot.Labels),
		AddCategory: form,
	}
}

func categoryViews(categories catalog.CategoryMap, labels catalog.LabelIndex) []webtemplates.CategoryView {
	views := make([]webtemplates.CategoryView, 0, len(categories))
	for _, category := range categories {
		images := make([]webtemplates.ImageView, 0, len(category.Files))
		for _, filename := range category.Files {
			images = append(images, webtemplates.ImageView{
				Filename: filename,
				URL:      catalog.ImagePath(category.Key, filename),
			})
		}
		views = append(views, webtemplates.CategoryView{
			Key:      category.Key,
			AnchorID: catalog.AnchorID(category.Key),
			Heading:  catalog.Heading(labels.DisplayName(category.Key), category.Key),
			Images:   images,
		})
	}
	return views
}

func sidebarEntries(categories catalog.CategoryMap, labels catalog.LabelIndex) []webtemplates.SidebarEntry {
	entries := make([]webtemplates.SidebarEntry, 0, len(categories))
	for _, category := range categories {
		entries = append(entries, webtemplates.SidebarEntry{
			Label: labels.DisplayName(category.Key),
			Href:  catalog.AnchorHref(category.Key),
		})
	}
	return entries
}
