package gallery

import (
	"context"
	"io"
	"strings"

	"github.com/louisbranch/memegallery/internal/catalog"
	apperrors "github.com/louisbranch/memegallery/internal/services/web/platform/errors"
)

// Snapshot is one fetched view of the backend: categories plus the label
// index built from the same fetch.
type Snapshot struct {
	Categories catalog.CategoryMap
	Labels     catalog.LabelIndex
}

// ImageUpload is one image forwarded to the backend.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// GalleryGateway loads and mutates gallery state on the meme backend.
type GalleryGateway interface {
	FetchCategoryMap(context.Context) (Snapshot, error)
	UploadEmoji(context.Context, string, ImageUpload) error
	DeleteEmoji(context.Context, string, string) error
	AddCategory(context.Context, string, string) error
}

// categoryDraft is the trimmed add-category input.
type categoryDraft struct {
	Chinese string
	English string
}

func (d categoryDraft) complete() bool {
	return d.Chinese != "" && d.English != ""
}

func newCategoryDraft(chinese string, english string) categoryDraft {
	return categoryDraft{Chinese: strings.TrimSpace(chinese), English: strings.TrimSpace(english)}
}

type service struct {
	gateway GalleryGateway
}

func newService(gateway GalleryGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) loadGallery(ctx context.Context) (Snapshot, error) {
	snapshot, err := s.gateway.FetchCategoryMap(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if snapshot.Categories == nil {
		snapshot.Categories = catalog.CategoryMap{}
	}
	return snapshot, nil
}

func (s service) uploadEmoji(ctx context.Context, category string, upload ImageUpload) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return apperrors.E(apperrors.KindInvalidInput, "category is required")
	}
	if upload.Body == nil {
		return apperrors.E(apperrors.KindInvalidInput, "image file is required")
	}
	return s.gateway.UploadEmoji(ctx, category, upload)
}

func (s service) deleteEmoji(ctx context.Context, category string, filename string) error {
	category = strings.TrimSpace(category)
	if category == "" || filename == "" {
		return apperrors.E(apperrors.KindInvalidInput, "category and image file are required")
	}
	return s.gateway.DeleteEmoji(ctx, category, filename)
}

// addCategory forwards a complete draft. Incomplete drafts never reach the
// gateway.
func (s service) addCategory(ctx context.Context, draft categoryDraft) error {
	if !draft.complete() {
		return apperrors.EK(apperrors.KindInvalidInput, "gallery.add_category.required", "chinese and english names are required")
	}
	return s.gateway.AddCategory(ctx, draft.Chinese, draft.English)
}
