package gallery

import (
	"context"

	apperrors "github.com/louisbranch/memegallery/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) FetchCategoryMap(context.Context) (Snapshot, error) {
	return Snapshot{}, apperrors.EK(apperrors.KindUnavailable, "error.web.gallery.backend_unavailable", "meme backend is not configured")
}

func (unavailableGateway) UploadEmoji(context.Context, string, ImageUpload) error {
	return apperrors.E(apperrors.KindUnavailable, "meme backend is not configured")
}

func (unavailableGateway) DeleteEmoji(context.Context, string, string) error {
	return apperrors.E(apperrors.KindUnavailable, "meme backend is not configured")
}

func (unavailableGateway) AddCategory(context.Context, string, string) error {
	return apperrors.E(apperrors.KindUnavailable, "meme backend is not configured")
}
