package gallery

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/louisbranch/memegallery/internal/services/web/platform/httpx"
	"github.com/louisbranch/memegallery/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/memegallery/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/memegallery/internal/services/web/templates"
)

const maxUploadBytes = 32 << 20

// galleryService defines the service operations used by gallery handlers.
type galleryService interface {
	loadGallery(ctx context.Context) (Snapshot, error)
	uploadEmoji(ctx context.Context, category string, upload ImageUpload) error
	deleteEmoji(ctx context.Context, category string, filename string) error
	addCategory(ctx context.Context, draft categoryDraft) error
}

type handlers struct {
	modulehandler.Base
	service galleryService
}

func newHandlers(s galleryService, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	form := webtemplates.AddCategoryView{
		Visible: r.URL.Query().Get(routepath.AddCategoryParam) == "1",
	}
	h.renderGallery(w, r, form)
}

// renderGallery runs one fetch and renders the whole gallery from it. When
// the category fetch fails a script refresh gets 204 and keeps its DOM; a
// full page request gets the error page.
func (h handlers) renderGallery(w http.ResponseWriter, r *http.Request, form webtemplates.AddCategoryView) {
	loc, lang := h.PageLocalizer(w, r)
	snapshot, err := h.service.loadGallery(httpx.RequestContext(r))
	if err != nil {
		if httpx.IsHTMXRequest(r) {
			httpx.WriteNoContent(w)
			return
		}
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, loc, lang, "", http.StatusOK, webtemplates.GalleryMain(galleryView(snapshot, form), loc))
}

// refresh re-renders the gallery after a mutation regardless of its outcome.
func (h handlers) refresh(w http.ResponseWriter, r *http.Request) {
	if httpx.IsHTMXRequest(r) {
		h.renderGallery(w, r, webtemplates.AddCategoryView{})
		return
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	defer h.refresh(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		slog.ErrorContext(ctx, "upload emoji failed", "error", err)
		return
	}
	category := r.FormValue("category")
	file, header, err := r.FormFile("image_file")
	if err != nil {
		slog.ErrorContext(ctx, "upload emoji failed", "category", category, "error", err)
		return
	}
	defer file.Close()

	upload := ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}
	if err := h.service.uploadEmoji(ctx, category, upload); err != nil {
		slog.ErrorContext(ctx, "upload emoji failed", "category", category, "image_file", header.Filename, "error", err)
		return
	}
	slog.InfoContext(ctx, "emoji uploaded", "category", category, "image_file", header.Filename)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	category := r.FormValue("category")
	filename := r.FormValue("image_file")
	if err := h.service.deleteEmoji(ctx, category, filename); err != nil {
		slog.ErrorContext(ctx, "delete emoji failed", "category", category, "image_file", filename, "error", err)
	} else {
		slog.InfoContext(ctx, "emoji deleted", "category", category, "image_file", filename)
	}
	h.refresh(w, r)
}

func (h handlers) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	draft := newCategoryDraft(r.FormValue("chinese"), r.FormValue("english"))
	if !draft.complete() {
		h.renderGallery(w, r, webtemplates.AddCategoryView{
			Visible: true,
			Invalid: true,
			Chinese: draft.Chinese,
			English: draft.English,
		})
		return
	}
	if err := h.service.addCategory(ctx, draft); err != nil {
		slog.ErrorContext(ctx, "add category failed", "chinese", draft.Chinese, "english", draft.English, "error", err)
	} else {
		slog.InfoContext(ctx, "category added", "chinese", draft.Chinese, "english", draft.English)
	}
	h.refresh(w, r)
}
