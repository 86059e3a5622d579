package gallery

import (
	"net/http"

	"github.com/louisbranch/memegallery/internal/services/web/platform/httpx"
	"github.com/louisbranch/memegallery/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.GalleryEmojiAdd, h.handleUpload)
	mux.HandleFunc(http.MethodPost+" "+routepath.GalleryEmojiDel, h.handleDelete)
	mux.HandleFunc(http.MethodPost+" "+routepath.GalleryCategories, h.handleAddCategory)
	mux.HandleFunc(http.MethodGet+" "+routepath.GalleryEmojiAdd, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.GalleryEmojiDel, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.GalleryCategories, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.GalleryPrefix, h.WriteNotFound)
}
