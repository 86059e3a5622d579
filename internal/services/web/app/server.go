package app

import (
	"io"
	"io/fs"
	"net/http"

	"github.com/louisbranch/memegallery/internal/services/web/modules"
	"github.com/louisbranch/memegallery/internal/services/web/routepath"
	"github.com/louisbranch/memegallery/internal/services/web/static"
)

// BuildRootHandler composes modules with the health and static asset routes.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	return Compose(ComposeInput{
		Modules: cfg.Modules,
		Routes: map[string]http.Handler{
			http.MethodGet + " " + routepath.Health:       healthHandler(cfg.Modules),
			http.MethodGet + " " + routepath.StaticPrefix: staticHandler(static.FS),
		},
	})
}

// healthHandler answers 503 while any module reports itself unhealthy.
func healthHandler(mods []modules.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if !modules.Healthy(mods) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, "unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	}
}

func staticHandler(assets fs.FS) http.Handler {
	return http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(assets)))
}
