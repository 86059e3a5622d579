// Package memes serves gallery images by proxying /memes/ to the meme backend.
package memes

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/louisbranch/memegallery/internal/services/web/module"
	"github.com/louisbranch/memegallery/internal/services/web/routepath"
)

// Module forwards image requests to the backend unchanged.
type Module struct {
	backend   *url.URL
	transport http.RoundTripper
}

// New returns a memes module that proxies to backend. A nil transport uses
// http.DefaultTransport.
func New(backend *url.URL, transport http.RoundTripper) Module {
	return Module{backend: backend, transport: transport}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "memes" }

// Healthy reports whether a backend is configured.
func (m Module) Healthy() bool {
	return m.backend != nil
}

// Mount wires the image proxy.
func (m Module) Mount() (module.Mount, error) {
	if m.backend == nil {
		return module.Mount{}, fmt.Errorf("backend url is required")
	}
	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(m.backend)
			pr.Out.Host = m.backend.Host
		},
		Transport: m.transport,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.WarnContext(r.Context(), "proxy image failed", "path", r.URL.Path, "error", err)
			w.WriteHeader(http.StatusBadGateway)
		},
	}
	mux := http.NewServeMux()
	mux.Handle(http.MethodGet+" "+routepath.MemesPrefix, proxy)
	return module.Mount{Prefix: routepath.MemesPrefix, Handler: mux}, nil
}
