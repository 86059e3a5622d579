package gallery

import (
	"net/http"

	"github.com/louisbranch/memegallery/internal/services/web/module"
	"github.com/louisbranch/memegallery/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/memegallery/internal/services/web/routepath"
)

// Module serves the gallery page and its mutation routes.
type Module struct {
	gateway GalleryGateway
	base    modulehandler.Base
}

// NewWithGateway returns a gallery module with explicit gateway and handler dependencies.
func NewWithGateway(gateway GalleryGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "gallery" }

// Healthy reports whether the gallery module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires gallery route handlers. The gallery page lives at the root so
// the module claims "/" and serves its own 404s for unknown paths.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway)
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	mux.HandleFunc(routepath.Root, h.WriteNotFound)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
