package modules

import (
	module "github.com/louisbranch/memegallery/internal/services/web/module"
	"github.com/louisbranch/memegallery/internal/services/web/modules/gallery"
	"github.com/louisbranch/memegallery/internal/services/web/modules/memes"
	"github.com/louisbranch/memegallery/internal/services/web/platform/modulehandler"
)

// DefaultModules returns the web modules served by the gallery.
func DefaultModules(deps Dependencies) []Module {
	base := modulehandler.NewBase(deps.AppName)
	return []Module{
		gallery.NewWithGateway(gallery.NewHTTPGateway(deps.Backend), base),
		memes.New(deps.BackendURL, deps.BackendTransport),
	}
}

// Healthy reports whether every module that can report health is operational.
func Healthy(mods []Module) bool {
	for _, m := range mods {
		reporter, ok := m.(module.HealthReporter)
		if ok && !reporter.Healthy() {
			return false
		}
	}
	return true
}
