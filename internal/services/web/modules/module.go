// Package modules defines web module registry helpers.
package modules

import (
	"net/http"
	"net/url"

	module "github.com/louisbranch/memegallery/internal/services/web/module"
	"github.com/louisbranch/memegallery/internal/services/web/modules/gallery"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the backend clients and shared config required to
// compose the web module registry.
type Dependencies struct {
	AppName string

	// Gallery module client.
	Backend gallery.BackendClient

	// Memes module proxy target and transport.
	BackendURL       *url.URL
	BackendTransport http.RoundTripper
}
