package app

import module "github.com/louisbranch/memegallery/internal/services/web/module"

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules []module.Module
}
