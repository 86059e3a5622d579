// Package web parses gallery web command flags and launches the service.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/memegallery/internal/platform/cmd"
	"github.com/louisbranch/memegallery/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr       string        `env:"MEMEGALLERY_WEB_HTTP_ADDR" envDefault:"localhost:8086"`
	BackendURL     string        `env:"MEMEGALLERY_WEB_BACKEND_URL" envDefault:"http://localhost:5000"`
	BackendTimeout time.Duration `env:"MEMEGALLERY_WEB_BACKEND_TIMEOUT" envDefault:"0s"`
	AppName        string        `env:"MEMEGALLERY_WEB_APP_NAME" envDefault:"Meme Gallery"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
		fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "Meme backend base URL")
		fs.DurationVar(&cfg.BackendTimeout, "backend-timeout", cfg.BackendTimeout, "Timeout for each backend call (0 disables)")
		fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "Name shown in page titles")
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the gallery web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:       cfg.HTTPAddr,
			BackendURL:     cfg.BackendURL,
			BackendTimeout: cfg.BackendTimeout,
			AppName:        cfg.AppName,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
