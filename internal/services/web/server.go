package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/louisbranch/memegallery/internal/platform/timeouts"
	"github.com/louisbranch/memegallery/internal/services/web/app"
	"github.com/louisbranch/memegallery/internal/services/web/integration/memeapi"
	"github.com/louisbranch/memegallery/internal/services/web/modules"
	"github.com/louisbranch/memegallery/internal/services/web/platform/httpx"
	"github.com/louisbranch/memegallery/internal/services/web/platform/observability"
)

const defaultAppName = "Meme Gallery"

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// BackendURL is the meme backend base URL serving /api and /memes.
	BackendURL string
	// BackendTimeout bounds each backend call. Zero leaves calls bounded only
	// by the inbound request context.
	BackendTimeout time.Duration
	AppName        string
}

// Server hosts the gallery web UI.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	backend    *http.Client
}

// NewHandler builds the root HTTP handler for the gallery.
func NewHandler(config Config) (http.Handler, error) {
	handler, _, err := newHandler(config)
	return handler, err
}

func newHandler(config Config) (http.Handler, *http.Client, error) {
	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = defaultAppName
	}
	httpClient := memeapi.NewHTTPClient(config.BackendTimeout)
	client, err := memeapi.NewClient(config.BackendURL, httpClient)
	if err != nil {
		return nil, nil, fmt.Errorf("build backend client: %w", err)
	}

	mods := modules.DefaultModules(modules.Dependencies{
		AppName:          appName,
		Backend:          client,
		BackendURL:       client.BaseURL(),
		BackendTransport: httpClient.Transport,
	})
	root, err := app.BuildRootHandler(app.Config{Modules: mods})
	if err != nil {
		return nil, nil, fmt.Errorf("compose modules: %w", err)
	}

	handler := httpx.Chain(root,
		httpx.RequestID(),
		observability.RequestLogger(slog.Default()),
		httpx.RecoverPanic(),
	)
	return otelhttp.NewHandler(handler, "memegallery-web"), httpClient, nil
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.BackendTimeout < 0 {
		return nil, errors.New("backend timeout must not be negative")
	}
	handler, backend, err := newHandler(config)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		backend: backend,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation it performs a bounded shutdown so in-flight requests are
// drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	slog.Info("web listening", "addr", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases idle backend connections.
func (s *Server) Close() {
	if s == nil || s.backend == nil {
		return
	}
	s.backend.CloseIdleConnections()
}
