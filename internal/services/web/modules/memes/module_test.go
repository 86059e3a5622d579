package memes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestMountProxiesPathUnchanged(t *testing.T) {
	t.Parallel()

	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "image/png")
		_, _ = io.WriteString(w, "PNG")
	}))
	t.Cleanup(backend.Close)

	backendURL, err := url.Parse(backend.URL)
	if err != nil {
		t.Fatalf("parse backend url: %v", err)
	}
	mount, err := New(backendURL, nil).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/memes/" {
		t.Fatalf("prefix = %q", mount.Prefix)
	}

	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/memes/cat/a.png", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if gotPath != "/memes/cat/a.png" {
		t.Fatalf("backend path = %q", gotPath)
	}
	if rr.Body.String() != "PNG" {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestMountRejectsMutations(t *testing.T) {
	t.Parallel()

	backendURL, _ := url.Parse("http://backend.invalid")
	mount, err := New(backendURL, nil).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/memes/cat/a.png", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestMountReportsBadGatewayWhenBackendDown(t *testing.T) {
	t.Parallel()

	backend := httptest.NewServer(http.NotFoundHandler())
	backendURL, _ := url.Parse(backend.URL)
	backend.Close()

	mount, err := New(backendURL, nil).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/memes/cat/a.png", nil))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadGateway)
	}
}

func TestMountRequiresBackend(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, nil).Mount(); err == nil {
		t.Fatal("Mount() error = nil, want error")
	}
	if New(nil, nil).Healthy() {
		t.Fatal("Healthy() = true without backend")
	}
}
