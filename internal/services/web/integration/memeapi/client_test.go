package memeapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/memegallery/internal/catalog"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(srv.URL+"/", srv.Client())
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestNewClientValidatesURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "  ", "localhost:5000", "/api"} {
		if _, err := NewClient(raw, nil); err == nil {
			t.Fatalf("NewClient(%q) error = nil, want error", raw)
		}
	}
	client, err := NewClient("http://backend:5000/", nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if got := client.endpoint(PathEmoji); got != "http://backend:5000/api/emoji" {
		t.Fatalf("endpoint = %q", got)
	}
}

func TestFetchCategories(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != PathEmoji {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"cat":["a.png","b.gif"]}`)
	}))

	got, err := client.FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("FetchCategories() error = %v", err)
	}
	if len(got) != 1 || got[0].Key != "cat" || len(got[0].Files) != 2 {
		t.Fatalf("FetchCategories() = %#v", got)
	}
}

func TestFetchCategoriesStatusError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "storage offline", http.StatusInternalServerError)
	}))

	_, err := client.FetchCategories(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want StatusError", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError || statusErr.Path != PathEmoji {
		t.Fatalf("StatusError = %+v", statusErr)
	}
	if statusErr.Body != "storage offline" {
		t.Fatalf("Body = %q", statusErr.Body)
	}
}

func TestFetchLabelsMalformed(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `["not","an","object"]`)
	}))
	if _, err := client.FetchLabels(context.Background()); err == nil {
		t.Fatal("FetchLabels() error = nil, want decode error")
	}
}

func TestUploadEmojiSendsMultipart(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != PathEmojiAdd {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm() error = %v", err)
			return
		}
		if got := r.FormValue("category"); got != "cat" {
			t.Errorf("category = %q", got)
		}
		file, header, err := r.FormFile("image_file")
		if err != nil {
			t.Errorf("FormFile() error = %v", err)
			return
		}
		defer file.Close()
		body, _ := io.ReadAll(file)
		if header.Filename != "c.png" || string(body) != "PNGDATA" {
			t.Errorf("file = %q %q", header.Filename, body)
		}
		if got := header.Header.Get("Content-Type"); got != "image/png" {
			t.Errorf("part content type = %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}))

	err := client.UploadEmoji(context.Background(), "cat", Upload{
		Filename:    "c.png",
		ContentType: "image/png",
		Body:        strings.NewReader("PNGDATA"),
	})
	if err != nil {
		t.Fatalf("UploadEmoji() error = %v", err)
	}
}

func TestUploadEmojiRequiresBody(t *testing.T) {
	t.Parallel()

	client, err := NewClient("http://backend", nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if err := client.UploadEmoji(context.Background(), "cat", Upload{Filename: "a.png"}); err == nil {
		t.Fatal("UploadEmoji() error = nil, want error")
	}
}

func TestJSONMutations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		call     func(*Client) error
		wantBody map[string]string
	}{
		{
			name:     "delete emoji",
			path:     PathEmojiDelete,
			call:     func(c *Client) error { return c.DeleteEmoji(context.Background(), "cat", "a.png") },
			wantBody: map[string]string{"category": "cat", "image_file": "a.png"},
		},
		{
			name:     "add category",
			path:     PathCategoryAdd,
			call:     func(c *Client) error { return c.AddCategory(context.Background(), "狗", "dog") },
			wantBody: map[string]string{"chinese": "狗", "english": "dog"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != tc.path {
					t.Errorf("request = %s %s", r.Method, r.URL.Path)
				}
				if got := r.Header.Get("Content-Type"); got != "application/json" {
					t.Errorf("Content-Type = %q", got)
				}
				var body map[string]string
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Errorf("decode body: %v", err)
				}
				for key, want := range tc.wantBody {
					if body[key] != want {
						t.Errorf("body[%q] = %q, want %q", key, body[key], want)
					}
				}
				w.WriteHeader(http.StatusOK)
			}))
			if err := tc.call(client); err != nil {
				t.Fatalf("call error = %v", err)
			}
		})
	}
}

func TestMutationStatusError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	err := client.AddCategory(context.Background(), "猫", "cat")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusConflict {
		t.Fatalf("AddCategory() error = %v, want 409 StatusError", err)
	}
	if statusErr.Method != http.MethodPost {
		t.Fatalf("Method = %q", statusErr.Method)
	}
}

func TestFetchHonoursContextCancellation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var labels catalog.LabelMap
	labels, err := client.FetchLabels(ctx)
	if err == nil || labels != nil {
		t.Fatalf("FetchLabels() = %v, %v; want context error", labels, err)
	}
}
