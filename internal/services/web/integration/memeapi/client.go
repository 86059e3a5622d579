// Package memeapi is the HTTP client for the meme backend REST API.
package memeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/louisbranch/memegallery/internal/catalog"
)

// Backend endpoint paths.
const (
	PathEmotions    = "/api/emotions"
	PathEmoji       = "/api/emoji"
	PathEmojiAdd    = "/api/emoji/add"
	PathEmojiDelete = "/api/emoji/delete"
	PathCategoryAdd = "/api/category/add"
)

const (
	maxResponseBytes = 32 << 20
	maxErrorExcerpt  = 512
)

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s returned %d", e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Upload is one image file forwarded to the backend.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// Client calls the meme backend.
type Client struct {
	baseURL *url.URL
	client  *http.Client
}

// NewHTTPClient returns an instrumented HTTP client. A zero timeout means
// requests are bounded only by their context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// NewClient builds a backend client rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("backend url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("backend url %q must be absolute", baseURL)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}
	return &Client{baseURL: parsed, client: httpClient}, nil
}

// BaseURL returns a copy of the backend base URL.
func (c *Client) BaseURL() *url.URL {
	copied := *c.baseURL
	return &copied
}

func (c *Client) endpoint(path string) string {
	u := c.BaseURL()
	u.Path += path
	return u.String()
}

// FetchLabels loads the label map from GET /api/emotions.
func (c *Client) FetchLabels(ctx context.Context) (catalog.LabelMap, error) {
	body, err := c.get(ctx, PathEmotions)
	if err != nil {
		return nil, err
	}
	labels, err := DecodeLabelMap(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", PathEmotions, err)
	}
	return labels, nil
}

// FetchCategories loads the category map from GET /api/emoji.
func (c *Client) FetchCategories(ctx context.Context) (catalog.CategoryMap, error) {
	body, err := c.get(ctx, PathEmoji)
	if err != nil {
		return nil, err
	}
	categories, err := DecodeCategoryMap(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", PathEmoji, err)
	}
	return categories, nil
}

// UploadEmoji posts one image into category as multipart form data.
func (c *Client) UploadEmoji(ctx context.Context, category string, upload Upload) error {
	if upload.Body == nil {
		return fmt.Errorf("upload body is required")
	}
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("category", category); err != nil {
		return fmt.Errorf("write category field: %w", err)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image_file"; filename="%s"`, quoteEscaper.Replace(upload.Filename)))
	contentType := strings.TrimSpace(upload.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := form.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create image part: %w", err)
	}
	if _, err := io.Copy(part, upload.Body); err != nil {
		return fmt.Errorf("copy image: %w", err)
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}
	return c.post(ctx, PathEmojiAdd, form.FormDataContentType(), &buf)
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

type deleteEmojiRequest struct {
	Category  string `json:"category"`
	ImageFile string `json:"image_file"`
}

// DeleteEmoji removes one image from category.
func (c *Client) DeleteEmoji(ctx context.Context, category string, filename string) error {
	return c.postJSON(ctx, PathEmojiDelete, deleteEmojiRequest{Category: category, ImageFile: filename})
}

type addCategoryRequest struct {
	Chinese string `json:"chinese"`
	English string `json:"english"`
}

// AddCategory creates a category with its Chinese label.
func (c *Client) AddCategory(ctx context.Context, chinese string, english string) error {
	return c.postJSON(ctx, PathCategoryAdd, addCategoryRequest{Chinese: chinese, English: english})
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, path); err != nil {
		return nil, err
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return body, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}
	return c.post(ctx, path, "application/json", bytes.NewReader(body))
}

func (c *Client) post(ctx context.Context, path string, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", contentType)
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, path); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	return nil
}

func checkStatus(resp *http.Response, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorExcerpt))
	return &StatusError{
		Method:     resp.Request.Method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(excerpt)),
	}
}
