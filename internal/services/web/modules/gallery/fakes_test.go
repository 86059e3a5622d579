package gallery

import (
	"context"
	"io"
	"sync"

	"github.com/louisbranch/memegallery/internal/catalog"
	"github.com/louisbranch/memegallery/internal/services/web/integration/memeapi"
)

type uploadCall struct {
	Category string
	Filename string
	Body     string
}

type deleteCall struct {
	Category string
	Filename string
}

type addCall struct {
	Chinese string
	English string
}

type fakeGateway struct {
	mu sync.Mutex

	snapshot  Snapshot
	fetchErr  error
	uploadErr error
	deleteErr error
	addErr    error

	fetches int
	uploads []uploadCall
	deletes []deleteCall
	adds    []addCall
}

func (f *fakeGateway) FetchCategoryMap(context.Context) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErr != nil {
		return Snapshot{}, f.fetchErr
	}
	return f.snapshot, nil
}

func (f *fakeGateway) UploadEmoji(_ context.Context, category string, upload ImageUpload) error {
	body, _ := io.ReadAll(upload.Body)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, uploadCall{Category: category, Filename: upload.Filename, Body: string(body)})
	return f.uploadErr
}

func (f *fakeGateway) DeleteEmoji(_ context.Context, category string, filename string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, deleteCall{Category: category, Filename: filename})
	return f.deleteErr
}

func (f *fakeGateway) AddCategory(_ context.Context, chinese string, english string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adds = append(f.adds, addCall{Chinese: chinese, English: english})
	return f.addErr
}

func (f *fakeGateway) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func catSnapshot() Snapshot {
	return Snapshot{
		Categories: catalog.CategoryMap{{Key: "cat", Files: []string{"a.png", "b.gif"}}},
		Labels:     catalog.NewLabelIndex(catalog.LabelMap{{Label: "猫", Key: "cat"}}),
	}
}

type fakeBackend struct {
	mu sync.Mutex

	labels        catalog.LabelMap
	labelsErr     error
	categories    catalog.CategoryMap
	categoriesErr error
	mutationErr   error

	labelCalls    int
	categoryCalls int
}

func (f *fakeBackend) FetchLabels(context.Context) (catalog.LabelMap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.labelCalls++
	return f.labels, f.labelsErr
}

func (f *fakeBackend) FetchCategories(context.Context) (catalog.CategoryMap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categoryCalls++
	return f.categories, f.categoriesErr
}

func (f *fakeBackend) UploadEmoji(context.Context, string, memeapi.Upload) error {
	return f.mutationErr
}

func (f *fakeBackend) DeleteEmoji(context.Context, string, string) error {
	return f.mutationErr
}

func (f *fakeBackend) AddCategory(context.Context, string, string) error {
	return f.mutationErr
}
