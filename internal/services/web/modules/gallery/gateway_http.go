package gallery

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/memegallery/internal/catalog"
	"github.com/louisbranch/memegallery/internal/services/web/integration/memeapi"
	apperrors "github.com/louisbranch/memegallery/internal/services/web/platform/errors"
)

const tracerName = "github.com/louisbranch/memegallery/internal/services/web/modules/gallery"

// BackendClient is the subset of the meme backend client the gateway uses.
type BackendClient interface {
	FetchLabels(context.Context) (catalog.LabelMap, error)
	FetchCategories(context.Context) (catalog.CategoryMap, error)
	UploadEmoji(context.Context, string, memeapi.Upload) error
	DeleteEmoji(context.Context, string, string) error
	AddCategory(context.Context, string, string) error
}

// NewHTTPGateway builds the gallery gateway over the backend REST client.
func NewHTTPGateway(client BackendClient) GalleryGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return httpGateway{client: client, tracer: otel.Tracer(tracerName)}
}

type httpGateway struct {
	client BackendClient
	tracer trace.Tracer
}

// FetchLabelMap loads the label map. Any failure is logged and yields an
// empty map so category headings fall back to their keys.
func (g httpGateway) FetchLabelMap(ctx context.Context) catalog.LabelMap {
	ctx, span := g.tracer.Start(ctx, "gallery.fetch_label_map")
	defer span.End()

	labels, err := g.client.FetchLabels(ctx)
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "fetch label map failed", "error", err)
		return catalog.LabelMap{}
	}
	span.SetAttributes(attribute.Int("gallery.labels", len(labels)))
	return labels
}

// FetchCategoryMap loads categories and labels concurrently and waits for
// both before returning.
func (g httpGateway) FetchCategoryMap(ctx context.Context) (Snapshot, error) {
	ctx, span := g.tracer.Start(ctx, "gallery.fetch_category_map")
	defer span.End()

	var (
		categories catalog.CategoryMap
		labels     catalog.LabelMap
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		categories, err = g.client.FetchCategories(groupCtx)
		return err
	})
	group.Go(func() error {
		labels = g.FetchLabelMap(groupCtx)
		return nil
	})
	if err := group.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch categories")
		slog.ErrorContext(ctx, "fetch category map failed", "error", err)
		return Snapshot{}, apperrors.Wrap(apperrors.KindUnavailable, "error.web.gallery.backend_unavailable", "fetch category map", err)
	}
	span.SetAttributes(attribute.Int("gallery.categories", len(categories)))
	return Snapshot{Categories: categories, Labels: catalog.NewLabelIndex(labels)}, nil
}

func (g httpGateway) UploadEmoji(ctx context.Context, category string, upload ImageUpload) error {
	ctx, span := g.tracer.Start(ctx, "gallery.upload_emoji", trace.WithAttributes(attribute.String("gallery.category", category)))
	defer span.End()

	err := g.client.UploadEmoji(ctx, category, memeapi.Upload{
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Body:        upload.Body,
	})
	return endSpan(span, err)
}

func (g httpGateway) DeleteEmoji(ctx context.Context, category string, filename string) error {
	ctx, span := g.tracer.Start(ctx, "gallery.delete_emoji", trace.WithAttributes(
		attribute.String("gallery.category", category),
		attribute.String("gallery.image_file", filename),
	))
	defer span.End()

	return endSpan(span, g.client.DeleteEmoji(ctx, category, filename))
}

func (g httpGateway) AddCategory(ctx context.Context, chinese string, english string) error {
	ctx, span := g.tracer.Start(ctx, "gallery.add_category", trace.WithAttributes(attribute.String("gallery.category", english)))
	defer span.End()

	return endSpan(span, g.client.AddCategory(ctx, chinese, english))
}

func endSpan(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
