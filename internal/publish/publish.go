package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/toastui/internal/config"
	"github.com/vango-dev/toastui/internal/errors"
	"github.com/vango-dev/toastui/internal/gallery"
	"github.com/vango-dev/toastui/pkg/render"
	"github.com/vango-dev/toastui/pkg/vdom"
)

const tracerName = "github.com/vango-dev/toastui/internal/publish"

// maxConcurrentPuts bounds parallel uploads.
const maxConcurrentPuts = 4

// Object is one uploaded object.
type Object struct {
	Key         string `json:"key"`
	ContentType string `json:"-"`
	Size        int    `json:"size"`
	body        []byte
}

// ManifestEntry describes one toast fragment in toasts.json.
type ManifestEntry struct {
	ID      string `json:"id"`
	Variant string `json:"variant"`
	Title   string `json:"title,omitempty"`
	State   string `json:"state"`
	Key     string `json:"key"`
}

// Result lists what Publish wrote.
type Result struct {
	Bucket  string
	Objects []Object
}

// Publisher renders fixtures and uploads them.
type Publisher struct {
	client     ObjectPutter
	bucket     string
	prefix     string
	stylesheet string
	render     render.RendererConfig
	logger     *slog.Logger
	tracer     trace.Tracer
	dryRun     bool
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

// WithTracerProvider sets the tracer provider. Defaults to the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Publisher) { p.tracer = tp.Tracer(tracerName) }
}

// WithStyleSheet sets the stylesheet linked from the gallery page.
func WithStyleSheet(href string) Option {
	return func(p *Publisher) { p.stylesheet = href }
}

// WithRenderConfig sets the renderer configuration.
func WithRenderConfig(cfg render.RendererConfig) Option {
	return func(p *Publisher) { p.render = cfg }
}

// WithDryRun renders everything but skips the uploads.
func WithDryRun(dryRun bool) Option {
	return func(p *Publisher) { p.dryRun = dryRun }
}

// New creates a Publisher writing to cfg.Bucket under cfg.Prefix.
func New(client ObjectPutter, cfg config.PublishConfig, opts ...Option) *Publisher {
	p := &Publisher{
		client: client,
		bucket: cfg.Bucket,
		prefix: normalizePrefix(cfg.Prefix),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	p.logger = p.logger.With("component", "publish")
	if p.tracer == nil {
		p.tracer = otel.Tracer(tracerName)
	}
	return p
}

// Publish renders fixture and uploads the page, the fragments and the
// manifest. Nothing is uploaded if any render fails.
func (p *Publisher) Publish(ctx context.Context, fixture *gallery.Fixture) (*Result, error) {
	if p.bucket == "" || (p.client == nil && !p.dryRun) {
		return nil, errors.New("E141")
	}

	ctx, span := p.tracer.Start(ctx, "toastui.publish", trace.WithAttributes(
		attribute.String("toastui.bucket", p.bucket),
		attribute.String("toastui.prefix", p.prefix),
	))
	defer span.End()

	objects, err := p.build(fixture)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("toastui.objects", len(objects)))

	if !p.dryRun {
		if err := p.upload(ctx, objects); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	}

	for _, o := range objects {
		p.logger.Info("published", "bucket", p.bucket, "key", o.Key, "bytes", o.Size, "dry_run", p.dryRun)
	}
	return &Result{Bucket: p.bucket, Objects: objects}, nil
}

// build renders every object in memory.
func (p *Publisher) build(fixture *gallery.Fixture) ([]Object, error) {
	var objects []Object

	page := fixture.Page(gallery.Handlers{}, p.stylesheet)
	html, err := p.renderNode(render.BuildPage(page))
	if err != nil {
		return nil, err
	}
	objects = append(objects, newObject(p.prefix+"index.html", "text/html; charset=utf-8", html))

	manifest := make([]ManifestEntry, 0, len(fixture.Toasts))
	for _, t := range fixture.Toasts {
		if !gallery.ValidID(t.ID) {
			return nil, errors.New("E140").WithDetailf("toast id %q cannot be used in an object key", t.ID)
		}
		key := p.prefix + "toasts/" + t.ID + ".html"
		html, err := p.renderNode(t.Node(gallery.Handlers{}))
		if err != nil {
			return nil, err
		}
		objects = append(objects, newObject(key, "text/html; charset=utf-8", html))
		manifest = append(manifest, ManifestEntry{
			ID:      t.ID,
			Variant: t.Variant,
			Title:   t.Title,
			State:   t.State,
			Key:     key,
		})
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, errors.New("E140").Wrap(err)
	}
	objects = append(objects, newObject(p.prefix+"toasts.json", "application/json", data))
	return objects, nil
}

func (p *Publisher) renderNode(node *vdom.VNode) ([]byte, error) {
	var buf bytes.Buffer
	if err := render.NewRenderer(p.render).RenderToWriter(&buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// upload puts objects concurrently. The first failure cancels the rest.
func (p *Publisher) upload(ctx context.Context, objects []Object) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPuts)

	var mu sync.Mutex
	var failed []string

	for _, o := range objects {
		o := o
		g.Go(func() error {
			_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
				Bucket:       aws.String(p.bucket),
				Key:          aws.String(o.Key),
				Body:         bytes.NewReader(o.body),
				ContentType:  aws.String(o.ContentType),
				CacheControl: aws.String("no-cache"),
			})
			if err != nil {
				mu.Lock()
				failed = append(failed, o.Key)
				mu.Unlock()
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.New("E140").
			WithDetailf("s3://%s: %s", p.bucket, strings.Join(failed, ", ")).
			Wrap(err)
	}
	return nil
}

func newObject(key, contentType string, body []byte) Object {
	return Object{Key: key, ContentType: contentType, Size: len(body), body: body}
}

// normalizePrefix cleans prefix and gives it a trailing slash. An empty
// prefix stays empty.
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return path.Clean(prefix) + "/"
}
