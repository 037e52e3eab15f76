package publish

import (
	"bytes"
	"context"
	"log/slog"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/SRombauts/HtmlBuilder/internal/errors"
	"github.com/SRombauts/HtmlBuilder/pkg/dom"
	"github.com/SRombauts/HtmlBuilder/pkg/layout"
)

// ContentType is sent with every uploaded page.
const ContentType = "text/html; charset=utf-8"

// PutObjectAPI is the part of the S3 client the publisher uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher renders documents and uploads them to an S3 bucket.
type Publisher struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
	renderer     *dom.Renderer
	logger       *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithPrefix prepends prefix to every object key.
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = prefix
	}
}

// WithCacheControl sets the Cache-Control header of uploaded pages.
func WithCacheControl(value string) Option {
	return func(p *Publisher) {
		p.cacheControl = value
	}
}

// WithRenderer sets the renderer. Default: dom.NewRenderer(dom.RenderConfig{}).
func WithRenderer(r *dom.Renderer) Option {
	return func(p *Publisher) {
		p.renderer = r
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New creates a publisher uploading to bucket through client.
func New(client PutObjectAPI, bucket string, opts ...Option) (*Publisher, error) {
	if bucket == "" {
		return nil, errors.New("E151")
	}
	p := &Publisher{
		client:   client,
		bucket:   bucket,
		renderer: dom.NewRenderer(dom.RenderConfig{}),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "publish", "bucket", bucket)
	return p, nil
}

// Key returns the object key a page called name is uploaded to.
func (p *Publisher) Key(name string) string {
	return p.prefix + name
}

// Publish renders doc and uploads it under key (after the prefix).
func (p *Publisher) Publish(ctx context.Context, key string, doc *dom.Document) error {
	var buf bytes.Buffer
	if err := p.renderer.WriteDocument(&buf, doc); err != nil {
		return errors.New("E150").WithPath(p.Key(key)).Wrap(err)
	}
	size := buf.Len()

	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.Key(key)),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(ContentType),
		Metadata: map[string]string{
			"generator": "htmlbuilder",
		},
	}
	if p.cacheControl != "" {
		input.CacheControl = aws.String(p.cacheControl)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return errors.New("E150").WithPath(p.Key(key)).Wrap(err)
	}
	p.logger.Info("published", "key", p.Key(key), "bytes", size)
	return nil
}

// PublishDir builds every description in dir and uploads it as name.html.
// It stops at the first failure and returns the keys uploaded so far.
func (p *Publisher) PublishDir(ctx context.Context, dir string) ([]string, error) {
	files, err := layout.Glob(dir)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return keys, err
		}

		doc, err := layout.BuildFile(file)
		if err != nil {
			return keys, err
		}
		key := path.Clean(layout.Name(file) + ".html")
		if err := p.Publish(ctx, key, doc); err != nil {
			return keys, err
		}
		keys = append(keys, p.Key(key))
	}
	return keys, nil
}

// NewClient creates an S3 client from the default AWS configuration chain.
// A non-empty region overrides the resolved one.
func NewClient(ctx context.Context, region string) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("E150").WithDetail("cannot load AWS configuration").Wrap(err)
	}
	return s3.NewFromConfig(cfg), nil
}
