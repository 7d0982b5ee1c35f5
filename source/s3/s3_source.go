package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/daniel-garciasoto/mlgo/source"
)

// Options contains configuration options for the S3 source.
type Options struct {
	// Prefix is prepended to all object keys (e.g. "datasets/").
	Prefix string

	// Region overrides the region from the ambient AWS configuration.
	Region string

	// Client overrides the S3 client constructed from the ambient
	// configuration. Useful for tests and custom endpoints.
	Client *s3.Client

	// Buffered downloads objects fully (parallel ranged GETs via the
	// transfer manager) before handing out the reader, instead of
	// streaming the response body.
	Buffered bool
}

// WithPrefix prepends a key prefix to every object name.
func WithPrefix(prefix string) func(o *Options) {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

// WithRegion pins the AWS region instead of relying on ambient config.
func WithRegion(region string) func(o *Options) {
	return func(o *Options) {
		o.Region = region
	}
}

// WithClient uses a preconfigured S3 client.
func WithClient(client *s3.Client) func(o *Options) {
	return func(o *Options) {
		o.Client = client
	}
}

// WithBufferedDownloads fetches whole objects up front with the
// transfer manager. Worth it for small files read over slow links.
func WithBufferedDownloads() func(o *Options) {
	return func(o *Options) {
		o.Buffered = true
	}
}

// Store implements source.Source for Amazon S3.
type Store struct {
	client   *s3.Client
	bucket   string
	prefix   string
	buffered bool
}

// Compile-time check to ensure Store satisfies the Source interface.
var _ source.Source = (*Store)(nil)

// New creates an S3 source for the given bucket. Unless WithClient is
// supplied, the client is built from the ambient AWS configuration
// (environment, shared config files, instance roles).
func New(ctx context.Context, bucket string, optFns ...func(o *Options)) (*Store, error) {
	var opts Options

	for _, fn := range optFns {
		fn(&opts)
	}

	client := opts.Client
	if client == nil {
		var loadOpts []func(*awsconfig.LoadOptions) error
		if opts.Region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
		}

		cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, err
		}
		client = s3.NewFromConfig(cfg)
	}

	return &Store{
		client:   client,
		bucket:   bucket,
		prefix:   opts.Prefix,
		buffered: opts.Buffered,
	}, nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens the named object for reading. Missing objects satisfy
// errors.Is(err, source.ErrNotFound).
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)

	if s.buffered {
		return s.download(ctx, key)
	}

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, translateNotFound(err)
	}

	return resp.Body, nil
}

// download fetches the whole object with the transfer manager and
// returns an in-memory reader over it.
func (s *Store) download(ctx context.Context, key string) (io.ReadCloser, error) {
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, translateNotFound(err)
	}

	w := manager.NewWriteAtBuffer(make([]byte, 0, int(*head.ContentLength)))

	downloader := manager.NewDownloader(s.client)
	if _, err := downloader.Download(ctx, w, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return nil, translateNotFound(err)
	}

	return io.NopCloser(bytes.NewReader(w.Bytes())), nil
}

func translateNotFound(err error) error {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return source.ErrNotFound
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return source.ErrNotFound
	}
	return err
}
