// Package s3source reads s3://bucket/key sources from S3 or an S3-compatible store.
package s3source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sgaunet/gohead/pkg/config"
	"github.com/sgaunet/gohead/pkg/constants"
	"github.com/sgaunet/gohead/pkg/source"
	"golang.org/x/time/rate"
)

//go:generate go tool github.com/matryer/moq -out mocks/api.go -pkg mocks . API

// ErrInvalidURI is returned for arguments that are not s3://bucket/key.
var ErrInvalidURI = errors.New("invalid S3 URI")

// API is the part of the S3 client used to read objects.
type API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Opener opens S3 objects as sources. Object bodies are streamed, never
// downloaded in full.
type Opener struct {
	client  API
	limiter *rate.Limiter
}

// New builds an Opener from the S3 settings. A custom endpoint switches to
// path-style addressing, which S3-compatible stores such as MinIO expect.
func New(ctx context.Context, cfg config.S3Config) (*Opener, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.RequestBurst)
	return NewWithClient(client, limiter), nil
}

// NewWithClient returns an Opener using client. A nil limiter disables throttling.
func NewWithClient(client API, limiter *rate.Limiter) *Opener {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Opener{client: client, limiter: limiter}
}

// Open starts a GetObject request for uri and returns its body as a source
// labelled with uri.
func (o *Opener) Open(ctx context.Context, uri string) (*source.Source, error) {
	bucket, key, err := ParseURI(uri)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", source.ErrSourceOpen, uri, err)
	}
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w %q: %w", source.ErrSourceOpen, uri, err)
	}
	out, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", source.ErrSourceOpen, uri, err)
	}
	return source.New(uri, out.Body, out.Body), nil
}

// ParseURI extracts bucket and key from an S3 URI (s3://bucket/key).
func ParseURI(uri string) (bucket, key string, err error) {
	if !strings.HasPrefix(uri, constants.S3Scheme) {
		return "", "", fmt.Errorf("%w: %s (expected %sbucket/key)", ErrInvalidURI, uri, constants.S3Scheme)
	}
	path := strings.TrimPrefix(uri, constants.S3Scheme)

	parts := strings.SplitN(path, "/", constants.S3PathMinParts)
	if len(parts) != constants.S3PathMinParts {
		return "", "", fmt.Errorf("%w: %s (expected %sbucket/key)", ErrInvalidURI, uri, constants.S3Scheme)
	}

	bucket = parts[0]
	key = parts[1]

	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: bucket and key cannot be empty in %s", ErrInvalidURI, uri)
	}

	return bucket, key, nil
}
