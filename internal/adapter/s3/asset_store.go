// Package s3 implements the asset storage port over Amazon S3. Strategies
// reference creatives by object key; deployment reads the bytes here
// before handing them to a platform's asset upload.
package s3

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"adpilot/internal/config/configs"
)

// AssetStore reads creative assets from a single bucket and produces
// presigned URLs for them.
type AssetStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	urlTTL  time.Duration
}

// New creates an AssetStore using the default AWS credential chain. A
// non-empty cfg.Endpoint (e.g. a local MinIO) switches the client to
// path-style addressing.
func New(ctx context.Context, cfg configs.Assets) (*AssetStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &AssetStore{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		urlTTL:  cfg.URLTTL,
	}, nil
}

// GetObject returns the asset bytes at path.
func (a *AssetStore) GetObject(ctx context.Context, path string) ([]byte, error) {
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", a.bucket, path, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

// URLFor returns a presigned GET URL for the asset at path.
func (a *AssetStore) URLFor(ctx context.Context, path string) (string, error) {
	req, err := a.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(path),
	}, s3.WithPresignExpires(a.urlTTL))
	if err != nil {
		return "", fmt.Errorf("presign s3://%s/%s: %w", a.bucket, path, err)
	}
	return req.URL, nil
}
