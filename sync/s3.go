package sync

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/publab/pubsync/config"
)

// S3Destination uploads objects to an S3-compatible bucket using the
// specified storage class.
type S3Destination struct {
	uploader     *manager.Uploader
	bucket       string
	storageClass types.StorageClass
}

// NewS3Client builds an S3 client from the explicit credentials in cfg.
// A custom endpoint switches the client to path-style addressing, which
// S3-compatible providers generally require.
func NewS3Client(ctx context.Context, cfg config.Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	if cfg.Endpoint == "" {
		return s3.NewFromConfig(awsCfg), nil
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	}), nil
}

// NewS3Destination creates a destination writing to the given bucket.
func NewS3Destination(client *s3.Client, bucket string, storageClass types.StorageClass) *S3Destination {
	return &S3Destination{
		uploader:     manager.NewUploader(client),
		bucket:       bucket,
		storageClass: storageClass,
	}
}

func (d *S3Destination) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := d.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(d.bucket),
		Key:          aws.String(key),
		Body:         r,
		ContentType:  aws.String(contentType),
		StorageClass: d.storageClass,
		Metadata: map[string]string{
			"size": strconv.FormatInt(size, 10),
		},
	})
	return err
}
