package output

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// s3API is the slice of the S3 client the uploader needs
type s3API interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// Uploader pushes finished render artifacts to an S3 bucket
type Uploader struct {
	api    s3API
	bucket string
	prefix string
}

// NewUploader creates an S3 uploader for the given region and bucket.
// Credentials come from the default AWS credential chain.
func NewUploader(region, bucket, prefix string) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3 bucket must be provided")
	}

	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &Uploader{
		api:    s3.New(sess),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// Upload sends one local file to the bucket under prefix/key
func (u *Uploader) Upload(ctx context.Context, localPath, key string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", localPath, err)
	}

	fullKey := key
	if u.prefix != "" {
		fullKey = path.Join(u.prefix, key)
	}

	_, err = u.api.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(fullKey),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType(localPath)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", fullKey, err)
	}
	return nil
}

// contentType infers the MIME type from the file extension
func contentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".bmp":
		return "image/bmp"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
