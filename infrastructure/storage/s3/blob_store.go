// Package s3 stores attachment content and hands out presigned URLs so
// clients transfer blobs directly, never through this service.
package s3

import (
	"context"
	"fmt"
	"time"

	"mynotes-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// presignAPI is the subset of the S3 presign client this store uses.
type presignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// objectAPI is the subset of the S3 client this store uses.
type objectAPI interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// BlobStore implements ports.BlobStore against a single S3 bucket
type BlobStore struct {
	objects objectAPI
	presign presignAPI
	bucket  string
	expiry  time.Duration
	logger  *zap.Logger
}

// NewBlobStore creates a blob store over the given S3 client.
func NewBlobStore(client *s3.Client, bucket string, expiry time.Duration, logger *zap.Logger) ports.BlobStore {
	return &BlobStore{
		objects: client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		expiry:  expiry,
		logger:  logger,
	}
}

// PresignPut issues a time-limited URL permitting a single PUT of the key.
func (b *BlobStore) PresignPut(ctx context.Context, key string) (string, error) {
	req, err := b.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(b.expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign put for %s: %w", key, err)
	}
	return req.URL, nil
}

// PresignGet issues a time-limited URL permitting a single GET of the key.
func (b *BlobStore) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := b.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(b.expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign get for %s: %w", key, err)
	}
	return req.URL, nil
}

// Delete removes the object. S3 treats deleting a missing key as success,
// which gives the idempotency the cascade delete relies on.
func (b *BlobStore) Delete(ctx context.Context, key string) error {
	if _, err := b.objects.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	b.logger.Debug("Object deleted",
		zap.String("bucket", b.bucket),
		zap.String("key", key),
	)

	return nil
}
