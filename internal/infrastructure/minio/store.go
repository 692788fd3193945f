package minio

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"clipshelf/internal/domain/apperror"
	"clipshelf/internal/domain/repository/blobstore"
	"clipshelf/pkg/logger"
)

// Store adapts a MinIO bucket to the blob store boundary: key-addressed
// put/get/list/delete plus signed-URL issuance. It holds no mutable state and
// is safe for shared process-wide use.
type Store struct {
	minioClient *minio.Client
	cfg         StoreConfig
}

func NewStore(minioClient *minio.Client, cfg StoreConfig) *Store {
	return &Store{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *Store) timeoutCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
}

func (s *Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	ctx, cancel := s.timeoutCtx(ctx)
	defer cancel()

	_, err := s.minioClient.PutObject(ctx, s.cfg.Bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return apperror.Wrap(apperror.StoreUnavailable, "blob put failed", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := s.timeoutCtx(ctx)
	defer cancel()

	obj, err := s.minioClient.GetObject(ctx, s.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, apperror.Wrap(apperror.StoreUnavailable, "blob get failed", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, apperror.Wrap(apperror.NotFound, "blob not found", err)
		}

		return nil, apperror.Wrap(apperror.StoreUnavailable, "blob read failed", err)
	}

	return data, nil
}

func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := s.timeoutCtx(ctx)
	defer cancel()

	var keys []string
	for obj := range s.minioClient.ListObjects(ctx, s.cfg.Bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, apperror.Wrap(apperror.StoreUnavailable, "blob listing failed", obj.Err)
		}
		keys = append(keys, obj.Key)
	}

	return keys, nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	ctx, cancel := s.timeoutCtx(ctx)
	defer cancel()

	err := s.minioClient.RemoveObject(ctx, s.cfg.Bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return apperror.Wrap(apperror.StoreUnavailable, "blob remove failed", err)
	}

	return nil
}

// SignedURL mints a fresh presigned GET URL for key. The URL expires after
// ttl; callers re-derive it from the stable key on every read instead of
// persisting it.
func (s *Store) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	ctx, cancel := s.timeoutCtx(ctx)
	defer cancel()

	u, err := s.minioClient.PresignedGetObject(ctx, s.cfg.Bucket, key, ttl, nil)
	if err != nil {
		return "", apperror.Wrap(apperror.StoreUnavailable, "signed url issuance failed", err)
	}

	return u.String(), nil
}

// Usage sums object sizes under the media prefixes. Sidecars are bookkeeping,
// not user storage, and are left out of the sum.
func (s *Store) Usage(ctx context.Context) (int64, error) {
	ctx, cancel := s.timeoutCtx(ctx)
	defer cancel()

	var total int64
	for _, prefix := range []string{blobstore.VideoPrefix, blobstore.ThumbnailPrefix} {
		for obj := range s.minioClient.ListObjects(ctx, s.cfg.Bucket, minio.ListObjectsOptions{
			Prefix:    prefix,
			Recursive: true,
		}) {
			if obj.Err != nil {
				return 0, apperror.Wrap(apperror.StoreUnavailable, "usage listing failed", obj.Err)
			}
			total += obj.Size
		}
	}

	return total, nil
}

// EnsureBucket creates the configured bucket when it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context) error {
	ctx, cancel := s.timeoutCtx(ctx)
	defer cancel()

	exists, err := s.minioClient.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return apperror.Wrap(apperror.StoreUnavailable, "bucket check failed", err)
	}
	if exists {
		return nil
	}

	if err := s.minioClient.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		logger.Error("bucket creation failed", "bucket", s.cfg.Bucket, "err", err)

		return apperror.Wrap(apperror.StoreUnavailable, "bucket creation failed", err)
	}

	return nil
}
