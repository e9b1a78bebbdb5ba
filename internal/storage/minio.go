// Package storage is the blob store gateway: path-addressed uploads
// (optionally with progress reporting) and download URL resolution against
// MinIO.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"appdrop-backend/internal/apperr"
)

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLExpiry time.Duration
}

type MinioStore struct {
	client    *minio.Client
	bucket    string
	urlExpiry time.Duration
}

// NewMinio connects to MinIO and makes sure the bucket exists.
func NewMinio(opts Options) *MinioStore {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		log.Printf("Warning: Failed to check bucket existence: %v", err)
	} else if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			log.Printf("Warning: Failed to create bucket: %v", err)
		} else {
			log.Printf("Created bucket: %s", opts.Bucket)
		}
	}

	fmt.Println("✅ Connected to MinIO")
	return &MinioStore{client: client, bucket: opts.Bucket, urlExpiry: opts.URLExpiry}
}

// Upload stores size bytes from r at path.
func (s *MinioStore) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return apperr.Store("upload "+path, err)
	}
	return nil
}

// UploadWithProgress stores size bytes from r at path, reporting percentage
// estimates through onProgress. The final 100 is reported exactly once,
// after the store has acknowledged the object; a failed upload never
// reports completion.
func (s *MinioStore) UploadWithProgress(ctx context.Context, path string, r io.Reader, size int64, contentType string, onProgress func(int)) error {
	pr := NewProgressReader(r, size, onProgress)
	_, err := s.client.PutObject(ctx, s.bucket, path, pr, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return apperr.Store("upload "+path, err)
	}
	pr.Complete()
	return nil
}

// ResolveDownloadURL returns a presigned GET URL for the object at path,
// or NotFoundError when no object exists there.
func (s *MinioStore) ResolveDownloadURL(ctx context.Context, path string) (string, error) {
	_, err := s.client.StatObject(ctx, s.bucket, path, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return "", apperr.NotFound("object " + path)
		}
		return "", apperr.Store("stat "+path, err)
	}

	url, err := s.client.PresignedGetObject(ctx, s.bucket, path, s.urlExpiry, nil)
	if err != nil {
		return "", apperr.Store("presign "+path, err)
	}
	return url.String(), nil
}

// Remove deletes the object at path. Used to compensate when a record
// write fails after its blob was already uploaded.
func (s *MinioStore) Remove(ctx context.Context, path string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return apperr.Store("remove "+path, err)
	}
	return nil
}
