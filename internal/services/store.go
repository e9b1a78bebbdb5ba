package services

import (
	"context"
	"io"
)

const (
	UsersCollection = "users"
	FilesCollection = "files"
)

// RecordStore is the document database surface the services depend on.
// Implemented by db.Mongo.
type RecordStore interface {
	ListCollection(ctx context.Context, name string, out interface{}) error
	QueryByField(ctx context.Context, name, field string, value interface{}, out interface{}) error
	GetDocument(ctx context.Context, name, id string, out interface{}) error
	CreateDocument(ctx context.Context, name string, doc interface{}) (string, error)
	UpdateDocument(ctx context.Context, name, id string, partial map[string]interface{}) error
}

// BlobStore is the object storage surface the services depend on.
// Implemented by storage.MinioStore.
type BlobStore interface {
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error
	UploadWithProgress(ctx context.Context, path string, r io.Reader, size int64, contentType string, onProgress func(int)) error
	ResolveDownloadURL(ctx context.Context, path string) (string, error)
	Remove(ctx context.Context, path string) error
}
