package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"appdrop-backend/internal/apperr"
	"appdrop-backend/internal/models"
)

// fakeStore is an in-memory RecordStore for the users and files
// collections. calls records every operation that reached the store, in
// order, so tests can assert what ran and when.
type fakeStore struct {
	mu         sync.Mutex
	users      map[string]models.User
	files      map[string]models.FileRecord
	failCreate map[string]error
	calls      []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[string]models.User),
		files:      make(map[string]models.FileRecord),
		failCreate: make(map[string]error),
	}
}

func (f *fakeStore) record(op string) {
	f.calls = append(f.calls, op)
}

func (f *fakeStore) ListCollection(_ context.Context, name string, out interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("list " + name)

	switch dst := out.(type) {
	case *[]models.User:
		for _, u := range f.users {
			*dst = append(*dst, u)
		}
	case *[]models.FileRecord:
		for _, r := range f.files {
			*dst = append(*dst, r)
		}
	default:
		return fmt.Errorf("unexpected out type %T", out)
	}
	return nil
}

func (f *fakeStore) QueryByField(_ context.Context, name, field string, value interface{}, out interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("query " + name)

	switch dst := out.(type) {
	case *[]models.User:
		for _, u := range f.users {
			if field == "email" && u.Email == value {
				*dst = append(*dst, u)
			}
		}
	case *[]models.FileRecord:
		for _, r := range f.files {
			if field == "owner" && r.Owner == value {
				*dst = append(*dst, r)
			}
		}
	default:
		return fmt.Errorf("unexpected out type %T", out)
	}
	return nil
}

func (f *fakeStore) GetDocument(_ context.Context, name, id string, out interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("get " + name)

	switch dst := out.(type) {
	case *models.User:
		u, ok := f.users[id]
		if !ok {
			return apperr.NotFound(name + " document")
		}
		*dst = u
	case *models.FileRecord:
		r, ok := f.files[id]
		if !ok {
			return apperr.NotFound(name + " document")
		}
		*dst = r
	default:
		return fmt.Errorf("unexpected out type %T", out)
	}
	return nil
}

func (f *fakeStore) CreateDocument(_ context.Context, name string, doc interface{}) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("create " + name)

	if err := f.failCreate[name]; err != nil {
		return "", err
	}

	switch d := doc.(type) {
	case models.User:
		f.users[d.ID.Hex()] = d
		return d.ID.Hex(), nil
	case models.FileRecord:
		f.files[d.ID.Hex()] = d
		return d.ID.Hex(), nil
	default:
		return "", fmt.Errorf("unexpected doc type %T", doc)
	}
}

func (f *fakeStore) UpdateDocument(_ context.Context, name, id string, partial map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("update " + name)

	u, ok := f.users[id]
	if !ok {
		return apperr.NotFound(name + " document")
	}
	if email, ok := partial["email"].(string); ok {
		u.Email = email
	}
	if dn, ok := partial["display_name"].(string); ok {
		u.DisplayName = dn
	}
	f.users[id] = u
	return nil
}

// fakeBlobs is an in-memory BlobStore addressed by path.
type fakeBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
	removed []string
	calls   []string
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: make(map[string][]byte)}
}

func (f *fakeBlobs) Upload(_ context.Context, path string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "upload "+path)
	f.objects[path] = data
	return nil
}

func (f *fakeBlobs) UploadWithProgress(ctx context.Context, path string, r io.Reader, size int64, contentType string, onProgress func(int)) error {
	if err := f.Upload(ctx, path, r, size, contentType); err != nil {
		return err
	}
	if onProgress != nil {
		onProgress(100)
	}
	return nil
}

func (f *fakeBlobs) ResolveDownloadURL(_ context.Context, path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[path]; !ok {
		return "", apperr.NotFound("object " + path)
	}
	return "https://blobs.example/" + path, nil
}

func (f *fakeBlobs) Remove(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, path)
	f.removed = append(f.removed, path)
	return nil
}
