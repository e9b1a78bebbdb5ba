package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"appdrop-backend/internal/apperr"
	"appdrop-backend/internal/download"
	"appdrop-backend/internal/models"
	"appdrop-backend/internal/utils"
)

type FileService struct {
	records RecordStore
	blobs   BlobStore
}

func NewFileService(records RecordStore, blobs BlobStore) *FileService {
	return &FileService{records: records, blobs: blobs}
}

// UploadInput is one admin submission: a target user plus exactly one of
// a local file (Data/Size/Name) or an external link.
type UploadInput struct {
	UserID      string
	Kind        string
	Name        string
	Data        io.Reader
	Size        int64
	ContentType string
	Link        string
	OnProgress  func(int)
}

// Upload validates the submission, uploads the blob when the kind is
// "file", then writes the FileRecord. The record write only starts after
// a successful upload; if the record write fails the uploaded blob is
// removed again so neither half survives alone.
func (s *FileService) Upload(ctx context.Context, in UploadInput) (models.FileRecord, error) {
	if err := validateUpload(in); err != nil {
		return models.FileRecord{}, err
	}

	var target models.User
	if err := s.records.GetDocument(ctx, UsersCollection, in.UserID, &target); err != nil {
		return models.FileRecord{}, err
	}

	record := models.FileRecord{
		ID:         primitive.NewObjectID(),
		Owner:      in.UserID,
		Kind:       in.Kind,
		UploadedAt: time.Now(),
	}

	switch in.Kind {
	case models.KindFile:
		path := fmt.Sprintf("user_files/%s/%s_%s", in.UserID, uuid.NewString(), in.Name)
		if err := s.blobs.UploadWithProgress(ctx, path, in.Data, in.Size, in.ContentType, in.OnProgress); err != nil {
			return models.FileRecord{}, err
		}
		record.Name = in.Name
		record.StoragePath = path
	case models.KindLink:
		record.Name = in.Link
		record.URL = in.Link
	}

	if _, err := s.records.CreateDocument(ctx, FilesCollection, record); err != nil {
		if record.StoragePath != "" {
			if rmErr := s.blobs.Remove(ctx, record.StoragePath); rmErr != nil {
				log.Printf("Failed to remove orphaned blob %s: %v", record.StoragePath, rmErr)
			}
		}
		return models.FileRecord{}, err
	}

	return record, nil
}

func validateUpload(in UploadInput) error {
	if in.UserID == "" {
		return apperr.Validation("please choose a user")
	}
	switch in.Kind {
	case models.KindFile:
		if in.Data == nil || in.Name == "" {
			return apperr.Validation("please select a file")
		}
		if in.Link != "" {
			return apperr.Validation("submit either a file or a link, not both")
		}
	case models.KindLink:
		if in.Link == "" {
			return apperr.Validation("please provide a link")
		}
		if in.Data != nil {
			return apperr.Validation("submit either a file or a link, not both")
		}
	default:
		return apperr.Validation("unknown upload kind %q", in.Kind)
	}
	return nil
}

// Entry is one dashboard row: the record plus either a usable URL and
// download mode, or the inline error that replaced it.
type Entry struct {
	Record models.FileRecord `json:"record"`
	URL    string            `json:"url,omitempty"`
	Mode   download.Mode     `json:"download_mode,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// ListForOwner returns the caller's records, each resolved independently:
// a missing blob or unknown kind marks its own entry and leaves the rest
// of the listing intact.
func (s *FileService) ListForOwner(ctx context.Context, ownerID, userAgent string) ([]Entry, error) {
	var records []models.FileRecord
	if err := s.records.QueryByField(ctx, FilesCollection, "owner", ownerID, &records); err != nil {
		return nil, err
	}

	entries := utils.ResolveEach(records, func(record models.FileRecord) Entry {
		return s.resolve(ctx, record, userAgent)
	})
	return entries, nil
}

// Resolve re-resolves a single record for its owner.
func (s *FileService) Resolve(ctx context.Context, fileID, ownerID, userAgent string) (Entry, error) {
	var record models.FileRecord
	if err := s.records.GetDocument(ctx, FilesCollection, fileID, &record); err != nil {
		return Entry{}, err
	}
	if record.Owner != ownerID {
		return Entry{}, apperr.Auth("unauthorized access")
	}
	return s.resolve(ctx, record, userAgent), nil
}

func (s *FileService) resolve(ctx context.Context, record models.FileRecord, userAgent string) Entry {
	entry := Entry{Record: record}

	switch record.Kind {
	case models.KindFile:
		url, err := s.blobs.ResolveDownloadURL(ctx, record.StoragePath)
		if err != nil {
			entry.Error = err.Error()
			return entry
		}
		entry.URL = url
	case models.KindLink:
		entry.URL = record.URL
	default:
		entry.Error = fmt.Sprintf("unknown file type %q", record.Kind)
		return entry
	}

	entry.Mode = download.ForFile(userAgent, record.Name)
	return entry
}
