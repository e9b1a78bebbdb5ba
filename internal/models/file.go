package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	KindFile = "file"
	KindLink = "link"
)

// FileRecord is a reference owned by one user: either a blob in object
// storage (kind "file", StoragePath set) or an external link (kind "link",
// URL set). Records are immutable once created.
type FileRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner       string             `bson:"owner" json:"owner"`
	Name        string             `bson:"name" json:"name"`
	Kind        string             `bson:"kind" json:"kind"`
	StoragePath string             `bson:"storage_path,omitempty" json:"storage_path,omitempty"`
	URL         string             `bson:"url,omitempty" json:"url,omitempty"`
	UploadedAt  time.Time          `bson:"uploaded_at" json:"uploaded_at"`
}
