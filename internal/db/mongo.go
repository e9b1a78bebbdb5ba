// Package db is the record store gateway: generic collection read, query,
// create and update operations over MongoDB, used for the "users" and
// "files" collections.
package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"appdrop-backend/internal/apperr"
)

type Mongo struct {
	database *mongo.Database
}

// Connect initializes the database connection and verifies it with a ping.
func Connect(uri, dbName string) *Mongo {
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("MongoDB ping failed: %v", err)
	}

	fmt.Println("✅ Connected to MongoDB")
	return &Mongo{database: client.Database(dbName)}
}

// ListCollection decodes every document in the collection into out, which
// must be a pointer to a slice.
func (m *Mongo) ListCollection(ctx context.Context, name string, out interface{}) error {
	cursor, err := m.database.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return apperr.Store("list "+name, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return apperr.Store("decode "+name, err)
	}
	return nil
}

// QueryByField decodes all documents whose field equals value into out.
// A single equality filter is the only query shape the system needs.
func (m *Mongo) QueryByField(ctx context.Context, name, field string, value interface{}, out interface{}) error {
	cursor, err := m.database.Collection(name).Find(ctx, bson.M{field: value})
	if err != nil {
		return apperr.Store("query "+name, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return apperr.Store("decode "+name, err)
	}
	return nil
}

// GetDocument decodes the document with the given hex ID into out.
func (m *Mongo) GetDocument(ctx context.Context, name, id string, out interface{}) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Validation("invalid %s ID", name)
	}

	err = m.database.Collection(name).FindOne(ctx, bson.M{"_id": objID}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound(name + " document")
	}
	if err != nil {
		return apperr.Store("get "+name, err)
	}
	return nil
}

// CreateDocument inserts doc and returns the stored ID as a hex string.
func (m *Mongo) CreateDocument(ctx context.Context, name string, doc interface{}) (string, error) {
	result, err := m.database.Collection(name).InsertOne(ctx, doc)
	if err != nil {
		return "", apperr.Store("insert "+name, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", result.InsertedID), nil
}

// UpdateDocument applies a partial $set update to the document with the
// given hex ID.
func (m *Mongo) UpdateDocument(ctx context.Context, name, id string, partial map[string]interface{}) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Validation("invalid %s ID", name)
	}

	result, err := m.database.Collection(name).UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M(partial)})
	if err != nil {
		return apperr.Store("update "+name, err)
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound(name + " document")
	}
	return nil
}
